package tizen_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tizenfx/go-tizen-api"
)

func newBundle(t *testing.T, kv ...string) *tizen.Bundle {
	t.Helper()

	b := tizen.NewBundle()

	for i := 0; i+1 < len(kv); i += 2 {
		require.NoError(t, b.Add(kv[i], kv[i+1]))
	}

	return b
}

func TestEventArgs_GetExtension(t *testing.T) {
	sound := newBundle(t, "volume", "80")

	args, err := tizen.NewEventArgsBuilder().
		UniqueNumber(1).
		WithExtension("sound", sound).
		Build()
	require.NoError(t, err)

	// The exact bundle is returned.
	got, err := args.GetExtension("sound")
	require.NoError(t, err)
	require.Same(t, sound, got)

	volume, ok := got.GetString("volume")
	require.True(t, ok)
	require.Equal(t, "80", volume)

	// A missing key fails with the key in the message.
	_, err = args.GetExtension("vibration")
	require.ErrorIs(t, err, tizen.ErrInvalidParameter)
	require.Contains(t, err.Error(), "vibration")

	// An empty key fails too.
	_, err = args.GetExtension("")
	require.ErrorIs(t, err, tizen.ErrInvalidParameter)
	require.Equal(t, "invalid parameter entered", err.Error())
}

func TestEventArgs_LookupExtension(t *testing.T) {
	args, err := tizen.NewEventArgsBuilder().WithExtension("sound", newBundle(t, "volume", "80")).Build()
	require.NoError(t, err)

	_, ok := args.LookupExtension("sound")
	require.True(t, ok)

	_, ok = args.LookupExtension("vibration")
	require.False(t, ok)

	_, ok = args.LookupExtension("")
	require.False(t, ok)
}

func TestEventArgs_ExtensionKeys(t *testing.T) {
	keys := []string{"zeta", "alpha", "mid", "beta"}

	builder := tizen.NewEventArgsBuilder()

	for _, key := range keys {
		builder.WithExtension(key, tizen.NewBundle())
	}

	args, err := builder.Build()
	require.NoError(t, err)

	got := args.ExtensionKeys()
	require.ElementsMatch(t, keys, got)

	// The keys are a copy.
	got[0] = "changed"
	require.ElementsMatch(t, keys, args.ExtensionKeys())
}

func TestEventArgs_ExtensionKeysEmpty(t *testing.T) {
	args, err := tizen.NewEventArgsBuilder().Build()
	require.NoError(t, err)

	require.Empty(t, args.ExtensionKeys())
}

func TestGetStyle_Missing(t *testing.T) {
	args, err := tizen.NewEventArgsBuilder().Build()
	require.NoError(t, err)

	_, err = tizen.GetStyle[tizen.BigPictureStyle](args)
	require.ErrorIs(t, err, tizen.ErrInvalidParameter)
	require.Contains(t, err.Error(), "bigpicture")

	var tizenErr tizen.Error
	require.True(t, errors.As(err, &tizenErr))
	require.Equal(t, tizen.InvalidParameter, tizenErr.Code)
}

func TestGetStyle_Present(t *testing.T) {
	args, err := tizen.NewEventArgsBuilder().
		WithStyle(tizen.BigPictureStyle{ImagePath: "/a.png"}).
		WithStyle(tizen.IndicatorStyle{IconPath: "/i.png", SubText: "sub"}).
		Build()
	require.NoError(t, err)

	bigPicture, err := tizen.GetStyle[tizen.BigPictureStyle](args)
	require.NoError(t, err)
	require.Equal(t, "/a.png", bigPicture.ImagePath)

	indicator, err := tizen.GetStyle[tizen.IndicatorStyle](args)
	require.NoError(t, err)
	require.Equal(t, tizen.IndicatorStyle{IconPath: "/i.png", SubText: "sub"}, indicator)

	// Styles that were not attached are still missing.
	_, err = tizen.GetStyle[tizen.ActiveStyle](args)
	require.ErrorIs(t, err, tizen.ErrInvalidParameter)

	_, err = tizen.GetStyle[tizen.LockStyle](args)
	require.ErrorIs(t, err, tizen.ErrInvalidParameter)
}

func TestLookupStyle(t *testing.T) {
	active := tizen.ActiveStyle{
		IsAutoRemove:  true,
		HiddenTimeout: 5 * time.Second,
		Buttons: []tizen.ButtonAction{
			{Index: tizen.ButtonFirst, Text: "Reply"},
			{Index: tizen.ButtonSecond, Text: "Dismiss"},
		},
	}

	args, err := tizen.NewEventArgsBuilder().WithStyle(active).Build()
	require.NoError(t, err)

	got, ok := tizen.LookupStyle[tizen.ActiveStyle](args)
	require.True(t, ok)
	require.Equal(t, active, got)

	_, ok = tizen.LookupStyle[tizen.LockStyle](args)
	require.False(t, ok)

	require.True(t, args.HasStyle(tizen.ActiveStyleKey))
	require.False(t, args.HasStyle(tizen.LockStyleKey))
	require.Equal(t, []tizen.StyleKey{tizen.ActiveStyleKey}, args.StyleKeys())
}

func TestEventArgsBuilder_Defaults(t *testing.T) {
	args, err := tizen.NewEventArgsBuilder().Build()
	require.NoError(t, err)

	require.True(t, args.IsDisplay())
	require.False(t, args.IsOngoing())
	require.False(t, args.HasEventFlag())
	require.False(t, args.IsTimeStampVisible())
	require.Nil(t, args.Action())
	require.Nil(t, args.Progress())
	require.Nil(t, args.Accessory())
}

func TestEventArgsBuilder_Fields(t *testing.T) {
	ts := time.Date(2017, time.March, 1, 12, 0, 0, 0, time.UTC)

	args, err := tizen.NewEventArgsBuilder().
		UniqueNumber(42).
		AppID("org.tizen.message").
		Title("New message").
		Content("Hello").
		Icon("/icon.png").
		SubIcon("/sub.png").
		TimeStamp(ts).
		Count(3).
		Tag("inbox").
		Ongoing(true).
		Display(false).
		EventFlag(true).
		Action(&tizen.AppControl{Operation: "http://tizen.org/appcontrol/operation/view", ApplicationID: "org.tizen.message"}).
		Progress(&tizen.ProgressArgs{Category: tizen.ProgressPercent, Current: 0.5, Max: 1}).
		Accessory(&tizen.AccessoryArgs{SoundOption: tizen.AccessoryOn, CanVibrate: true}).
		Property(tizen.PropertyDisableAppLaunch | tizen.PropertyVolatileDisplay).
		Build()
	require.NoError(t, err)

	require.Equal(t, 42, args.UniqueNumber())
	require.Equal(t, "org.tizen.message", args.AppID())
	require.Equal(t, "New message", args.Title())
	require.Equal(t, "Hello", args.Content())
	require.Equal(t, "/icon.png", args.Icon())
	require.Equal(t, "/sub.png", args.SubIcon())
	require.True(t, args.IsTimeStampVisible())
	require.Equal(t, ts, args.TimeStamp())
	require.Equal(t, 3, args.Count())
	require.Equal(t, "inbox", args.Tag())
	require.True(t, args.IsOngoing())
	require.False(t, args.IsDisplay())
	require.True(t, args.HasEventFlag())
	require.Equal(t, "org.tizen.message", args.Action().ApplicationID)
	require.Equal(t, 0.5, args.Progress().Current)
	require.True(t, args.Accessory().CanVibrate)
	require.True(t, args.Property().Has(tizen.PropertyDisableAppLaunch))
	require.True(t, args.Property().Has(tizen.PropertyVolatileDisplay))
	require.False(t, args.Property().Has(tizen.PropertyDisableAutoDelete))

	require.Equal(t, `Notification 42 (org.tizen.message): title="New message", count=3, time=2017-03-01T12:00:00Z`, args.String())
}

func TestEventArgsBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *tizen.EventArgsBuilder
	}{
		{
			name:    "empty extension key",
			builder: tizen.NewEventArgsBuilder().WithExtension("", tizen.NewBundle()),
		},
		{
			name:    "nil extension",
			builder: tizen.NewEventArgsBuilder().WithExtension("sound", nil),
		},
		{
			name:    "nil style",
			builder: tizen.NewEventArgsBuilder().WithStyle(nil),
		},
		{
			name:    "pointer style",
			builder: tizen.NewEventArgsBuilder().WithStyle(&tizen.BigPictureStyle{ImagePath: "/a.png"}),
		},
		{
			name:    "duplicate extension",
			builder: tizen.NewEventArgsBuilder().WithExtension("sound", tizen.NewBundle()).WithExtension("sound", tizen.NewBundle()),
		},
		{
			name:    "duplicate style",
			builder: tizen.NewEventArgsBuilder().WithStyle(tizen.LockStyle{}).WithStyle(tizen.LockStyle{IconPath: "/b.png"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.ErrorIs(t, err, tizen.ErrInvalidParameter)
		})
	}
}

func TestEventArgsBuilder_SnapshotIsolated(t *testing.T) {
	builder := tizen.NewEventArgsBuilder().WithExtension("sound", tizen.NewBundle())

	first, err := builder.Build()
	require.NoError(t, err)

	// Extending the builder afterwards does not change the first snapshot.
	second, err := builder.WithExtension("led", tizen.NewBundle()).WithStyle(tizen.LockStyle{}).Build()
	require.NoError(t, err)

	require.Equal(t, []string{"sound"}, first.ExtensionKeys())
	require.False(t, first.HasStyle(tizen.LockStyleKey))

	require.Equal(t, []string{"led", "sound"}, second.ExtensionKeys())
	require.True(t, second.HasStyle(tizen.LockStyleKey))
}

func TestParseStyleKey(t *testing.T) {
	key, err := tizen.ParseStyleKey("indicator")
	require.NoError(t, err)
	require.Equal(t, tizen.IndicatorStyleKey, key)

	_, err = tizen.ParseStyleKey("popup")
	require.ErrorIs(t, err, tizen.ErrInvalidParameter)
	require.Contains(t, err.Error(), "popup")
}

func TestEventArgsBuilder_PointerStyleNotStored(t *testing.T) {
	builder := tizen.NewEventArgsBuilder().WithStyle(&tizen.BigPictureStyle{ImagePath: "/a.png"})

	_, err := builder.Build()
	require.ErrorIs(t, err, tizen.ErrInvalidParameter)

	// Every style reported by HasStyle can be fetched with GetStyle.
	args, err := tizen.NewEventArgsBuilder().
		WithStyle(tizen.BigPictureStyle{ImagePath: "/a.png"}).
		WithStyle(tizen.LockStyle{IconPath: "/l.png"}).
		Build()
	require.NoError(t, err)

	require.True(t, args.HasStyle(tizen.BigPictureStyleKey))
	require.True(t, args.HasStyle(tizen.LockStyleKey))

	bigPicture, err := tizen.GetStyle[tizen.BigPictureStyle](args)
	require.NoError(t, err)
	require.Equal(t, "/a.png", bigPicture.ImagePath)

	lock, err := tizen.GetStyle[tizen.LockStyle](args)
	require.NoError(t, err)
	require.Equal(t, "/l.png", lock.IconPath)
}
