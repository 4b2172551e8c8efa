package tizen

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type eventArgsJSON struct {
	UniqueNumber int
	AppID        string
	Title        string
	Content      string
	Icon         string
	SubIcon      string

	TimeStamp          *time.Time
	IsTimeStampVisible *bool

	Count int
	Tag   string

	IsOngoing    bool
	IsDisplay    *bool
	HasEventFlag bool

	Action    *AppControl
	Progress  *ProgressArgs
	Accessory *AccessoryArgs
	Property  Property

	Styles     map[string]json.RawMessage
	Extensions map[string]*Bundle
}

// DecodeEventArgs reads one notification snapshot encoded as JSON.
// The snapshot is validated the same way as one built with an EventArgsBuilder.
func DecodeEventArgs(r io.Reader) (EventArgs, error) {
	var raw eventArgsJSON

	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return EventArgs{}, fmt.Errorf("failed to decode notification: %w", err)
	}

	builder := NewEventArgsBuilder().
		UniqueNumber(raw.UniqueNumber).
		AppID(raw.AppID).
		Title(raw.Title).
		Content(raw.Content).
		Icon(raw.Icon).
		SubIcon(raw.SubIcon).
		Count(raw.Count).
		Tag(raw.Tag).
		Ongoing(raw.IsOngoing).
		EventFlag(raw.HasEventFlag).
		Action(raw.Action).
		Progress(raw.Progress).
		Accessory(raw.Accessory).
		Property(raw.Property)

	if raw.TimeStamp != nil {
		builder.TimeStamp(*raw.TimeStamp)
	}

	if raw.IsTimeStampVisible != nil {
		builder.TimeStampVisible(*raw.IsTimeStampVisible)
	}

	if raw.IsDisplay != nil {
		builder.Display(*raw.IsDisplay)
	}

	styleKeys := maps.Keys(raw.Styles)

	slices.Sort(styleKeys)

	for _, key := range styleKeys {
		style, err := decodeStyle(key, raw.Styles[key])
		if err != nil {
			return EventArgs{}, err
		}

		builder.WithStyle(style)
	}

	extKeys := maps.Keys(raw.Extensions)

	slices.Sort(extKeys)

	for _, key := range extKeys {
		builder.WithExtension(key, raw.Extensions[key])
	}

	return builder.Build()
}

func decodeStyle(key string, data json.RawMessage) (Style, error) {
	styleKey, err := ParseStyleKey(key)
	if err != nil {
		return nil, err
	}

	switch styleKey {
	case ActiveStyleKey:
		return unmarshalStyle[ActiveStyle](data)

	case LockStyleKey:
		return unmarshalStyle[LockStyle](data)

	case IndicatorStyleKey:
		return unmarshalStyle[IndicatorStyle](data)

	case BigPictureStyleKey:
		return unmarshalStyle[BigPictureStyle](data)

	default:
		return nil, invalidParameterKey(key)
	}
}

func unmarshalStyle[T StyleVariant](data json.RawMessage) (Style, error) {
	var style T

	if err := json.Unmarshal(data, &style); err != nil {
		return nil, fmt.Errorf("failed to decode %v style: %w", style.Key(), err)
	}

	return style, nil
}
