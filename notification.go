package tizen

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// GetStyle returns the style of kind T attached to args.
// It fails with InvalidParameter if no such style is attached; use HasStyle or LookupStyle to probe first.
func GetStyle[T StyleVariant](args EventArgs) (T, error) {
	style, ok := LookupStyle[T](args)
	if !ok {
		logger().WithFields(logrus.Fields{
			"id":    args.uniqueNumber,
			"style": style.Key(),
		}).Error("Invalid style")

		return style, newError(InvalidParameter, "invalid parameter entered : style %v not present", style.Key())
	}

	return style, nil
}

// LookupStyle returns the style of kind T attached to args, if any.
func LookupStyle[T StyleVariant](args EventArgs) (T, bool) {
	var zero T

	style, ok := args.styles[zero.Key()]
	if !ok {
		return zero, false
	}

	typed, ok := style.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

func (args EventArgs) HasStyle(key StyleKey) bool {
	_, ok := args.styles[key]
	return ok
}

// StyleKeys returns the attached style kinds, sorted.
func (args EventArgs) StyleKeys() []StyleKey {
	keys := maps.Keys(args.styles)

	slices.Sort(keys)

	return keys
}

// GetExtension returns the bundle stored under key.
// The bundle is shared with the snapshot and must not be modified.
func (args EventArgs) GetExtension(key string) (*Bundle, error) {
	if key == "" {
		return nil, invalidParameter()
	}

	bundle, ok := args.extensions[key]
	if !ok {
		logger().WithFields(logrus.Fields{
			"id":  args.uniqueNumber,
			"key": key,
		}).Error("Invalid extension key")

		return nil, invalidParameterKey(key)
	}

	return bundle, nil
}

func (args EventArgs) LookupExtension(key string) (*Bundle, bool) {
	bundle, ok := args.extensions[key]
	return bundle, ok
}

// ExtensionKeys returns a sorted copy of the extension keys.
// Changes to the returned slice are not reflected in args.
func (args EventArgs) ExtensionKeys() []string {
	keys := maps.Keys(args.extensions)

	slices.Sort(keys)

	return keys
}

func (args EventArgs) UniqueNumber() int { return args.uniqueNumber }

func (args EventArgs) AppID() string { return args.appID }

func (args EventArgs) Title() string { return args.title }

func (args EventArgs) Content() string { return args.content }

func (args EventArgs) Icon() string { return args.icon }

func (args EventArgs) SubIcon() string { return args.subIcon }

func (args EventArgs) IsTimeStampVisible() bool { return args.isTimeStampVisible }

// TimeStamp is meaningless unless IsTimeStampVisible is true.
func (args EventArgs) TimeStamp() time.Time { return args.timeStamp }

func (args EventArgs) Count() int { return args.count }

func (args EventArgs) Tag() string { return args.tag }

func (args EventArgs) IsOngoing() bool { return args.isOngoing }

// IsDisplay reports whether the notification is shown on the default viewer.
// If false, only its styles are shown.
func (args EventArgs) IsDisplay() bool { return args.isDisplay }

func (args EventArgs) HasEventFlag() bool { return args.hasEventFlag }

func (args EventArgs) Action() *AppControl { return args.action }

func (args EventArgs) Progress() *ProgressArgs { return args.progress }

func (args EventArgs) Accessory() *AccessoryArgs { return args.accessory }

func (args EventArgs) Property() Property { return args.property }

func (args EventArgs) String() string {
	var parts []string

	if args.title != "" {
		parts = append(parts, fmt.Sprintf("title=%q", args.title))
	}

	if args.count > 0 {
		parts = append(parts, fmt.Sprintf("count=%d", args.count))
	}

	if args.isTimeStampVisible {
		parts = append(parts, "time="+args.timeStamp.Format(time.RFC3339))
	}

	if len(args.styles) > 0 {
		keys := make([]string, 0, len(args.styles))

		for _, key := range args.StyleKeys() {
			keys = append(keys, string(key))
		}

		parts = append(parts, fmt.Sprintf("styles=[%v]", strings.Join(keys, " ")))
	}

	if len(args.extensions) > 0 {
		parts = append(parts, fmt.Sprintf("extensions=%d", len(args.extensions)))
	}

	return fmt.Sprintf("Notification %d (%v): %v", args.uniqueNumber, args.appID, strings.Join(parts, ", "))
}
