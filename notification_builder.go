package tizen

import (
	"time"

	"golang.org/x/exp/maps"
)

// EventArgsBuilder collects the fields of an EventArgs.
// Errors are deferred until Build; the first one wins.
type EventArgsBuilder struct {
	args EventArgs
	err  error
}

func NewEventArgsBuilder() *EventArgsBuilder {
	return &EventArgsBuilder{
		args: EventArgs{
			isDisplay:  true,
			styles:     make(map[StyleKey]Style),
			extensions: make(map[string]*Bundle),
		},
	}
}

func (builder *EventArgsBuilder) UniqueNumber(id int) *EventArgsBuilder {
	builder.args.uniqueNumber = id
	return builder
}

func (builder *EventArgsBuilder) AppID(appID string) *EventArgsBuilder {
	builder.args.appID = appID
	return builder
}

func (builder *EventArgsBuilder) Title(title string) *EventArgsBuilder {
	builder.args.title = title
	return builder
}

func (builder *EventArgsBuilder) Content(content string) *EventArgsBuilder {
	builder.args.content = content
	return builder
}

func (builder *EventArgsBuilder) Icon(path string) *EventArgsBuilder {
	builder.args.icon = path
	return builder
}

func (builder *EventArgsBuilder) SubIcon(path string) *EventArgsBuilder {
	builder.args.subIcon = path
	return builder
}

// TimeStamp sets the timestamp and marks it visible.
func (builder *EventArgsBuilder) TimeStamp(ts time.Time) *EventArgsBuilder {
	builder.args.timeStamp = ts
	builder.args.isTimeStampVisible = true
	return builder
}

func (builder *EventArgsBuilder) TimeStampVisible(visible bool) *EventArgsBuilder {
	builder.args.isTimeStampVisible = visible
	return builder
}

func (builder *EventArgsBuilder) Count(count int) *EventArgsBuilder {
	builder.args.count = count
	return builder
}

func (builder *EventArgsBuilder) Tag(tag string) *EventArgsBuilder {
	builder.args.tag = tag
	return builder
}

func (builder *EventArgsBuilder) Ongoing(ongoing bool) *EventArgsBuilder {
	builder.args.isOngoing = ongoing
	return builder
}

func (builder *EventArgsBuilder) Display(display bool) *EventArgsBuilder {
	builder.args.isDisplay = display
	return builder
}

func (builder *EventArgsBuilder) EventFlag(flag bool) *EventArgsBuilder {
	builder.args.hasEventFlag = flag
	return builder
}

func (builder *EventArgsBuilder) Action(action *AppControl) *EventArgsBuilder {
	builder.args.action = action
	return builder
}

func (builder *EventArgsBuilder) Progress(progress *ProgressArgs) *EventArgsBuilder {
	builder.args.progress = progress
	return builder
}

func (builder *EventArgsBuilder) Accessory(accessory *AccessoryArgs) *EventArgsBuilder {
	builder.args.accessory = accessory
	return builder
}

func (builder *EventArgsBuilder) Property(property Property) *EventArgsBuilder {
	builder.args.property = property
	return builder
}

// WithStyle attaches a style. Each style kind may be attached once.
// Only the style values are accepted; nil and pointers to styles fail with InvalidParameter.
func (builder *EventArgsBuilder) WithStyle(style Style) *EventArgsBuilder {
	if builder.err != nil {
		return builder
	}

	switch style.(type) {
	case ActiveStyle, LockStyle, IndicatorStyle, BigPictureStyle:
		// ...

	default:
		builder.err = invalidParameter()
		return builder
	}

	if _, ok := builder.args.styles[style.Key()]; ok {
		builder.err = invalidParameterKey(string(style.Key()))
		return builder
	}

	builder.args.styles[style.Key()] = style

	return builder
}

// WithExtension attaches a bundle under key. Each key may be attached once.
func (builder *EventArgsBuilder) WithExtension(key string, bundle *Bundle) *EventArgsBuilder {
	if builder.err != nil {
		return builder
	}

	if key == "" || bundle == nil {
		builder.err = invalidParameter()
		return builder
	}

	if _, ok := builder.args.extensions[key]; ok {
		builder.err = invalidParameterKey(key)
		return builder
	}

	builder.args.extensions[key] = bundle

	return builder
}

// Build returns the snapshot. The builder may be reused; later calls do not affect snapshots already built.
func (builder *EventArgsBuilder) Build() (EventArgs, error) {
	if builder.err != nil {
		return EventArgs{}, builder.err
	}

	args := builder.args

	args.styles = maps.Clone(builder.args.styles)
	args.extensions = maps.Clone(builder.args.extensions)

	return args, nil
}
