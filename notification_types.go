package tizen

import (
	"time"
)

// EventArgs holds the data of a posted or updated notification.
// It is built once with an EventArgsBuilder and never changes afterwards.
type EventArgs struct {
	uniqueNumber int
	appID        string
	title        string
	content      string
	icon         string
	subIcon      string

	isTimeStampVisible bool
	timeStamp          time.Time

	count int
	tag   string

	isOngoing    bool
	isDisplay    bool
	hasEventFlag bool

	action    *AppControl
	progress  *ProgressArgs
	accessory *AccessoryArgs
	property  Property

	styles     map[StyleKey]Style
	extensions map[string]*Bundle
}

// DeleteEventArgs identifies a deleted notification.
type DeleteEventArgs struct {
	UniqueNumber int
}

// AppControl describes the application launch request bound to a notification.
type AppControl struct {
	Operation     string
	ApplicationID string
	URI           string
	Mime          string
	ExtraData     *Bundle
}

type ProgressCategory int

const (
	ProgressPercent ProgressCategory = iota
	ProgressTime
	ProgressPendingBar
)

type ProgressArgs struct {
	Category ProgressCategory
	Current  float64
	Max      float64
}

type AccessoryOption int

const (
	AccessoryOff AccessoryOption = iota
	AccessoryOn
	AccessoryCustom
)

type AccessoryArgs struct {
	SoundOption AccessoryOption
	SoundPath   string
	CanVibrate  bool

	LedOption         AccessoryOption
	LedOnMillisecond  int
	LedOffMillisecond int
	LedColor          uint32
}

type Property uint8

const (
	PropertyDisplayOnlySimMode Property = 1 << iota
	PropertyDisableAppLaunch
	PropertyDisableAutoDelete
	PropertyVolatileDisplay
)

func (p Property) Has(flag Property) bool {
	return p&flag == flag
}
