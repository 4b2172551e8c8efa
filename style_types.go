package tizen

import (
	"time"
)

type StyleKey string

const (
	ActiveStyleKey     StyleKey = "active"
	LockStyleKey       StyleKey = "lock"
	IndicatorStyleKey  StyleKey = "indicator"
	BigPictureStyleKey StyleKey = "bigpicture"
)

var styleKeys = []StyleKey{ActiveStyleKey, LockStyleKey, IndicatorStyleKey, BigPictureStyleKey}

func ParseStyleKey(s string) (StyleKey, error) {
	for _, key := range styleKeys {
		if string(key) == s {
			return key, nil
		}
	}

	return "", invalidParameterKey(s)
}

// Style is one of ActiveStyle, LockStyle, IndicatorStyle or BigPictureStyle.
type Style interface {
	Key() StyleKey

	isStyle()
}

// StyleVariant is satisfied by exactly the concrete style types.
type StyleVariant interface {
	ActiveStyle | LockStyle | IndicatorStyle | BigPictureStyle

	Style
}

type ButtonIndex int

const (
	ButtonFirst ButtonIndex = iota
	ButtonSecond
	ButtonThird
)

type ButtonAction struct {
	Index     ButtonIndex
	Text      string
	ImagePath string
	Action    *AppControl
}

type ReplyAction struct {
	ParentIndex     ButtonIndex
	PlaceHolderText string
	ReplyMax        int
	Button          *ButtonAction
}

// ActiveStyle is shown as a heads-up popup.
type ActiveStyle struct {
	IsAutoRemove    bool
	BackgroundImage string

	DefaultButton          ButtonIndex
	HiddenByUserButton     ButtonIndex
	HiddenByTimeoutButton  ButtonIndex
	HiddenByExternalButton ButtonIndex

	HiddenTimeout time.Duration
	DeleteTimeout time.Duration

	Buttons []ButtonAction
	Reply   *ReplyAction
}

func (ActiveStyle) Key() StyleKey { return ActiveStyleKey }

func (ActiveStyle) isStyle() {}

type LockStyle struct {
	IconPath      string
	ThumbnailPath string
}

func (LockStyle) Key() StyleKey { return LockStyleKey }

func (LockStyle) isStyle() {}

type IndicatorStyle struct {
	IconPath string
	SubText  string
}

func (IndicatorStyle) Key() StyleKey { return IndicatorStyleKey }

func (IndicatorStyle) isStyle() {}

type BigPictureStyle struct {
	ImagePath string
	ImageSize Size
	Content   string
}

func (BigPictureStyle) Key() StyleKey { return BigPictureStyleKey }

func (BigPictureStyle) isStyle() {}
