package tizen

import "fmt"

type Size struct {
	Width  int
	Height int
}

func (size Size) String() string {
	return fmt.Sprintf("Width=%d, Height=%d", size.Width, size.Height)
}

// VideoStreamChangedEvent carries the properties of a player's new video stream.
type VideoStreamChangedEvent struct {
	size    Size
	fps     int
	bitRate int
}

func NewVideoStreamChangedEvent(height, width, fps, bitRate int) VideoStreamChangedEvent {
	return VideoStreamChangedEvent{
		size:    Size{Width: width, Height: height},
		fps:     fps,
		bitRate: bitRate,
	}
}

func (event VideoStreamChangedEvent) Size() Size { return event.size }

func (event VideoStreamChangedEvent) FPS() int { return event.fps }

func (event VideoStreamChangedEvent) BitRate() int { return event.bitRate }

func (event VideoStreamChangedEvent) String() string {
	return fmt.Sprintf("Size=(%v), Fps=%d, BitRate=%d", event.size, event.fps, event.bitRate)
}
