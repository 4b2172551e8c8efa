package tizen

import (
	"context"
	"fmt"
	"sync"

	"github.com/ProtonMail/gluon/async"
	"github.com/bradenaw/juniper/xslices"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type EventKind int

const (
	EventAdded EventKind = iota
	EventUpdated
	EventDeleted
)

func (kind EventKind) String() string {
	switch kind {
	case EventAdded:
		return "added"

	case EventUpdated:
		return "updated"

	case EventDeleted:
		return "deleted"

	default:
		return fmt.Sprintf("unknown (%d)", int(kind))
	}
}

// Event is a single delivery. Args is set for added and updated events, Deleted for deleted ones.
type Event struct {
	Kind    EventKind
	Args    EventArgs
	Deleted DeleteEventArgs
}

type HandlerID = uuid.UUID

type handler struct {
	id  HandlerID
	all bool
	on  EventKind
	fn  func(Event)
}

// Listener fans delivered notification events out to registered handlers.
// Snapshots are shared read-only between handlers.
type Listener struct {
	handlers []handler
	lock     sync.RWMutex

	streams sync.WaitGroup

	stopCh   chan struct{}
	stopOnce sync.Once

	panicHandler async.PanicHandler
	log          *logrus.Entry
	streamBuffer int
}

func NewListener(opts ...Option) *Listener {
	builder := newListenerBuilder()

	for _, opt := range opts {
		opt.config(builder)
	}

	return builder.build()
}

func (l *Listener) AddAddedHandler(fn func(EventArgs)) HandlerID {
	return l.addHandler(handler{on: EventAdded, fn: func(event Event) { fn(event.Args) }})
}

func (l *Listener) AddUpdatedHandler(fn func(EventArgs)) HandlerID {
	return l.addHandler(handler{on: EventUpdated, fn: func(event Event) { fn(event.Args) }})
}

func (l *Listener) AddDeletedHandler(fn func(DeleteEventArgs)) HandlerID {
	return l.addHandler(handler{on: EventDeleted, fn: func(event Event) { fn(event.Deleted) }})
}

// RemoveHandler unregisters the handler with the given ID.
// It returns false if no such handler is registered.
func (l *Listener) RemoveHandler(id HandlerID) bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	idx := xslices.IndexFunc(l.handlers, func(h handler) bool { return h.id == id })
	if idx < 0 {
		return false
	}

	l.handlers = xslices.Remove(l.handlers, idx, 1)

	return true
}

// Post delivers a newly posted notification to every added handler.
func (l *Listener) Post(args EventArgs) {
	l.dispatch(Event{Kind: EventAdded, Args: args})
}

// Update delivers an updated notification to every updated handler.
func (l *Listener) Update(args EventArgs) {
	l.dispatch(Event{Kind: EventUpdated, Args: args})
}

// Delete delivers a notification deletion to every deleted handler.
func (l *Listener) Delete(args DeleteEventArgs) {
	l.dispatch(Event{Kind: EventDeleted, Deleted: args})
}

// NewEventStream returns a channel of every event delivered to the listener.
// The channel is closed once ctx is done or the listener is closed.
// Delivery blocks while the stream's buffer is full.
func (l *Listener) NewEventStream(ctx context.Context) <-chan Event {
	eventCh := make(chan Event)
	bufCh := make(chan Event, l.streamBuffer)
	doneCh := make(chan struct{})

	h := handler{id: uuid.New(), all: true, fn: func(event Event) {
		select {
		case bufCh <- event:
		case <-doneCh:
		}
	}}

	// Close holds the lock while stopping, so a stream is either refused here or waited for by Close.
	l.lock.Lock()

	if l.isClosed() {
		l.lock.Unlock()
		close(eventCh)
		return eventCh
	}

	l.handlers = append(l.handlers, h)
	l.streams.Add(1)

	l.lock.Unlock()

	go func() {
		defer l.streams.Done()
		defer close(eventCh)
		defer close(doneCh)
		defer l.RemoveHandler(h.id)

		for {
			var event Event

			select {
			case <-ctx.Done():
				return

			case <-l.stopCh:
				return

			case event = <-bufCh:
				// ...
			}

			select {
			case <-ctx.Done():
				return

			case <-l.stopCh:
				return

			case eventCh <- event:
			}
		}
	}()

	return eventCh
}

// Close unregisters every handler and stops every event stream.
// Events delivered after Close are dropped.
func (l *Listener) Close() {
	l.lock.Lock()

	l.stopOnce.Do(func() {
		close(l.stopCh)
	})

	l.lock.Unlock()

	l.streams.Wait()

	l.lock.Lock()
	defer l.lock.Unlock()

	l.handlers = nil
}

func (l *Listener) isClosed() bool {
	select {
	case <-l.stopCh:
		return true

	default:
		return false
	}
}

func (l *Listener) addHandler(h handler) HandlerID {
	h.id = uuid.New()

	l.lock.Lock()
	defer l.lock.Unlock()

	l.handlers = append(l.handlers, h)

	return h.id
}

func (l *Listener) dispatch(event Event) {
	if l.isClosed() {
		l.log.WithField("kind", event.Kind).Debug("Listener closed, dropping event")
		return
	}

	var handlers []handler

	l.lock.RLock()

	for _, h := range l.handlers {
		if h.all || h.on == event.Kind {
			handlers = append(handlers, h)
		}
	}

	l.lock.RUnlock()

	for _, h := range handlers {
		l.invoke(h, event)
	}
}

func (l *Listener) invoke(h handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			l.log.WithFields(logrus.Fields{
				"handler": h.id,
				"kind":    event.Kind,
				"panic":   r,
			}).Error("Notification handler panicked")

			if l.panicHandler != nil {
				l.panicHandler.HandlePanic()
			}
		}
	}()

	h.fn(event)
}
