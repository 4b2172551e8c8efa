package tizen

import (
	"github.com/ProtonMail/gluon/async"
	"github.com/sirupsen/logrus"
)

// DefaultStreamBuffer is the number of events an event stream buffers before Post blocks.
const DefaultStreamBuffer = 16

type listenerBuilder struct {
	panicHandler async.PanicHandler
	logger       *logrus.Entry
	streamBuffer int
}

func newListenerBuilder() *listenerBuilder {
	return &listenerBuilder{
		panicHandler: async.NoopPanicHandler{},
		logger:       logger(),
		streamBuffer: DefaultStreamBuffer,
	}
}

func (builder *listenerBuilder) build() *Listener {
	return &Listener{
		panicHandler: builder.panicHandler,
		log:          builder.logger,
		streamBuffer: builder.streamBuffer,
		stopCh:       make(chan struct{}),
	}
}

// Option represents a type that can be used to configure the listener.
type Option interface {
	config(*listenerBuilder)
}

// WithPanicHandler sets the handler notified when a consumer handler panics.
func WithPanicHandler(panicHandler async.PanicHandler) Option {
	return &withPanicHandler{
		panicHandler: panicHandler,
	}
}

type withPanicHandler struct {
	panicHandler async.PanicHandler
}

func (opt withPanicHandler) config(builder *listenerBuilder) {
	builder.panicHandler = opt.panicHandler
}

// WithLogger controls where the listener logs to.
func WithLogger(logger *logrus.Entry) Option {
	return &withLogger{
		logger: logger,
	}
}

type withLogger struct {
	logger *logrus.Entry
}

func (opt withLogger) config(builder *listenerBuilder) {
	if opt.logger != nil {
		builder.logger = opt.logger
	}
}

// WithStreamBuffer sets the per-stream buffer size used by NewEventStream.
// A negative size is ignored and DefaultStreamBuffer is kept.
func WithStreamBuffer(size int) Option {
	return &withStreamBuffer{
		size: size,
	}
}

type withStreamBuffer struct {
	size int
}

func (opt withStreamBuffer) config(builder *listenerBuilder) {
	if opt.size >= 0 {
		builder.streamBuffer = opt.size
	}
}
