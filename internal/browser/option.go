package browser

import (
	"time"

	"github.com/vidyasagar/navhist/internal/logger"
)

// Option is a functional option for configuring a Navigator.
type Option func(*Navigator)

// WithClearForwardOnVisit makes Visit drop the forward history, the way
// most browsers behave. By default forward history survives a visit.
func WithClearForwardOnVisit(clear bool) Option {
	return func(n *Navigator) {
		n.clearForwardOnVisit = clear
	}
}

// WithDelimiter sets the seed file record delimiter.
func WithDelimiter(delim rune) Option {
	return func(n *Navigator) {
		n.delimiter = delim
	}
}

// WithMalformedPolicy sets how LoadFile treats records it cannot parse.
func WithMalformedPolicy(p MalformedPolicy) Option {
	return func(n *Navigator) {
		n.policy = p
	}
}

// WithLocation sets the zone used when rendering visit times.
func WithLocation(loc *time.Location) Option {
	return func(n *Navigator) {
		n.loc = loc
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(n *Navigator) {
		n.logger = l
	}
}
