package route

import (
	"io"
	"log/slog"
)

// Options holds the fixed geometric constants of a pass, in pixels.
type Options struct {
	// Clearance is the minimum gap between facing sides for an orthogonal style.
	Clearance int
	// TrunkOffset separates a trunk from a parallel or conflicting trunk.
	TrunkOffset int
	// SelfMargin is the distance of a self-edge loop from its node corner.
	SelfMargin int
}

// DefaultOptions returns Clearance=20, TrunkOffset=10, SelfMargin=20.
func DefaultOptions() Options {
	return Options{
		Clearance:   20,
		TrunkOffset: 10,
		SelfMargin:  20,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Clearance <= 0 {
		o.Clearance = def.Clearance
	}
	if o.TrunkOffset <= 0 {
		o.TrunkOffset = def.TrunkOffset
	}
	if o.SelfMargin <= 0 {
		o.SelfMargin = def.SelfMargin
	}
	return o
}

// Option configures a Layouter.
type Option func(*Layouter)

// WithOptions overrides the geometric constants. Zero fields keep defaults.
func WithOptions(o Options) Option {
	return func(l *Layouter) {
		l.opts = o.withDefaults()
	}
}

// WithLogger sets the logger that receives routing decisions at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(l *Layouter) {
		if log != nil {
			l.log = log
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
