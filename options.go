package kvring

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option is a ring configuration option.
type Option interface {
	apply(*ringOptions)
}

type ringOptions struct {
	logger logrus.FieldLogger
}

func newDefaultRingOptions() ringOptions {
	return ringOptions{
		logger: logrus.StandardLogger(),
	}
}

// WithLogger option configures the logger which receives diagnostics
// about failed operations.
//
// The nil value discards diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *ringOptions) {
		if logger == nil {
			discard := logrus.New()
			discard.SetOutput(io.Discard)
			logger = discard
		}
		opts.logger = logger
	})
}

type funcOption func(*ringOptions)

func (o funcOption) apply(opts *ringOptions) {
	o(opts)
}
