package flt

import (
	log "github.com/sirupsen/logrus"
)

// ObserverFunc is called after every record with the record header, the
// offset of its header and the position the decoder moved to.
type ObserverFunc func(h Header, start, end int64)

type Options struct {
	// Lenient skips records whose length is too small for their fields
	// instead of failing the whole decode.
	Lenient  bool
	Logger   log.FieldLogger
	Source   string
	Observer ObserverFunc
}

type Option func(*Options)

func WithLenient(lenient bool) Option {
	return func(o *Options) {
		o.Lenient = lenient
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithSourceName sets the name used in log fields, usually the file name
func WithSourceName(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

func WithObserver(fn ObserverFunc) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		Logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.StandardLogger()
	}
	return o
}
