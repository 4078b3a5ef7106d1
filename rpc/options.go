package rpc

import (
	"go.opentelemetry.io/otel/metric"
	"sutext.github.io/bithelper/xlog"
)

type Option struct {
	f func(*Options)
}
type Options struct {
	Name            string
	Logger          *xlog.Logger
	MaxMessageSize  int
	MaxStringLength int
	MaxProtoLength  int
	MeterProvider   metric.MeterProvider
}

// Limits bound what a LimitedDecodable may read from one message.
type Limits struct {
	MaxStringLength int
	MaxProtoLength  int
}

func NewOptions(opts ...Option) *Options {
	var options = &Options{
		Name:            Name,
		MaxMessageSize:  4 << 20,
		MaxStringLength: 1 << 16,
		MaxProtoLength:  1 << 20,
	}
	for _, o := range opts {
		o.f(options)
	}
	return options
}

func (o *Options) Limits() Limits {
	return Limits{MaxStringLength: o.MaxStringLength, MaxProtoLength: o.MaxProtoLength}
}

// WithName changes the content-subtype the codec answers to.
func WithName(name string) Option {
	return Option{f: func(o *Options) { o.Name = name }}
}

// WithLogger sets the logger for decode failures. Without it the codec uses
// the xlog default at the time of the failure.
func WithLogger(logger *xlog.Logger) Option {
	return Option{f: func(o *Options) { o.Logger = logger }}
}

// WithMaxMessageSize rejects encoded messages longer than size bytes. Zero
// disables the check.
func WithMaxMessageSize(size int) Option {
	return Option{f: func(o *Options) { o.MaxMessageSize = size }}
}
func WithMaxStringLength(length int) Option {
	return Option{f: func(o *Options) { o.MaxStringLength = length }}
}
func WithMaxProtoLength(length int) Option {
	return Option{f: func(o *Options) { o.MaxProtoLength = length }}
}

// WithMeterProvider exports codec counters through provider instead of the
// global otel provider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return Option{f: func(o *Options) { o.MeterProvider = provider }}
}
