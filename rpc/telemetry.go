package rpc

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const scopeName = "sutext.github.io/bithelper/rpc"

var (
	encodeAttrs = metric.WithAttributeSet(attribute.NewSet(attribute.String("direction", "encode")))
	decodeAttrs = metric.WithAttributeSet(attribute.NewSet(attribute.String("direction", "decode")))
)

type instruments struct {
	messages metric.Int64Counter
	bytes    metric.Int64Counter
	failures metric.Int64Counter
}

func newInstruments(provider metric.MeterProvider) instruments {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(scopeName)
	return instruments{
		messages: newCounter(meter, "bithelper.rpc.messages", "{message}", "Messages coded"),
		bytes:    newCounter(meter, "bithelper.rpc.size", "By", "Encoded message bytes"),
		failures: newCounter(meter, "bithelper.rpc.failures", "{message}", "Messages that failed to code"),
	}
}

func newCounter(meter metric.Meter, name, unit, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name,
		metric.WithUnit(unit),
		metric.WithDescription(description),
	)
	if err != nil {
		otel.Handle(err)
		return noop.Int64Counter{}
	}
	return c
}

func (i instruments) encoded(size int) {
	i.messages.Add(context.Background(), 1, encodeAttrs)
	i.bytes.Add(context.Background(), int64(size), encodeAttrs)
}

func (i instruments) decoded(size int) {
	i.messages.Add(context.Background(), 1, decodeAttrs)
	i.bytes.Add(context.Background(), int64(size), decodeAttrs)
}

func (i instruments) failed(decode bool) {
	if decode {
		i.failures.Add(context.Background(), 1, decodeAttrs)
		return
	}
	i.failures.Add(context.Background(), 1, encodeAttrs)
}
