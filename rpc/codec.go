// Package rpc carries bit-packed messages over gRPC.
//
// Importing the package registers a Codec under the content-subtype
// "bithelper". Messages implementing coder.Encodable and coder.Decodable are
// written in the bit-packed format; plain protobuf messages fall back to
// proto.Marshal so a service can mix both.
package rpc

import (
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"sutext.github.io/bithelper/coder"
	"sutext.github.io/bithelper/internal/metrics"
	"sutext.github.io/bithelper/xlog"
)

const Name = "bithelper"

var ErrMessageTooLarge = errors.New("rpc: message too large")

func init() {
	encoding.RegisterCodec(NewCodec())
}

// LimitedDecodable is implemented by messages that want the codec limits while
// decoding. The codec prefers it over coder.Decodable.
type LimitedDecodable interface {
	DecodeLimited(in *coder.Input, limits Limits) error
}

// Codec implements encoding.Codec.
type Codec struct {
	opts     *Options
	registry *metrics.Registry
	encoded  metrics.Counter
	decoded  metrics.Counter
	outBytes metrics.Counter
	inBytes  metrics.Counter
	failures metrics.Counter
	meters   instruments
}

func NewCodec(opts ...Option) *Codec {
	options := NewOptions(opts...)
	registry := metrics.NewRegistry()
	return &Codec{
		opts:     options,
		meters:   newInstruments(options.MeterProvider),
		registry: registry,
		encoded:  registry.Counter("rpc.encode.messages"),
		decoded:  registry.Counter("rpc.decode.messages"),
		outBytes: registry.Counter("rpc.encode.bytes"),
		inBytes:  registry.Counter("rpc.decode.bytes"),
		failures: registry.Counter("rpc.failures"),
	}
}

func (c *Codec) Name() string {
	return c.opts.Name
}

func (c *Codec) Limits() Limits {
	return c.opts.Limits()
}

// Stats returns the message, byte and failure counts of c.
func (c *Codec) Stats() map[string]uint64 {
	return c.registry.Snapshot()
}

// CallOption forces c on a single call, whatever is registered.
func (c *Codec) CallOption() grpc.CallOption {
	return grpc.ForceCodec(c)
}

// ServerOption makes a server use c for every request.
func (c *Codec) ServerOption() grpc.ServerOption {
	return grpc.ForceServerCodec(c)
}

// CallOption selects the registered codec for a call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(Name)
}

func (c *Codec) Marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch m := v.(type) {
	case coder.Encodable:
		data, err = coder.Marshal(m)
	case proto.Message:
		data, err = proto.Marshal(m)
	default:
		err = errors.Errorf("%T is neither coder.Encodable nor proto.Message", v)
	}
	if err != nil {
		c.failures.Inc()
		c.meters.failed(false)
		return nil, errors.WithMessagef(err, "rpc: marshal %T", v)
	}
	c.meters.encoded(len(data))
	c.encoded.Inc()
	c.outBytes.Add(uint64(len(data)))
	return data, nil
}

func (c *Codec) Unmarshal(data []byte, v any) error {
	if c.opts.MaxMessageSize > 0 && len(data) > c.opts.MaxMessageSize {
		return c.fail(v, errors.Wrapf(ErrMessageTooLarge, "%d bytes, limit %d", len(data), c.opts.MaxMessageSize))
	}
	var err error
	switch m := v.(type) {
	case LimitedDecodable:
		err = m.DecodeLimited(coder.NewUint8RefInput(data), c.Limits())
	case coder.Decodable:
		err = coder.Unmarshal(data, m)
	case proto.Message:
		err = proto.Unmarshal(data, m)
	default:
		return c.fail(v, errors.Errorf("rpc: cannot unmarshal into %T", v))
	}
	if err != nil {
		return c.fail(v, errors.Wrapf(err, "rpc: unmarshal %T", v))
	}
	c.meters.decoded(len(data))
	c.decoded.Inc()
	c.inBytes.Add(uint64(len(data)))
	return nil
}

func (c *Codec) fail(v any, err error) error {
	c.failures.Inc()
	c.meters.failed(true)
	logger := c.opts.Logger
	if logger == nil {
		logger = xlog.Default()
	}
	logger.Debug("rpc decode failed", xlog.Type(v), xlog.Err(err))
	return err
}
