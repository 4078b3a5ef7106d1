package rpc

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"sutext.github.io/bithelper/coder"
	"sutext.github.io/bithelper/xlog"
)

type record struct {
	Name   *string
	Values []int16
	Flags  []bool
	Delta  int64
	Seq    uint64
	Stamp  *timestamppb.Timestamp
}

const deltaBits = 12

func (r *record) EncodeTo(out *coder.Output) error {
	out.AddString(r.Name)
	out.AddInt16Slice(r.Values)
	out.AddBoolSlice(r.Flags)
	out.AddSizedInt64(r.Delta, deltaBits)
	out.AddVarUint64(r.Seq)
	out.AddBool(r.Stamp != nil)
	if r.Stamp == nil {
		return nil
	}
	return AddProto(out, r.Stamp)
}

func (r *record) DecodeLimited(in *coder.Input, limits Limits) error {
	var err error
	if r.Name, err = in.ReadString(limits.MaxStringLength); err != nil {
		return err
	}
	if r.Values, err = in.ReadInt16Slice(); err != nil {
		return err
	}
	if r.Flags, err = in.ReadBoolSlice(); err != nil {
		return err
	}
	if r.Delta, err = in.ReadSizedInt64(deltaBits); err != nil {
		return err
	}
	if r.Seq, err = in.ReadVarUint64(); err != nil {
		return err
	}
	hasStamp, err := in.ReadBool()
	if err != nil || !hasStamp {
		return err
	}
	r.Stamp = new(timestamppb.Timestamp)
	return ReadProto(in, r.Stamp, limits.MaxProtoLength)
}

func (r *record) DecodeFrom(in *coder.Input) error {
	return r.DecodeLimited(in, NewOptions().Limits())
}

func sampleRecord() *record {
	name := "sensor-7"
	return &record{
		Name:   &name,
		Values: []int16{-300, 0, 12, 32767},
		Flags:  []bool{true, false, true},
		Delta:  -2048,
		Seq:    1 << 40,
		Stamp:  timestamppb.New(time.Date(2024, 3, 1, 12, 0, 0, 500, time.UTC)),
	}
}

func diffRecord(want, got *record) string {
	return cmp.Diff(want, got, protocmp.Transform(), cmpopts.EquateEmpty())
}

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(Name)
	require.NotNil(t, c)
	assert.IsType(t, &Codec{}, c)
	assert.Equal(t, "bithelper", c.Name())
}

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  *record
	}{
		{"full", sampleRecord()},
		{"empty", &record{}},
		{"no stamp", &record{Values: []int16{1}, Seq: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCodec()
			data, err := c.Marshal(tt.rec)
			require.NoError(t, err)

			got := new(record)
			require.NoError(t, c.Unmarshal(data, got))
			if diff := diffRecord(tt.rec, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			stats := c.Stats()
			assert.Equal(t, uint64(1), stats["rpc.encode.messages"])
			assert.Equal(t, uint64(1), stats["rpc.decode.messages"])
			assert.Equal(t, uint64(len(data)), stats["rpc.encode.bytes"])
			assert.Zero(t, stats["rpc.failures"])
		})
	}
}

func TestCodecDecodableWithoutLimits(t *testing.T) {
	rec := sampleRecord()
	data, err := coder.Marshal(rec)
	require.NoError(t, err)
	got := new(record)
	require.NoError(t, coder.Unmarshal(data, got))
	assert.Empty(t, diffRecord(rec, got))
}

func TestCodecProtoFallback(t *testing.T) {
	c := NewCodec()
	msg := wrapperspb.String("plain protobuf")
	data, err := c.Marshal(msg)
	require.NoError(t, err)

	want, err := proto.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, want, data)

	got := new(wrapperspb.StringValue)
	require.NoError(t, c.Unmarshal(data, got))
	assert.Equal(t, "plain protobuf", got.GetValue())
}

func TestCodecUnsupported(t *testing.T) {
	c := NewCodec(WithLogger(xlog.Discard()))
	_, err := c.Marshal(42)
	assert.ErrorContains(t, err, "rpc: marshal int: int is neither")

	var n int
	err = c.Unmarshal([]byte{1}, &n)
	assert.ErrorContains(t, err, "cannot unmarshal into *int")
	assert.Equal(t, uint64(2), c.Stats()["rpc.failures"])
}

func TestCodecLimits(t *testing.T) {
	data, err := NewCodec().Marshal(sampleRecord())
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"message size", []Option{WithMaxMessageSize(len(data) - 1)}, ErrMessageTooLarge},
		{"string length", []Option{WithMaxStringLength(3)}, coder.ErrStringLength},
		{"proto length", []Option{WithMaxProtoLength(2)}, ErrProtoTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCodec(append(tt.opts, WithLogger(xlog.Discard()))...)
			err := c.Unmarshal(data, new(record))
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, uint64(1), c.Stats()["rpc.failures"])
		})
	}

	unlimited := NewCodec(WithMaxMessageSize(0))
	assert.NoError(t, unlimited.Unmarshal(data, new(record)))
}

func TestCodecTruncated(t *testing.T) {
	c := NewCodec(WithLogger(xlog.Discard()))
	data, err := c.Marshal(sampleRecord())
	require.NoError(t, err)

	err = c.Unmarshal(data[:len(data)-3], new(record))
	assert.ErrorIs(t, err, coder.ErrCapacity)
	var capErr *coder.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Positive(t, capErr.Shortfall())
}

func TestProtoNegativeLength(t *testing.T) {
	out := coder.NewUint8Output(0)
	out.AddInt32(-1)
	err := ReadProto(coder.NewUint8RefInput(out.Bytes()), new(wrapperspb.StringValue), 100)
	assert.ErrorIs(t, err, coder.ErrNegativeLength)
}

func TestProtoMisaligned(t *testing.T) {
	out := coder.NewInt8Output(0)
	out.AddBools([]bool{true, false, true})
	require.NoError(t, AddProto(out.Output, wrapperspb.Int64(-99)))
	out.AddBool(true)

	in := coder.NewInt8Input(out.Int8s())
	_, err := in.ReadBools(3)
	require.NoError(t, err)
	got := new(wrapperspb.Int64Value)
	require.NoError(t, ReadProto(in, got, 64))
	assert.Equal(t, int64(-99), got.GetValue())
	last, err := in.ReadBool()
	require.NoError(t, err)
	assert.True(t, last)
}

func TestProtoRewindsOnError(t *testing.T) {
	out := coder.NewUint8Output(0)
	out.AddBool(true)
	require.NoError(t, AddProto(out.Output, wrapperspb.String("truncated payload")))
	data := out.Bytes()

	tests := []struct {
		name  string
		data  []byte
		limit int
		want  error
	}{
		{"truncated", data[:len(data)-4], 1 << 10, coder.ErrCapacity},
		{"over limit", data, 3, ErrProtoTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := coder.NewUint8RefInput(tt.data)
			_, err := in.ReadBool()
			require.NoError(t, err)
			err = ReadProto(in, new(wrapperspb.StringValue), tt.limit)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 1, in.Position())
		})
	}
}
