package rpc

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"sutext.github.io/bithelper/coder"
)

var ErrProtoTooLarge = errors.New("rpc: embedded message too large")

// AddProto embeds m as a self-describing uint8 slice: an int32 byte count
// followed by the protobuf encoding of m.
func AddProto(out *coder.Output, m proto.Message) error {
	data, err := proto.Marshal(m)
	if err != nil {
		return errors.Wrapf(err, "rpc: embed %T", m)
	}
	out.AddUint8Slice(data)
	return nil
}

// ReadProto reads a message written by AddProto into m. Embedded messages
// longer than maxLength bytes are rejected before they are read. On error the
// read position is restored.
func ReadProto(in *coder.Input, m proto.Message, maxLength int) (err error) {
	start := in.Position()
	defer func() {
		if err != nil {
			in.Seek(start)
		}
	}()
	n, err := in.ReadInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.Wrapf(coder.ErrNegativeLength, "rpc: embedded %T", m)
	}
	if int(n) > maxLength {
		return errors.Wrapf(ErrProtoTooLarge, "%T is %d bytes, limit %d", m, n, maxLength)
	}
	data, err := in.ReadUint8s(int(n))
	if err != nil {
		return err
	}
	if err = proto.Unmarshal(data, m); err != nil {
		return errors.Wrapf(err, "rpc: embedded %T", m)
	}
	return nil
}
