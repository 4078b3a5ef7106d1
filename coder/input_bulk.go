package coder

import "fmt"

// Bulk reads mirror the bulk writes. ReadXsTo fills dest[start:start+amount],
// ReadXs allocates the result and ReadXSlice reads the int32 count first. The
// checked variants verify the whole amount before allocating, and a failed
// ReadXSlice rewinds over the count it consumed.

func (in *Input) ReadDirectBoolsTo(dest []bool, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectBool()
	}
}

func (in *Input) ReadBoolsTo(dest []bool, start, amount int) error {
	if err := in.EnsureExtraCapacity(amount); err != nil {
		return err
	}
	in.ReadDirectBoolsTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectBools(amount int) []bool {
	values := make([]bool, amount)
	in.ReadDirectBoolsTo(values, 0, amount)
	return values
}

func (in *Input) ReadBools(amount int) ([]bool, error) {
	if err := in.EnsureExtraCapacity(amount); err != nil {
		return nil, err
	}
	return in.ReadDirectBools(amount), nil
}

func (in *Input) ReadDirectBoolSlice() []bool {
	return in.ReadDirectBools(int(in.ReadDirectInt32()))
}

func (in *Input) ReadBoolSlice() (values []bool, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadBools(amount)
}

func (in *Input) ReadDirectInt8sTo(dest []int8, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectInt8()
	}
}

func (in *Input) ReadInt8sTo(dest []int8, start, amount int) error {
	if err := in.EnsureExtraCapacity(8 * amount); err != nil {
		return err
	}
	in.ReadDirectInt8sTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectInt8s(amount int) []int8 {
	values := make([]int8, amount)
	in.ReadDirectInt8sTo(values, 0, amount)
	return values
}

func (in *Input) ReadInt8s(amount int) ([]int8, error) {
	if err := in.EnsureExtraCapacity(8 * amount); err != nil {
		return nil, err
	}
	return in.ReadDirectInt8s(amount), nil
}

func (in *Input) ReadDirectInt8Slice() []int8 {
	return in.ReadDirectInt8s(int(in.ReadDirectInt32()))
}

func (in *Input) ReadInt8Slice() (values []int8, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadInt8s(amount)
}

func (in *Input) ReadDirectUint8sTo(dest []uint8, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectUint8()
	}
}

func (in *Input) ReadUint8sTo(dest []uint8, start, amount int) error {
	if err := in.EnsureExtraCapacity(8 * amount); err != nil {
		return err
	}
	in.ReadDirectUint8sTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectUint8s(amount int) []uint8 {
	values := make([]uint8, amount)
	in.ReadDirectUint8sTo(values, 0, amount)
	return values
}

func (in *Input) ReadUint8s(amount int) ([]uint8, error) {
	if err := in.EnsureExtraCapacity(8 * amount); err != nil {
		return nil, err
	}
	return in.ReadDirectUint8s(amount), nil
}

func (in *Input) ReadDirectUint8Slice() []uint8 {
	return in.ReadDirectUint8s(int(in.ReadDirectInt32()))
}

func (in *Input) ReadUint8Slice() (values []uint8, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadUint8s(amount)
}

func (in *Input) ReadDirectInt16sTo(dest []int16, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectInt16()
	}
}

func (in *Input) ReadInt16sTo(dest []int16, start, amount int) error {
	if err := in.EnsureExtraCapacity(16 * amount); err != nil {
		return err
	}
	in.ReadDirectInt16sTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectInt16s(amount int) []int16 {
	values := make([]int16, amount)
	in.ReadDirectInt16sTo(values, 0, amount)
	return values
}

func (in *Input) ReadInt16s(amount int) ([]int16, error) {
	if err := in.EnsureExtraCapacity(16 * amount); err != nil {
		return nil, err
	}
	return in.ReadDirectInt16s(amount), nil
}

func (in *Input) ReadDirectInt16Slice() []int16 {
	return in.ReadDirectInt16s(int(in.ReadDirectInt32()))
}

func (in *Input) ReadInt16Slice() (values []int16, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadInt16s(amount)
}

func (in *Input) ReadDirectUint16sTo(dest []uint16, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectUint16()
	}
}

func (in *Input) ReadUint16sTo(dest []uint16, start, amount int) error {
	if err := in.EnsureExtraCapacity(16 * amount); err != nil {
		return err
	}
	in.ReadDirectUint16sTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectUint16s(amount int) []uint16 {
	values := make([]uint16, amount)
	in.ReadDirectUint16sTo(values, 0, amount)
	return values
}

func (in *Input) ReadUint16s(amount int) ([]uint16, error) {
	if err := in.EnsureExtraCapacity(16 * amount); err != nil {
		return nil, err
	}
	return in.ReadDirectUint16s(amount), nil
}

func (in *Input) ReadDirectUint16Slice() []uint16 {
	return in.ReadDirectUint16s(int(in.ReadDirectInt32()))
}

func (in *Input) ReadUint16Slice() (values []uint16, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadUint16s(amount)
}

func (in *Input) ReadDirectInt32sTo(dest []int32, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectInt32()
	}
}

func (in *Input) ReadInt32sTo(dest []int32, start, amount int) error {
	if err := in.EnsureExtraCapacity(32 * amount); err != nil {
		return err
	}
	in.ReadDirectInt32sTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectInt32s(amount int) []int32 {
	values := make([]int32, amount)
	in.ReadDirectInt32sTo(values, 0, amount)
	return values
}

func (in *Input) ReadInt32s(amount int) ([]int32, error) {
	if err := in.EnsureExtraCapacity(32 * amount); err != nil {
		return nil, err
	}
	return in.ReadDirectInt32s(amount), nil
}

func (in *Input) ReadDirectInt32Slice() []int32 {
	return in.ReadDirectInt32s(int(in.ReadDirectInt32()))
}

func (in *Input) ReadInt32Slice() (values []int32, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadInt32s(amount)
}

func (in *Input) ReadDirectUint32sTo(dest []uint32, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectUint32()
	}
}

func (in *Input) ReadUint32sTo(dest []uint32, start, amount int) error {
	if err := in.EnsureExtraCapacity(32 * amount); err != nil {
		return err
	}
	in.ReadDirectUint32sTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectUint32s(amount int) []uint32 {
	values := make([]uint32, amount)
	in.ReadDirectUint32sTo(values, 0, amount)
	return values
}

func (in *Input) ReadUint32s(amount int) ([]uint32, error) {
	if err := in.EnsureExtraCapacity(32 * amount); err != nil {
		return nil, err
	}
	return in.ReadDirectUint32s(amount), nil
}

func (in *Input) ReadDirectUint32Slice() []uint32 {
	return in.ReadDirectUint32s(int(in.ReadDirectInt32()))
}

func (in *Input) ReadUint32Slice() (values []uint32, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadUint32s(amount)
}

func (in *Input) ReadDirectInt64sTo(dest []int64, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectInt64()
	}
}

func (in *Input) ReadInt64sTo(dest []int64, start, amount int) error {
	if err := in.EnsureExtraCapacity(64 * amount); err != nil {
		return err
	}
	in.ReadDirectInt64sTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectInt64s(amount int) []int64 {
	values := make([]int64, amount)
	in.ReadDirectInt64sTo(values, 0, amount)
	return values
}

func (in *Input) ReadInt64s(amount int) ([]int64, error) {
	if err := in.EnsureExtraCapacity(64 * amount); err != nil {
		return nil, err
	}
	return in.ReadDirectInt64s(amount), nil
}

func (in *Input) ReadDirectInt64Slice() []int64 {
	return in.ReadDirectInt64s(int(in.ReadDirectInt32()))
}

func (in *Input) ReadInt64Slice() (values []int64, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadInt64s(amount)
}

func (in *Input) ReadDirectUint64sTo(dest []uint64, start, amount int) {
	for i := start; i < start+amount; i++ {
		dest[i] = in.ReadDirectUint64()
	}
}

func (in *Input) ReadUint64sTo(dest []uint64, start, amount int) error {
	if err := in.EnsureExtraCapacity(64 * amount); err != nil {
		return err
	}
	in.ReadDirectUint64sTo(dest, start, amount)
	return nil
}

func (in *Input) ReadDirectUint64s(amount int) []uint64 {
	values := make([]uint64, amount)
	in.ReadDirectUint64sTo(values, 0, amount)
	return values
}

func (in *Input) ReadUint64s(amount int) ([]uint64, error) {
	if err := in.EnsureExtraCapacity(64 * amount); err != nil {
		return nil, err
	}
	return in.ReadDirectUint64s(amount), nil
}

func (in *Input) ReadDirectUint64Slice() []uint64 {
	return in.ReadDirectUint64s(int(in.ReadDirectInt32()))
}

func (in *Input) ReadUint64Slice() (values []uint64, err error) {
	defer in.rewindOnError(in.Position(), &err)
	amount, err := in.readLength()
	if err != nil {
		return nil, err
	}
	return in.ReadUint64s(amount)
}

func (in *Input) readLength() (int, error) {
	n, err := in.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	return int(n), nil
}
