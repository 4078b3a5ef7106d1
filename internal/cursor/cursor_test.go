package cursor

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sutext.github.io/bithelper/converter"
)

type op struct {
	isByte bool
	bit    bool
	b      int8
}

func randomOps(rng *rand.Rand, n int) []op {
	ops := make([]op, n)
	for i := range ops {
		if rng.IntN(3) == 0 {
			ops[i] = op{isByte: true, b: int8(rng.IntN(256) - 128)}
		} else {
			ops[i] = op{bit: rng.IntN(2) == 1}
		}
	}
	return ops
}

// referenceBytes packs ops bit by bit with the octet converter.
func referenceBytes(ops []op) []int8 {
	var bits []bool
	for _, o := range ops {
		if o.isByte {
			b := converter.Int8ToBools(o.b)
			bits = append(bits, b[:]...)
		} else {
			bits = append(bits, o.bit)
		}
	}
	var out []int8
	for i := 0; i < len(bits); i += 8 {
		var octet [8]bool
		copy(octet[:], bits[i:min(i+8, len(bits))])
		out = append(out, converter.BoolsToInt8(octet))
	}
	return out
}

func TestSplitByteMatchesBitReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for round := range 200 {
		ops := randomOps(rng, rng.IntN(64)+1)
		w := NewWriter[int8](0)
		for _, o := range ops {
			if o.isByte {
				w.WriteInt8(o.b)
			} else {
				w.WriteBool(o.bit)
			}
		}
		want := referenceBytes(ops)
		if diff := cmp.Diff(want, w.Data()); diff != "" {
			t.Fatalf("round %d: packed bytes mismatch (-want +got):\n%s", round, diff)
		}

		r := NewReader(w.Data(), 0, false)
		for i, o := range ops {
			if o.isByte {
				require.Equal(t, o.b, r.ReadInt8(), "round %d op %d", round, i)
			} else {
				require.Equal(t, o.bit, r.ReadBool(), "round %d op %d", round, i)
			}
		}
		require.Equal(t, w.Position(), r.Position())
	}
}

func TestWriterKnownBytes(t *testing.T) {
	w := NewWriter[uint8](1)
	w.WriteBool(true)
	assert.Equal(t, []uint8{0xbf}, w.Data())
	for range 7 {
		w.WriteBool(true)
	}
	assert.Equal(t, []uint8{0x7f}, w.Data())
	w.WriteInt8(-125)
	assert.Equal(t, []uint8{0x7f, 0x83}, w.Data())
}

func TestSignedAndUnsignedParity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	ops := randomOps(rng, 500)
	signed := NewWriter[int8](0)
	unsigned := NewWriter[uint8](0)
	for _, o := range ops {
		if o.isByte {
			signed.WriteInt8(o.b)
			unsigned.WriteInt8(o.b)
		} else {
			signed.WriteBool(o.bit)
			unsigned.WriteBool(o.bit)
		}
	}
	require.Len(t, unsigned.Data(), len(signed.Data()))
	for i, b := range signed.Data() {
		require.Equal(t, uint8(b), unsigned.Data()[i], "byte %d", i)
	}
}

func TestReserveIsAmortized(t *testing.T) {
	w := NewWriter[uint8](0)
	grows := 0
	last := cap(w.Data())
	for i := range 100000 {
		w.Reserve(1)
		require.GreaterOrEqual(t, w.RemainingBits(), 1)
		w.WriteBool(i%3 == 0)
		if c := cap(w.Data()); c != last {
			grows++
			last = c
		}
	}
	assert.Less(t, grows, 40)
}

func TestReserveCountsPartialByte(t *testing.T) {
	w := NewWriter[int8](1)
	w.WriteBool(true)
	w.WriteBool(false)
	assert.Equal(t, 6, w.RemainingBits())
	w.Reserve(6)
	assert.Equal(t, 1, cap(w.Data()))
	w.Reserve(7)
	assert.GreaterOrEqual(t, w.RemainingBits(), 7)
	assert.Equal(t, 2, w.Position())
}

func TestWriterTerminateShrinks(t *testing.T) {
	w := NewWriter[uint8](64)
	w.WriteInt8(1)
	w.WriteBool(true)
	w.Terminate()
	assert.Equal(t, 2, len(w.Data()))
	assert.Equal(t, 2, cap(w.Data()))
}

func TestReaderPositions(t *testing.T) {
	r := NewReader([]uint8{0x7f, 0x83, 0x00}, 1, false)
	assert.Equal(t, 8, r.Position())
	assert.Equal(t, 16, r.RemainingBits())
	assert.Equal(t, int8(-125), r.ReadInt8())
	r.ReadBool()
	assert.Equal(t, 17, r.Position())
	assert.Equal(t, 7, r.RemainingBits())
}

func TestReaderTerminate(t *testing.T) {
	data := []uint8{1, 2, 3}
	borrowed := NewReader(data, 0, false)
	borrowed.Terminate()
	assert.Equal(t, []uint8{1, 2, 3}, data)
	assert.Equal(t, 0, borrowed.RemainingBits())

	owned := NewReader([]int8{1, 2, 3}, 0, true)
	owned.Terminate()
	assert.Equal(t, 0, owned.Size())
}

func TestBoolBackingMatchesPacked(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 17))
	ops := randomOps(rng, 300)
	bw := NewBoolWriter(0)
	for _, o := range ops {
		if o.isByte {
			bw.WriteInt8(o.b)
		} else {
			bw.WriteBool(o.bit)
		}
	}
	br := NewBoolReader(bw.Data())
	for i, o := range ops {
		if o.isByte {
			require.Equal(t, o.b, br.ReadInt8(), "op %d", i)
		} else {
			require.Equal(t, o.bit, br.ReadBool(), "op %d", i)
		}
	}
	assert.Equal(t, 0, br.RemainingBits())
}

func TestReaderSeek(t *testing.T) {
	w := NewWriter[uint8](0)
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteBool(true)
	w.WriteInt8(-125)
	w.WriteInt8(99)

	r := NewReader(w.Data(), 0, false)
	r.ReadBool()
	pos := r.Position()
	first := r.ReadBool()
	b := r.ReadBool()
	v := r.ReadInt8()
	require.Equal(t, []any{false, true, int8(-125)}, []any{first, b, v})

	r.Seek(pos)
	assert.Equal(t, 1, r.Position())
	assert.False(t, r.ReadBool())
	r.Seek(3)
	assert.Equal(t, int8(-125), r.ReadInt8())
	assert.Equal(t, int8(99), r.ReadInt8())

	br := NewBoolReader([]bool{true, false, true})
	br.ReadBool()
	br.ReadBool()
	br.Seek(1)
	assert.Equal(t, 1, br.Position())
	assert.False(t, br.ReadBool())
}
