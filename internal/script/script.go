// Package script encodes YAML value scripts into bit streams and checks that
// they decode back to the same values.
package script

import (
	"encoding/hex"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"sutext.github.io/bithelper/coder"
	"sutext.github.io/bithelper/converter"
)

var (
	ErrBacking   = errors.New("unknown backing")
	ErrRoundTrip = errors.New("decoded values differ")
	ErrExpected  = errors.New("encoding differs from expected")
	ErrTrailing  = errors.New("decoder stopped at the wrong position")
)

// Backings lists the backing names a script may select.
var Backings = []string{"int8", "uint8", "bool"}

type Script struct {
	Name            string  `yaml:"name"`
	Backing         string  `yaml:"backing"`
	MaxStringLength int     `yaml:"maxStringLength"`
	Expect          string  `yaml:"expect"`
	Values          []Value `yaml:"values"`
}

type Result struct {
	Name    string
	Backing string
	Bits    int
	Hex     string
}

func Parse(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if s.Backing == "" {
		s.Backing = "uint8"
	}
	if !slices.Contains(Backings, s.Backing) {
		return nil, errors.Wrapf(ErrBacking, "%q", s.Backing)
	}
	if s.MaxStringLength <= 0 {
		s.MaxStringLength = math.MaxInt32
	}
	return s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "script %s", path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

type backing struct {
	out   *coder.Output
	bytes func() []byte
	input func() *coder.Input
}

func newBacking(name string) backing {
	switch name {
	case "int8":
		o := coder.NewInt8Output(0)
		return backing{
			out: o.Output,
			bytes: func() []byte {
				return convert[uint8](o.Int8s())
			},
			input: func() *coder.Input {
				return coder.NewInt8Input(slices.Clone(o.Int8s()))
			},
		}
	case "bool":
		o := coder.NewBoolOutput(0)
		return backing{
			out: o.Output,
			bytes: func() []byte {
				return packBools(o.Bools())
			},
			input: func() *coder.Input {
				return coder.NewBoolInput(o.Bools())
			},
		}
	default:
		o := coder.NewUint8Output(0)
		return backing{
			out:   o.Output,
			bytes: o.Bytes,
			input: func() *coder.Input {
				return coder.NewUint8RefInput(o.Bytes())
			},
		}
	}
}

// packBools lays one bool per bit out in the packed byte format. The last
// byte is padded with false.
func packBools(bools []bool) []byte {
	out := make([]byte, 0, (len(bools)+7)/8)
	for chunk := range slices.Chunk(bools, 8) {
		var octet [8]bool
		copy(octet[:], chunk)
		out = append(out, uint8(converter.BoolsToInt8(octet)))
	}
	return out
}

// Run encodes the script values, decodes them again and compares.
func (s *Script) Run() (*Result, error) {
	b := newBacking(s.Backing)
	for _, v := range s.Values {
		v.encode(b.out)
	}
	bits := b.out.Position()
	b.out.Terminate()
	res := &Result{
		Name:    s.Name,
		Backing: s.Backing,
		Bits:    bits,
		Hex:     hex.EncodeToString(b.bytes()),
	}

	in := b.input()
	decoded := make([]Value, 0, len(s.Values))
	for i := range s.Values {
		v, err := s.Values[i].decode(in, s.MaxStringLength)
		if err != nil {
			return res, errors.Wrapf(err, "value %d (%s)", i, s.Values[i].Kind)
		}
		decoded = append(decoded, v)
	}
	if diff := cmp.Diff(s.Values, decoded, cmpopts.EquateEmpty()); diff != "" {
		return res, errors.Wrapf(ErrRoundTrip, "(-want +got):\n%s", diff)
	}
	if pos := in.Position(); pos != bits {
		return res, errors.Wrapf(ErrTrailing, "at bit %d of %d", pos, bits)
	}
	if s.Expect != "" && !strings.EqualFold(strings.Join(strings.Fields(s.Expect), ""), res.Hex) {
		return res, errors.Wrapf(ErrExpected, "want %s, got %s", s.Expect, res.Hex)
	}
	return res, nil
}
