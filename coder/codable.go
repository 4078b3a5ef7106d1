package coder

type Encodable interface {
	EncodeTo(*Output) error
}
type Decodable interface {
	DecodeFrom(*Input) error
}
type Codable interface {
	Encodable
	Decodable
}

// Marshal encodes ec into a fresh byte buffer.
func Marshal(ec Encodable) ([]byte, error) {
	out := NewUint8Output(64)
	if err := ec.EncodeTo(out.Output); err != nil {
		return nil, err
	}
	out.Terminate()
	return out.Bytes(), nil
}

// Unmarshal decodes b into dc without taking ownership of b.
func Unmarshal(b []byte, dc Decodable) error {
	return dc.DecodeFrom(NewUint8RefInput(b))
}
