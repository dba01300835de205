package serializers

// MarshalUnmarshaler encodes stored records.
type MarshalUnmarshaler interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(b []byte, output interface{}) error
	Name() string
}
