package fromstr

import (
	"github.com/francoispqt/gojay"
)

// MarshalJSONObject encodes person as {"name":..., "age":...}
func (p *Person) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", p.Name)
	enc.Uint64Key("age", uint64(p.Age))
}

// IsNil returns true if person is nil
func (p *Person) IsNil() bool {
	return p == nil
}

// UnmarshalJSONObject decodes person fields, unknown keys are ignored
func (p *Person) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&p.Name)
	case "age":
		var age uint64
		if err := dec.Uint64(&age); err != nil {
			return err
		}
		p.Age = uint(age)
	}
	return nil
}

// NKeys returns number of decoded keys
func (p *Person) NKeys() int {
	return 2
}

// MarshalJSON encodes person with gojay
func (p Person) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONObject(&p)
}

// UnmarshalJSON decodes either a JSON object or a "name,age" JSON string
func (p *Person) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := gojay.Unmarshal(data, &text); err != nil {
			return err
		}
		return p.UnmarshalText([]byte(text))
	}
	return gojay.UnmarshalJSONObject(data, p)
}
