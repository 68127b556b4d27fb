package fromstr

import (
	"strconv"
)

// Person represents a parsed record
type Person struct {
	Name string
	Age  uint
}

// UnmarshalText parses text into the person, the receiver is left untouched on error
func (p *Person) UnmarshalText(text []byte) error {
	person, err := ParsePerson(string(text))
	if err != nil {
		return err
	}
	*p = person
	return nil
}

// MarshalText returns name,age representation
func (p Person) MarshalText() ([]byte, error) {
	return p.appendText(nil), nil
}

// String returns name,age representation
func (p Person) String() string {
	return string(p.appendText(nil))
}

func (p Person) appendText(dst []byte) []byte {
	dst = append(dst, p.Name...)
	dst = append(dst, ',')
	return strconv.AppendUint(dst, uint64(p.Age), 10)
}
