package conv

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fromstr"
)

func TestConverter_ConvertPerson(t *testing.T) {
	converter := Default()

	testCases := []struct {
		description string
		src         interface{}
		expect      fromstr.Person
		expectErr   error
	}{
		{description: "string", src: "Mark,20", expect: fromstr.Person{Name: "Mark", Age: 20}},
		{description: "bytes", src: []byte("John,32"), expect: fromstr.Person{Name: "John", Age: 32}},
		{description: "person", src: fromstr.Person{Name: "Ann", Age: 1}, expect: fromstr.Person{Name: "Ann", Age: 1}},
		{description: "empty", src: "", expectErr: fromstr.ErrEmpty},
		{description: "bad len", src: "John", expectErr: fromstr.ErrBadLen},
		{description: "no name", src: ",1", expectErr: fromstr.ErrNoName},
		{description: "parse int", src: []byte("John,x"), expectErr: fromstr.ErrParseInt},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var actual fromstr.Person
			err := converter.Convert(tc.src, &actual)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestConverter_ConvertPersonPointer(t *testing.T) {
	converter := Default()
	var actual *fromstr.Person
	assert.NoError(t, converter.Convert("Mark,20", &actual))
	if assert.NotNil(t, actual) {
		assert.Equal(t, fromstr.Person{Name: "Mark", Age: 20}, *actual)
	}

	//without registered conversion text unmarshaler is used
	plain := NewConverter(Options{TrimSpace: true})
	var person *fromstr.Person
	assert.NoError(t, plain.Convert("  John,32\n", &person))
	if assert.NotNil(t, person) {
		assert.Equal(t, fromstr.Person{Name: "John", Age: 32}, *person)
	}
}

func TestConverter_ConvertPrimitives(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	var u uint
	assert.NoError(t, converter.Convert("32", &u))
	assert.EqualValues(t, 32, u)
	assert.Error(t, converter.Convert("-1", &u))
	assert.Error(t, converter.Convert(-1, &u))

	var u8 uint8
	assert.Error(t, converter.Convert(300, &u8))

	var i int
	assert.NoError(t, converter.Convert(uint(7), &i))
	assert.Equal(t, 7, i)
	assert.NoError(t, converter.Convert(true, &i))
	assert.Equal(t, 1, i)

	var s string
	assert.NoError(t, converter.Convert(uint(20), &s))
	assert.Equal(t, "20", s)
	assert.NoError(t, converter.Convert(fromstr.Person{Name: "Mark", Age: 20}, &s))
	assert.Equal(t, "Mark,20", s)

	var b bool
	assert.NoError(t, converter.Convert("true", &b))
	assert.True(t, b)
	assert.Error(t, converter.Convert(struct{}{}, &b))
}

func TestConverter_RegisterConversion(t *testing.T) {
	converter := Default()
	converter.RegisterConversion(reflect.TypeOf(""), reflect.TypeOf(fromstr.Person{}), func(src interface{}, dest interface{}, opts Options) error {
		name, age, _ := strings.Cut(src.(string), ":")
		return dest.(*fromstr.Person).UnmarshalText([]byte(name + "," + age))
	})
	var actual fromstr.Person
	assert.NoError(t, converter.Convert("Mark:20", &actual))
	assert.Equal(t, fromstr.Person{Name: "Mark", Age: 20}, actual)
}

func TestConverter_InvalidDestination(t *testing.T) {
	converter := Default()
	var person fromstr.Person
	var nilPerson *fromstr.Person
	testCases := []struct {
		description string
		dest        interface{}
	}{
		{description: "nil", dest: nil},
		{description: "not pointer", dest: person},
		{description: "nil pointer", dest: nilPerson},
	}
	for _, tc := range testCases {
		err := converter.Convert("Mark,20", tc.dest)
		assert.Error(t, err, tc.description)
		assert.False(t, errors.Is(err, fromstr.ErrEmpty), tc.description)
	}
}

func TestConverter_ConvertAssignablePointer(t *testing.T) {
	converter := Default()
	src := &fromstr.Person{Name: "Mark", Age: 20}
	var actual *fromstr.Person
	assert.NoError(t, converter.Convert(src, &actual))
	assert.Same(t, src, actual)
}

func TestConverter_RegisterConversionPointerDestination(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	converter.RegisterConversion(reflect.TypeOf(""), reflect.TypeOf(fromstr.Person{}), func(src interface{}, dest interface{}, opts Options) error {
		name, age, _ := strings.Cut(src.(string), ":")
		return dest.(*fromstr.Person).UnmarshalText([]byte(name + "," + age))
	})

	var actual *fromstr.Person
	assert.NotPanics(t, func() {
		assert.NoError(t, converter.Convert("Mark:20", &actual))
	})
	if assert.NotNil(t, actual) {
		assert.Equal(t, fromstr.Person{Name: "Mark", Age: 20}, *actual)
	}

	var untouched *fromstr.Person
	assert.ErrorIs(t, converter.Convert("Mark:x", &untouched), fromstr.ErrParseInt)
	assert.Nil(t, untouched)
}
