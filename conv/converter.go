package conv

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/viant/fromstr"
)

// Options contains configuration for the converter
type Options struct {
	// TrimSpace trims string source before parsing
	TrimSpace bool
	// NumberBase is the base used for integer parsing, 0 means prefix driven (0x, 0o, 0b)
	NumberBase int
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{NumberBase: 10}
}

// Converter provides type conversion functionality
type Converter struct {
	options       Options
	customConvMap sync.Map // map[typeKey]ConversionFunc
}

// ConversionFunc defines a custom conversion function
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

var (
	stringType          = reflect.TypeOf("")
	personType          = reflect.TypeOf(fromstr.Person{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// NewConverter creates a new type converter with the provided options
func NewConverter(options Options) *Converter {
	return &Converter{
		options: options,
	}
}

// Default returns converter with string to fromstr.Person conversion registered
func Default() *Converter {
	ret := NewConverter(DefaultOptions())
	ret.RegisterConversion(stringType, personType, stringToPerson)
	return ret
}

func stringToPerson(src interface{}, dest interface{}, opts Options) error {
	text := src.(string)
	if opts.TrimSpace {
		text = strings.TrimSpace(text)
	}
	person, err := fromstr.ParsePerson(text)
	if err != nil {
		return err
	}
	actual, ok := dest.(*fromstr.Person)
	if !ok {
		return fmt.Errorf("unsupported person destination: %T", dest)
	}
	*actual = person
	return nil
}

// RegisterConversion registers a custom conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// Convert converts the source value to the destination value
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	if src == nil {
		return nil
	}

	srcValue := reflect.ValueOf(src)
	srcType := srcValue.Type()
	destElemType := destValue.Elem().Type()

	if v, ok := c.customConvMap.Load(typeKey{srcType, destElemType}); ok {
		return v.(ConversionFunc)(src, dest, c.options)
	}
	if srcType.AssignableTo(destElemType) {
		destValue.Elem().Set(srcValue)
		return nil
	}

	if destElemType.Kind() == reflect.Ptr {
		//allocate pointee and convert into it
		elem := reflect.New(destElemType.Elem())
		if v, ok := c.customConvMap.Load(typeKey{srcType, destElemType.Elem()}); ok {
			if err := v.(ConversionFunc)(src, elem.Interface(), c.options); err != nil {
				return err
			}
		} else if err := c.Convert(src, elem.Interface()); err != nil {
			return err
		}
		destValue.Elem().Set(elem)
		return nil
	}

	if text, ok := c.asText(srcValue); ok && destValue.Type().Implements(textUnmarshalerType) {
		return destValue.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
	}

	switch destElemType.Kind() {
	case reflect.String:
		return c.convertToString(destValue, srcValue)
	case reflect.Bool:
		return c.convertToBool(destValue, srcValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return c.convertToInt(destValue, srcValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return c.convertToUint(destValue, srcValue)
	}

	if srcType.ConvertibleTo(destElemType) {
		destValue.Elem().Set(srcValue.Convert(destElemType))
		return nil
	}
	return fmt.Errorf("unsupported conversion: %v to %v", srcType, destElemType)
}

// asText returns string or []byte source text
func (c *Converter) asText(srcValue reflect.Value) (string, bool) {
	var text string
	switch {
	case srcValue.Kind() == reflect.String:
		text = srcValue.String()
	case srcValue.Kind() == reflect.Slice && srcValue.Type().Elem().Kind() == reflect.Uint8:
		text = string(srcValue.Bytes())
	default:
		return "", false
	}
	if c.options.TrimSpace {
		text = strings.TrimSpace(text)
	}
	return text, true
}

func (c *Converter) convertToString(destValue, srcValue reflect.Value) error {
	var result string

	switch srcValue.Kind() {
	case reflect.Bool:
		result = strconv.FormatBool(srcValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = strconv.FormatInt(srcValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = strconv.FormatUint(srcValue.Uint(), 10)
	default:
		if text, ok := c.asText(srcValue); ok {
			result = text
			break
		}
		if stringer, ok := srcValue.Interface().(fmt.Stringer); ok {
			result = stringer.String()
			break
		}
		return fmt.Errorf("cannot convert %v to string", srcValue.Type())
	}

	destValue.Elem().SetString(result)
	return nil
}

func (c *Converter) convertToBool(destValue, srcValue reflect.Value) error {
	var result bool

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint() != 0
	default:
		text, ok := c.asText(srcValue)
		if !ok {
			return fmt.Errorf("cannot convert %v to bool", srcValue.Type())
		}
		var err error
		if result, err = strconv.ParseBool(text); err != nil {
			return err
		}
	}

	destValue.Elem().SetBool(result)
	return nil
}

func (c *Converter) convertToInt(destValue, srcValue reflect.Value) error {
	var result int64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := srcValue.Uint()
		if v > uint64(1<<63-1) {
			return fmt.Errorf("value %d overflows %v", v, destValue.Elem().Type())
		}
		result = int64(v)
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	default:
		text, ok := c.asText(srcValue)
		if !ok {
			return fmt.Errorf("cannot convert %v to int", srcValue.Type())
		}
		var err error
		if result, err = strconv.ParseInt(text, c.options.NumberBase, 64); err != nil {
			return err
		}
	}
	if destValue.Elem().OverflowInt(result) {
		return fmt.Errorf("value %d overflows %v", result, destValue.Elem().Type())
	}
	destValue.Elem().SetInt(result)
	return nil
}

func (c *Converter) convertToUint(destValue, srcValue reflect.Value) error {
	var result uint64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return fmt.Errorf("cannot convert negative value %d to unsigned int", v)
		}
		result = uint64(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint()
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	default:
		text, ok := c.asText(srcValue)
		if !ok {
			return fmt.Errorf("cannot convert %v to uint", srcValue.Type())
		}
		var err error
		if result, err = strconv.ParseUint(text, c.options.NumberBase, 64); err != nil {
			return err
		}
	}
	if destValue.Elem().OverflowUint(result) {
		return fmt.Errorf("value %d overflows %v", result, destValue.Elem().Type())
	}
	destValue.Elem().SetUint(result)
	return nil
}
