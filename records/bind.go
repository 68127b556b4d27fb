package records

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"github.com/viant/fromstr"
	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

// TagName is struct tag selecting record field for a struct field
const TagName = "record"

const (
	nameField = "name"
	ageField  = "age"
)

type binding struct {
	name *xunsafe.Field
	age  *xunsafe.Field
}

var bindings sync.Map // map[reflect.Type]*binding

// Bind copies person name and age into struct pointed by dest
func Bind(person *fromstr.Person, dest interface{}) error {
	if person == nil {
		return fmt.Errorf("person was nil")
	}
	rType := reflect.TypeOf(dest)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", dest)
	}
	if reflect.ValueOf(dest).IsNil() {
		return fmt.Errorf("destination %T was nil", dest)
	}
	aBinding, err := lookupBinding(rType.Elem())
	if err != nil {
		return err
	}
	ptr := xunsafe.AsPointer(dest)
	if aBinding.name != nil {
		aBinding.name.SetString(ptr, person.Name)
	}
	if aBinding.age != nil {
		if err := setAge(aBinding.age, ptr, person.Age); err != nil {
			return err
		}
	}
	return nil
}

func lookupBinding(structType reflect.Type) (*binding, error) {
	if v, ok := bindings.Load(structType); ok {
		return v.(*binding), nil
	}
	ret := &binding{}
	xStruct := xunsafe.NewStruct(structType)
	for i := range xStruct.Fields {
		aField := &xStruct.Fields[i]
		key, ok := fieldKey(aField)
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case nameField:
			if aField.Type.Kind() != reflect.String {
				return nil, fmt.Errorf("field %v.%v: expected string for name, got %v", structType.Name(), aField.Name, aField.Type)
			}
			if ret.name == nil {
				ret.name = aField
			}
		case ageField:
			if !isAgeKind(aField.Type.Kind()) {
				return nil, fmt.Errorf("field %v.%v: expected integer or string for age, got %v", structType.Name(), aField.Name, aField.Type)
			}
			if ret.age == nil {
				ret.age = aField
			}
		}
	}
	if ret.name == nil && ret.age == nil {
		return nil, fmt.Errorf("struct %v has no name or age field", structType)
	}
	bindings.Store(structType, ret)
	return ret, nil
}

// fieldKey resolves record key: record tag, format tag name, then field name
func fieldKey(aField *xunsafe.Field) (string, bool) {
	if key := aField.Tag.Get(TagName); key != "" {
		return key, key != "-"
	}
	if aField.Tag.Get("format") == "-" {
		return "", false
	}
	if tag, _ := format.Parse(aField.Tag); tag != nil {
		if tag.Ignore {
			return "", false
		}
		if tag.Name != "" {
			return tag.Name, true
		}
	}
	return aField.Name, true
}

func isAgeKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func setAge(field *xunsafe.Field, ptr unsafe.Pointer, age uint) error {
	if field.Type.Kind() == reflect.String {
		field.SetString(ptr, strconv.FormatUint(uint64(age), 10))
		return nil
	}
	value := reflect.New(field.Type).Elem()
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if uint64(age) > 1<<63-1 || value.OverflowInt(int64(age)) {
			return fmt.Errorf("field %v: age %d overflows %v", field.Name, age, field.Type)
		}
		value.SetInt(int64(age))
	default:
		if value.OverflowUint(uint64(age)) {
			return fmt.Errorf("field %v: age %d overflows %v", field.Name, age, field.Type)
		}
		value.SetUint(uint64(age))
	}
	field.SetValue(ptr, value.Interface())
	return nil
}
