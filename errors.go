package fromstr

import (
	"errors"
	"fmt"
)

// Kind represents parse failure category
type Kind int

const (
	//KindEmpty empty input string
	KindEmpty Kind = iota + 1
	//KindBadLen incorrect number of fields
	KindBadLen
	//KindNoName empty name field
	KindNoName
	//KindParseInt age is not an unsigned integer
	KindParseInt
)

var (
	ErrEmpty    = errors.New("empty input")
	ErrBadLen   = errors.New("incorrect number of fields")
	ErrNoName   = errors.New("empty name field")
	ErrParseInt = errors.New("invalid age")
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindBadLen:
		return "BadLen"
	case KindNoName:
		return "NoName"
	case KindParseInt:
		return "ParseInt"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindEmpty:
		return ErrEmpty
	case KindBadLen:
		return ErrBadLen
	case KindNoName:
		return ErrNoName
	case KindParseInt:
		return ErrParseInt
	}
	return nil
}

// Error represents person parse error
type Error struct {
	Kind   Kind
	Input  string
	Offset int   //byte offset where parsing failed
	Err    error //*strconv.NumError for KindParseInt
}

// Error returns error message
func (e *Error) Error() string {
	msg := fmt.Sprintf("failed to parse person %q at %d: ", e.Input, e.Offset)
	if e.Err != nil {
		return msg + e.Kind.sentinel().Error() + ": " + e.Err.Error()
	}
	return msg + e.Kind.sentinel().Error()
}

// Unwrap returns wrapped numeric error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches kind sentinel
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return e.Kind.sentinel() == target
}

func newError(kind Kind, input string, offset int, err error) *Error {
	return &Error{Kind: kind, Input: input, Offset: offset, Err: err}
}

// KindOf returns parse error kind or 0 if err is not parse error
func KindOf(err error) Kind {
	var parseErr *Error
	if errors.As(err, &parseErr) {
		return parseErr.Kind
	}
	return 0
}
