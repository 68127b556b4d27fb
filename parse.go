package fromstr

import (
	"encoding"
	"errors"
	"strconv"
)

type state int

const (
	stateInit state = iota
	stateName
	statePendingAge
	stateNameAndAge
)

// tokenizer holds name,age state machine progress
type tokenizer struct {
	input     string
	state     state
	nameEnd   int
	ageOffset int
}

// next consumes a rune starting at offset
func (t *tokenizer) next(offset int, r rune) *Error {
	switch t.state {
	case stateInit:
		if !isLetter(r) {
			return newError(KindNoName, t.input, offset, nil)
		}
		t.state = stateName
	case stateName:
		if isLetter(r) {
			break
		}
		t.nameEnd = offset
		t.state = statePendingAge
	case statePendingAge:
		t.ageOffset = offset
		t.state = stateNameAndAge
	case stateNameAndAge:
		if r == ',' {
			return newError(KindBadLen, t.input, offset, nil)
		}
	}
	return nil
}

func (t *tokenizer) finish() (Person, error) {
	switch t.state {
	case stateInit:
		return Person{}, newError(KindEmpty, t.input, 0, nil)
	case stateName:
		return Person{}, newError(KindBadLen, t.input, len(t.input), nil)
	case statePendingAge:
		t.ageOffset = len(t.input)
	}
	age, err := parseAge(t.input[t.ageOffset:])
	if err != nil {
		return Person{}, newError(KindParseInt, t.input, t.ageOffset, err)
	}
	return Person{Name: t.input[:t.nameEnd], Age: age}, nil
}

// ParsePerson parses "name,age" into a Person
func ParsePerson(s string) (Person, error) {
	t := &tokenizer{input: s}
	for offset, r := range s {
		if err := t.next(offset, r); err != nil {
			return Person{}, err
		}
	}
	return t.finish()
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// parseAge parses decimal unsigned age, a single leading '+' is allowed
func parseAge(text string) (uint, error) {
	digits := text
	if len(digits) > 1 && digits[0] == '+' {
		digits = digits[1:]
	}
	value, err := strconv.ParseUint(digits, 10, strconv.IntSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			numErr.Num = text
		}
		return 0, err
	}
	return uint(value), nil
}

// TextUnmarshaler constrains P to a pointer of T able to parse itself from text
type TextUnmarshaler[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Parse parses s into a new T, zero value is returned with an error
func Parse[T any, P TextUnmarshaler[T]](s string) (T, error) {
	var ret T
	if err := P(&ret).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, err
	}
	return ret, nil
}
