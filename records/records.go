package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/viant/fromstr"
	"github.com/viant/parsly"
)

type (
	//Record represents a parsed input line
	Record struct {
		Line   int
		Text   string
		Person *fromstr.Person
		Err    error
	}

	//LineError represents record error with its 1-based line number
	LineError struct {
		Line int
		Err  error
	}
)

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse parses newline separated name,age records
func Parse(data []byte, opts ...Option) []*Record {
	options := newOptions(opts)
	var result []*Record
	cursor := parsly.NewCursor("", data, 0)
	for lineNo := 1; cursor.Pos < len(cursor.Input); lineNo++ {
		line := matchLine(cursor)
		if options.skipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		if options.commentPrefix != "" && strings.HasPrefix(line, options.commentPrefix) {
			continue
		}
		record := &Record{Line: lineNo, Text: line}
		person, err := fromstr.ParsePerson(line)
		if err != nil {
			record.Err = &LineError{Line: lineNo, Err: err}
		} else {
			record.Person = &person
		}
		result = append(result, record)
		if record.Err != nil && options.failFast {
			break
		}
	}
	return result
}

// Persons returns parsed persons and joined line errors
func Persons(records []*Record) ([]*fromstr.Person, error) {
	var persons []*fromstr.Person
	var errs []error
	for _, record := range records {
		if record.Err != nil {
			errs = append(errs, record.Err)
			continue
		}
		persons = append(persons, record.Person)
	}
	return persons, errors.Join(errs...)
}
