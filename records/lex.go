package records

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	lineTerminatorToken = iota
)

var (
	lineTerminatorMatcher = parsly.NewToken(lineTerminatorToken, "\\n", matcher.NewTerminator('\n', true))
)

// matchLine returns next line without terminator
func matchLine(cursor *parsly.Cursor) string {
	line := ""
	match := cursor.MatchAny(lineTerminatorMatcher)
	switch match.Code {
	case lineTerminatorToken:
		line = match.Text(cursor)
		line = line[:len(line)-1] //exclude \n
	default:
		if cursor.Pos < len(cursor.Input) {
			line = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
