// Package fromstr parses "name,age" records into a Person.
//
// Parsing never panics and never falls back to default values: malformed
// input yields an *Error whose Kind tells what went wrong. Person implements
// encoding.TextUnmarshaler, so it plugs into anything that decodes text,
// and Parse offers a generic entry point for such types.
package fromstr
