// Package conv provides a small reflection-based converter.
// It converts strings into types that parse themselves from text (fromstr.Person included),
// handles unsigned/signed/bool/string primitives and custom conversion functions
// registered per source/destination type.
package conv
