package sdl

import "fmt"

// SyntaxError reports malformed SDL text: a bad node name, an unparsable
// number, unbalanced braces or a wrong top-level node count.
type SyntaxError struct {
	Line int // 1-based; 0 when the error concerns the whole document
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("syntax error: %s", e.Msg)
	}
	return fmt.Sprintf("syntax error on line %d: %s", e.Line, e.Msg)
}

// SchemaError reports a well-formed tree with the wrong shape: a missing
// path segment or the wrong number of children or values.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return "schema error: " + e.Msg
}

// RangeError reports a value outside the valid range of its target type.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string {
	return "range error: " + e.Msg
}

func syntaxErrorf(line int, format string, args ...interface{}) error {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// SchemaErrorf creates a SchemaError with a formatted message
func SchemaErrorf(format string, args ...interface{}) error {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

// RangeErrorf creates a RangeError with a formatted message
func RangeErrorf(format string, args ...interface{}) error {
	return &RangeError{Msg: fmt.Sprintf(format, args...)}
}
