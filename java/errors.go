package java

import "fmt"

// SyntaxError reports the first position at which the source could not be
// parsed.
type SyntaxError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	file := e.File
	if file == "" {
		file = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", file, e.Line, e.Column, e.Message)
}
