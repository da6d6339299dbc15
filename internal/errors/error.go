package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryLayout  Category = "layout"
	CategoryHost    Category = "host"
	CategoryConfig  Category = "config"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// Location represents a source location.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// ForgeError is a structured error with location and a fix suggestion.
type ForgeError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where the error was found.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ForgeError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Location != nil {
		msg = e.Location.String() + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ForgeError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a source location and reads the lines around it.
func (e *ForgeError) WithLocation(file string, line, column int) *ForgeError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, contextLines)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ForgeError) WithSuggestion(s string) *ForgeError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *ForgeError) WithDetail(d string) *ForgeError {
	e.Detail = d
	return e
}

// WithDetailf replaces the detailed explanation with a formatted one.
func (e *ForgeError) WithDetailf(format string, args ...any) *ForgeError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *ForgeError) Wrap(err error) *ForgeError {
	e.Wrapped = err
	return e
}

// contextLines is the number of source lines shown around a location.
const contextLines = 5

// contextStart is the first line number readContextLines returns for
// targetLine.
func contextStart(targetLine, contextSize int) int {
	if start := targetLine - contextSize/2; start > 1 {
		return start
	}
	return 1
}

// readContextLines reads lines around targetLine from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := contextStart(targetLine, contextSize)
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a ForgeError from a registered error code.
func New(code string) *ForgeError {
	template, ok := registry[code]
	if !ok {
		return &ForgeError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ForgeError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a ForgeError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *ForgeError {
	return &ForgeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a ForgeError. Errors that already
// contain a ForgeError are returned as that error.
func FromError(err error, code string) *ForgeError {
	if err == nil {
		return nil
	}
	var fe *ForgeError
	if stderrors.As(err, &fe) {
		return fe
	}
	return New(code).Wrap(err)
}
