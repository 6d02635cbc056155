package tesa

import (
	"errors"
	"fmt"
)

// Sentinel errors. Lexicon, input and batch header errors match one of
// these through errors.Is.
var (
	ErrConfiguration = errors.New("tesa: configuration error")
	ErrFormat        = errors.New("tesa: format error")
	ErrInvalidInput  = errors.New("tesa: invalid input")
)

// ConfigurationError reports a lexicon source that is missing or cannot be
// read.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("tesa: lexicon source: %v", e.Err)
	}
	return fmt.Sprintf("tesa: lexicon source %q: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// FormatError reports a malformed row in an emoji lexicon.
type FormatError struct {
	Path  string
	Line  int // 1-based, header included; 0 when the error is not tied to a row
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("tesa: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("tesa: %s:%d: value %q: %v", e.Path, e.Line, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// InvalidInputError reports text that cannot be scored.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "tesa: invalid input: " + e.Reason
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }
