package wordcrypt

import (
	"errors"
	"fmt"
)

// InputError reports a rejected input value, such as an empty passphrase or
// an empty substitution key.
type InputError struct {
	Param   string // The parameter that was rejected
	Message string // Human-readable error message
}

func (e *InputError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// FormatError reports an encrypted file that does not match the expected
// on-disk format. It is returned only at file-decode entry, when the header
// marker line is missing or wrong.
type FormatError struct {
	Line    int    // 1-based line number of the offending line
	Message string // Human-readable error message
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid format: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("invalid format: %s", e.Message)
}

// IOError reports a read, write, open, or close failure in the file layer.
// The transform core itself performs no I/O and never returns this kind.
type IOError struct {
	Operation string // "open", "create", "read", "write", "close"
	Path      string // File path, if applicable
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("io error: %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("io error: %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new input error for the named parameter.
func NewInputError(param, message string) error {
	return &InputError{
		Param:   param,
		Message: message,
	}
}

// NewFormatError creates a new format error at the given line.
func NewFormatError(line int, message string) error {
	return &FormatError{
		Line:    line,
		Message: message,
	}
}

// NewIOError creates a new I/O error wrapping err.
func NewIOError(operation, path string, err error) error {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// IsInputError checks if an error is an input error.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsFormatError checks if an error is a format error.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsIOError checks if an error is an I/O error.
func IsIOError(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
