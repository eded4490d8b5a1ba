// Package yamlutil reads and writes pitchdeck configuration files with
// goccy/go-yaml. Decoding is always strict: a misspelled key is an error, not
// a silently ignored setting.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps a configuration file at 1 MiB.
const MaxInputSize = 1 << 20

var (
	ErrEmptyInput    = errors.New("yamlutil: empty input")
	ErrNilTarget     = errors.New("yamlutil: nil decode target")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
	ErrUnknownField  = errors.New("yamlutil: unknown field")
)

// DecodeError locates a decode failure in the source document.
type DecodeError struct {
	Line    int    // 1-based, 0 when unknown
	Column  int    // 1-based, 0 when unknown
	Message string // parser message without position
	Excerpt string // source lines around the failure
	err     error
}

func (e *DecodeError) Error() string {
	if e.Line == 0 {
		return "yamlutil: " + e.Message
	}
	return fmt.Sprintf("yamlutil: line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *DecodeError) Unwrap() error { return e.err }

// Decode parses data into v, rejecting keys that v does not declare.
func Decode(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilTarget
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.DisallowUnknownField()); err != nil {
		return newDecodeError(err)
	}
	return nil
}

func newDecodeError(err error) *DecodeError {
	de := &DecodeError{Message: err.Error(), err: err}

	var yerr yaml.Error
	if !errors.As(err, &yerr) {
		return de
	}
	de.Message = yerr.GetMessage()
	de.Excerpt = yaml.FormatError(err, false, true)
	if tk := yerr.GetToken(); tk != nil && tk.Position != nil {
		de.Line, de.Column = tk.Position.Line, tk.Position.Column
	}
	var unknown *yaml.UnknownFieldError
	if errors.As(err, &unknown) {
		de.err = fmt.Errorf("%w: %w", ErrUnknownField, err)
	}
	return de
}

// Encode renders v as block YAML with two-space indentation and indented
// sequences, the layout `pitchdeck init` writes.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v,
		yaml.Indent(2),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
