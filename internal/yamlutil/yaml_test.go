package yamlutil_test

// Notes:
// - Encode error branch: not tested because the encoder only fails on
//   unencodable types (channels, functions), which no caller passes.
// - Excerpt content belongs to go-yaml; we only check that one is produced.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-pitchdeck/internal/yamlutil"
)

type financeDoc struct {
	Base  float64  `yaml:"base"`
	Slope float64  `yaml:"slope"`
	Label string   `yaml:"label"`
	Tags  []string `yaml:"tags,omitempty"`
}

// ---------------------------------------------------------------------------
// TestDecode - Strict decoding and input limits
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	var doc financeDoc
	if err := yamlutil.Decode([]byte("base: 50000\nslope: 12000\nlabel: seed"), &doc); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if doc.Base != 50000 || doc.Slope != 12000 || doc.Label != "seed" {
		t.Errorf("Decode() = %+v", doc)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{"nil data", nil, &financeDoc{}, yamlutil.ErrEmptyInput},
		{"empty data", []byte{}, &financeDoc{}, yamlutil.ErrEmptyInput},
		{"nil target", []byte("base: 1"), nil, yamlutil.ErrNilTarget},
		{"too large", []byte(strings.Repeat("a", yamlutil.MaxInputSize+1)), &financeDoc{}, yamlutil.ErrInputTooLarge},
		{"unknown field", []byte("base: 2\nrunway: 18"), &financeDoc{}, yamlutil.ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := yamlutil.Decode(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_Position(t *testing.T) {
	t.Parallel()

	var doc financeDoc
	err := yamlutil.Decode([]byte("base: 2\nlabel: x\nrunway: 18\n"), &doc)

	var de *yamlutil.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Decode() error = %T %v, want *DecodeError", err, err)
	}
	if de.Line != 3 {
		t.Errorf("Line = %d, want 3", de.Line)
	}
	if !strings.Contains(de.Error(), "line 3") {
		t.Errorf("Error() = %q, want the line number", de.Error())
	}
	if de.Excerpt == "" {
		t.Error("Excerpt is empty")
	}
}

func TestDecode_Syntax(t *testing.T) {
	t.Parallel()

	var doc financeDoc
	err := yamlutil.Decode([]byte("base: [unclosed"), &doc)
	var de *yamlutil.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Decode() error = %v, want *DecodeError", err)
	}
	if errors.Is(err, yamlutil.ErrUnknownField) {
		t.Error("syntax error reported as unknown field")
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Layout and decode compatibility
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	in := financeDoc{Base: 50000, Slope: 12000, Label: "seed", Tags: []string{"a", "b"}}
	data, err := yamlutil.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(data), "label: seed") {
		t.Errorf("Encode() = %q, want label field", data)
	}
	if !strings.Contains(string(data), "\n  - a") {
		t.Errorf("Encode() = %q, want indented sequence", data)
	}

	var out financeDoc
	if err := yamlutil.Decode(data, &out); err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}
	if out.Base != in.Base || out.Label != in.Label || len(out.Tags) != 2 {
		t.Errorf("got %+v, want %+v", out, in)
	}
}
