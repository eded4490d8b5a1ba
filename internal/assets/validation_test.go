package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{
			name:    "simple png",
			input:   "hero.png",
			wantErr: nil,
		},
		{
			name:    "jpeg upper case extension",
			input:   "Mockup.JPEG",
			wantErr: nil,
		},
		{
			name:    "subdirectory",
			input:   "photos/hero.jpg",
			wantErr: nil,
		},
		{
			name:    "dots inside name",
			input:   "hero.v2.png",
			wantErr: nil,
		},

		// Invalid names
		{
			name:    "empty",
			input:   "",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "blank",
			input:   "   ",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "parent traversal",
			input:   "../secret.png",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "windows traversal",
			input:   "..\\secret.png",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "nested traversal",
			input:   "photos/../../secret.png",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "absolute",
			input:   "/etc/hero.png",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "null byte",
			input:   "hero\x00.png",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "unsupported extension",
			input:   "hero.svg",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "no extension",
			input:   "hero",
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAssetName_ErrorMessages(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("hero.gif")
	if err == nil {
		t.Fatal("expected error for gif")
	}
	if !strings.Contains(err.Error(), "hero.gif") || !strings.Contains(err.Error(), ".png") {
		t.Errorf("error %q should name the file and the accepted extensions", err)
	}
}
