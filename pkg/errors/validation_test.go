package errors

import (
	"strings"
	"testing"
)

func TestValidateAttributeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "weight", false},
		{"valid with space", "release year", false},
		{"valid with dash", "vertex-color", false},
		{"valid with underscore", "repo_url", false},
		{"valid unicode", "größe", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttributeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAttributeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVertexName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "alice", false},
		{"empty allowed", "", false},
		{"valid with space", "New York", false},
		{"valid with tab", "a\tb", false},

		{"too long", strings.Repeat("x", 300), true},
		{"newline", "a\nb", true},
		{"carriage return", "a\rb", true},
		{"null byte", "a\x00b", true},
		{"control char", "a\x02b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
