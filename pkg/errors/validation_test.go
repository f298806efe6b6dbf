package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Proceso", false},
		{"valid with spaces", "Fuente A", false},
		{"valid unicode", "Energía Solar", false},
		{"long", strings.Repeat("a", 300), false},
		{"comma", "Agua, fría", false},
		{"tab", "foo\tbar", false},

		{"empty", "", true},
		{"blank", " \t ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "150", 150, false},
		{"float", "12.5", 12.5, false},
		{"padded", "  7 ", 7, false},
		{"zero", "0", 0, false},

		{"empty", "", 0, true},
		{"word", "abc", 0, true},
		{"negative", "-3", 0, true},
		{"nan", "NaN", 0, true},
		{"inf", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidValue) {
					t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidValue)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.5} {
		if err := ValidateValue(v); err == nil {
			t.Errorf("ValidateValue(%v) = nil, want error", v)
		}
	}
	if err := ValidateValue(42); err != nil {
		t.Errorf("ValidateValue(42) = %v", err)
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"svg", "png", "json"}

	if err := ValidateFormat("svg", allowed); err != nil {
		t.Errorf("ValidateFormat(svg) = %v", err)
	}
	err := ValidateFormat("pdf", allowed)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(pdf) = %v, want INVALID_FORMAT", err)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "data/flows.txt", false},
		{"absolute", "/tmp/flows.json", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "file\x00.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	if err := ValidateRange("scale", 1, 0.1, 3); err != nil {
		t.Errorf("in range: %v", err)
	}
	if err := ValidateRange("scale", 5, 0.1, 3); !Is(err, ErrCodeInvalidOption) {
		t.Errorf("out of range: %v", err)
	}
	if err := ValidateRange("scale", math.NaN(), 0.1, 3); err == nil {
		t.Error("NaN should be rejected")
	}
}
