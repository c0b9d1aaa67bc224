package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "script.js", false},
		{"nested path", "src/util/helpers.js", false},
		{"empty", "", true},
		{"leading slash", "/script.js", true},
		{"trailing slash", "src/", true},
		{"backslash", "src\\util.js", true},
		{"parent escape", "../outside.js", true},
		{"double slash", "src//util.js", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLanguageTag(t *testing.T) {
	for _, tag := range []string{"javascript", "python", "lua", "html", "css", "java", "cpp", "markdown", "json"} {
		if err := ValidateLanguageTag(tag); err != nil {
			t.Errorf("ValidateLanguageTag(%q) unexpected error: %v", tag, err)
		}
	}
	for _, tag := range []string{"", "rust", "JavaScript"} {
		if err := ValidateLanguageTag(tag); err == nil {
			t.Errorf("ValidateLanguageTag(%q) expected error", tag)
		}
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(xml) expected error")
	}
}

func TestOutputResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]int{"count": 3}
	if err := OutputResults(&buf, "json", data); err != nil {
		t.Fatalf("OutputResults() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"count": 3`) {
		t.Errorf("OutputResults() json output missing field: %s", buf.String())
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdefgh", 5); got != "ab..." {
		t.Errorf("TruncateString() = %q, want %q", got, "ab...")
	}
	if got := TruncateString("abc", 5); got != "abc" {
		t.Errorf("TruncateString() = %q, want %q", got, "abc")
	}
}
