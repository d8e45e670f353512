package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: expected '='"),
			expected: "Failed to load configuration: toml: expected '='",
		},
		{
			name:     "positions operation",
			op:       OpPositionsParse,
			err:      errors.New(`unknown position "huge"`),
			expected: `Failed to parse sheet positions: unknown position "huge"`,
		},
		{
			name:     "content operation",
			op:       OpContentRender,
			err:      errors.New("bad style"),
			expected: "Failed to render content: bad style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpContentLoad,
			context:  "notes.md",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpContentLoad,
			context:  "notes.md",
			err:      errors.New("permission denied"),
			expected: "Failed to load content 'notes.md': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpContentLoad,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to load content: permission denied",
		},
		{
			name:     "config write with path context",
			op:       OpConfigWrite,
			context:  "/home/user/.config/drawer/config.toml",
			err:      errors.New("file exists"),
			expected: "Failed to write configuration '/home/user/.config/drawer/config.toml': file exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpConfigLoad, OpConfigWatch, OpConfigWrite,
		OpPositionsParse,
		OpContentLoad, OpContentRender,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}
			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
