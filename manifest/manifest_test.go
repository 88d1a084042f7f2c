package manifest

import (
	"testing"

	"github.com/grovetools/hooks/errors"
)

const sampleManifest = `
-   id: black
    name: black
    description: The uncompromising Python code formatter
    entry: black
    language: python
    types: [python]
-   id: black-check
    name: black (check only)
    entry: black --check
    language: python
    types: [python]
`

func TestLoadFromBytes(t *testing.T) {
	m, err := LoadFromBytes([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("LoadFromBytes returned error: %v", err)
	}

	if len(m.Hooks) != 2 {
		t.Fatalf("expected 2 hooks, got %d", len(m.Hooks))
	}

	hook, ok := m.Lookup("black")
	if !ok {
		t.Fatal("expected to find hook 'black'")
	}
	if hook.Entry != "black" {
		t.Errorf("expected entry 'black', got %q", hook.Entry)
	}
	if !hook.ShouldPassFilenames() {
		t.Error("pass_filenames should default to true")
	}

	if _, ok := m.Lookup("flake8"); ok {
		t.Error("Lookup should miss for an undeclared hook")
	}
}

func TestLoadFromBytesInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a list", `hooks: [1, 2]`},
		{"hook without id", "-   entry: black\n"},
		{"hook without entry", "-   id: black\n"},
		{"duplicate id", "-   id: black\n    entry: black\n-   id: black\n    entry: black\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) != errors.ErrCodeManifestInvalid {
				t.Errorf("expected MANIFEST_INVALID, got %s", errors.GetCode(err))
			}
		})
	}
}
