package schema

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator returned error: %v", err)
	}
	if v == nil {
		t.Fatal("expected a validator")
	}
}

func TestValidate(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator returned error: %v", err)
	}

	tests := []struct {
		name    string
		data    map[string]interface{}
		wantErr string
	}{
		{
			name: "canonical two-entry config",
			data: map[string]interface{}{
				"repos": []interface{}{
					map[string]interface{}{
						"repo": "https://github.com/psf/black",
						"rev":  "19.10b0",
						"hooks": []interface{}{
							map[string]interface{}{"id": "black", "language_version": "python3"},
						},
					},
					map[string]interface{}{
						"repo": "https://gitlab.com/pycqa/flake8",
						"rev":  "3.7.9",
						"hooks": []interface{}{
							map[string]interface{}{
								"id":               "flake8",
								"language_version": "python3",
								"args": []interface{}{
									"--max-line-length=120",
									"--max-complexity=18",
									"--select=B,C,E,F,W,T4,B9",
									"--ignore=E203,C901,W503",
								},
							},
						},
					},
				},
			},
		},
		{
			name:    "missing repos key",
			data:    map[string]interface{}{"files": `\.py$`},
			wantErr: "repos",
		},
		{
			name: "empty hooks list",
			data: map[string]interface{}{
				"repos": []interface{}{
					map[string]interface{}{
						"repo":  "https://github.com/psf/black",
						"rev":   "19.10b0",
						"hooks": []interface{}{},
					},
				},
			},
			wantErr: "hooks",
		},
		{
			name: "hook without id",
			data: map[string]interface{}{
				"repos": []interface{}{
					map[string]interface{}{
						"repo": "https://github.com/psf/black",
						"rev":  "19.10b0",
						"hooks": []interface{}{
							map[string]interface{}{"language_version": "python3"},
						},
					},
				},
			},
			wantErr: "id",
		},
		{
			name: "unknown hook field rejected",
			data: map[string]interface{}{
				"repos": []interface{}{
					map[string]interface{}{
						"repo": "https://github.com/psf/black",
						"rev":  "19.10b0",
						"hooks": []interface{}{
							map[string]interface{}{"id": "black", "timeout": 30},
						},
					},
				},
			},
			wantErr: "timeout",
		},
		{
			name: "extension sections allowed at top level",
			data: map[string]interface{}{
				"repos": []interface{}{
					map[string]interface{}{
						"repo": "local",
						"hooks": []interface{}{
							map[string]interface{}{"id": "fmt", "entry": "gofmt -l"},
						},
					},
				},
				"logging": map[string]interface{}{"level": "debug"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.data)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got: %v", tt.wantErr, err)
			}
		})
	}
}
