package lintargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grovetools/hooks/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *Options
		wantErr bool
	}{
		{
			name: "canonical style checker args",
			args: []string{
				"--max-line-length=120",
				"--max-complexity=18",
				"--select=B,C,E,F,W,T4,B9",
				"--ignore=E203,C901,W503",
			},
			want: &Options{
				MaxLineLength: 120,
				MaxComplexity: 18,
				Select:        []string{"B", "C", "E", "F", "W", "T4", "B9"},
				Ignore:        []string{"E203", "C901", "W503"},
			},
		},
		{
			name: "no args",
			args: nil,
			want: &Options{},
		},
		{
			name: "unrecognized args pass through",
			args: []string{"--statistics", "--count", "--max-line-length=99"},
			want: &Options{
				MaxLineLength: 99,
				Extra:         []string{"--statistics", "--count"},
			},
		},
		{
			name:    "duplicate option",
			args:    []string{"--max-line-length=120", "--max-line-length=80"},
			wantErr: true,
		},
		{
			name: "repeated unrecognized option",
			args: []string{"--filter=a", "--filter=b"},
			want: &Options{
				Extra: []string{"--filter=a", "--filter=b"},
			},
		},
		{
			name:    "non-integer line length",
			args:    []string{"--max-line-length=wide"},
			wantErr: true,
		},
		{
			name:    "negative complexity",
			args:    []string{"--max-complexity=-3"},
			wantErr: true,
		},
		{
			name:    "empty select list",
			args:    []string{"--select="},
			wantErr: true,
		},
		{
			name:    "lowercase diagnostic code",
			args:    []string{"--ignore=e203"},
			wantErr: true,
		},
		{
			name:    "code with trailing garbage",
			args:    []string{"--select=E1x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				if errors.GetCode(err) != errors.ErrCodeConfigValidation {
					t.Errorf("expected CONFIG_VALIDATION code, got %s", errors.GetCode(err))
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%v) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestArgsRoundTrip(t *testing.T) {
	args := []string{
		"--max-line-length=120",
		"--max-complexity=18",
		"--select=B,C,E,F,W,T4,B9",
		"--ignore=E203,C901,W503",
	}

	opts, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if diff := cmp.Diff(args, opts.Args()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
