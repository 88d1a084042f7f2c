package command

import (
	"context"
	"testing"
	"time"
)

func TestValidateHookID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid id", "flake8", false},
		{"valid with hyphen", "trailing-whitespace", false},
		{"valid with dots", "check.yaml", false},
		{"valid with numbers", "black22", false},
		{"empty id", "", true},
		{"special characters", "black@latest", true},
		{"starts with hyphen", "-black", true},
		{"shell metacharacters", "black;rm", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHookID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHookID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRepoURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https url", "https://github.com/psf/black", false},
		{"git url", "git://github.com/psf/black.git", false},
		{"file url", "file:///srv/hooks/local", false},
		{"local path", "/srv/hooks/local", false},
		{"local sentinel", "local", false},
		{"meta sentinel", "meta", false},
		{"empty url", "", true},
		{"command injection", "https://example.com/repo;rm -rf /", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepoURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepoURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGitRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"tag", "v1.2.3", false},
		{"release tag", "19.10b0", false},
		{"branch path", "releases/stable-3.2", false},
		{"commit sha", "a32195e8e8b9dd9d67f7b6fb5b0c5f1e2d3c4b5a", false},
		{"empty ref", "", true},
		{"shell metacharacters", "v1.0;echo", true},
		{"spaces", "v1 0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGitRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGitRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSafeBuilderBuild(t *testing.T) {
	sb := NewSafeBuilder()

	cmd, err := sb.Build(context.Background(), "git", "status")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if cmd.timeout != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, cmd.timeout)
	}

	// Empty command name is rejected
	if _, err := sb.Build(context.Background(), ""); err == nil {
		t.Error("expected error for empty command name")
	}

	// Timeouts are capped at MaxTimeout
	cmd = cmd.WithTimeout(time.Hour)
	if cmd.timeout != MaxTimeout {
		t.Errorf("expected timeout capped at %v, got %v", MaxTimeout, cmd.timeout)
	}
}

func TestValidateUnknownType(t *testing.T) {
	sb := NewSafeBuilder()
	if err := sb.Validate("unknown", "anything"); err == nil {
		t.Error("expected error for unknown validator type")
	}
}
