package version

import (
	"strings"
	"testing"
)

func TestUsageVersion(t *testing.T) {
	out := UsageVersion()
	if !strings.Contains(out, "version") {
		t.Errorf("expected a version line, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("expected a trailing newline, got %q", out)
	}
}

func TestCopyright(t *testing.T) {
	if !strings.HasPrefix(Copyright, "ser2ser") {
		t.Errorf("expected the program name first, got %q", Copyright)
	}
	if !strings.Contains(Copyright, "License") {
		t.Errorf("expected a license line, got %q", Copyright)
	}
}
