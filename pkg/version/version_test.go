package version

import (
	"fmt"
	"strings"
	"testing"
)

func TestUserAgent_Format(t *testing.T) {
	ua := UserAgent()

	if !strings.HasPrefix(ua, ProductName+" v") {
		t.Errorf("UserAgent() = %q, want prefix %q", ua, ProductName+" v")
	}

	expected := fmt.Sprintf("%s v%d.%d.%d.%d", ProductName, Major, Minor, Build, Revision)
	if ua != expected {
		t.Errorf("UserAgent() = %q, want %q", ua, expected)
	}

	// Four numeric components separated by dots.
	parts := strings.Split(strings.TrimPrefix(ua, ProductName+" v"), ".")
	if len(parts) != 4 {
		t.Errorf("UserAgent() version has %d components, want 4: %q", len(parts), ua)
	}
}
