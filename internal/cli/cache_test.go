package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheClear(t *testing.T) {
	h := newHarness(t)
	base := filepath.Join(t.TempDir(), "chamber")

	if _, err := h.run("render", testGroups, "-f", "svg,json,dot", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}

	out, err := h.run("cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cleared 3 cached entries") {
		t.Errorf("cache clear output = %q", out)
	}

	out, err = h.run("cache", "clear")
	if err != nil {
		t.Fatalf("second cache clear: %v", err)
	}
	if !strings.Contains(out, "Cleared 0 cached entries") {
		t.Errorf("second cache clear output = %q", out)
	}
}

func TestCachePath(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   func(h *harness) string
	}{
		{
			name: "default",
			want: func(h *harness) string { return filepath.Join(h.cacheDir, appName) },
		},
		{
			name:   "configured dir",
			config: "[cache]\ndir = \"/srv/hemicycle\"\n",
			want:   func(*harness) string { return "/srv/hemicycle" },
		},
		{
			name:   "redis",
			config: "[cache]\nbackend = \"redis\"\nredis_url = \"redis://cache:6379/1\"\n",
			want:   func(*harness) string { return "redis://cache:6379/1" },
		},
		{
			name:   "mongo",
			config: "[cache]\nbackend = \"mongo\"\nmongo_uri = \"mongodb://db\"\n",
			want:   func(*harness) string { return "mongodb://db (hemicycle)" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if tt.config != "" {
				h.writeConfig(tt.config)
			}
			out, err := h.run("cache", "path")
			if err != nil {
				t.Fatalf("cache path: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want(h) {
				t.Errorf("cache path = %q, want %q", got, tt.want(h))
			}
		})
	}
}
