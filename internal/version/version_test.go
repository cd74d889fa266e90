package version

import (
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1       string
		v2       string
		expected int
	}{
		{"v1.0.542", "v1.0.533", 1},
		{"v1.0.533", "v1.0.542", -1},
		{"1.0.542", "1.0.542", 0},
		{"v1.0.542", "1.0.542", 0},
		{"v1.0.10", "v1.0.2", 1},
		{"v1.0.2", "v1.0.10", -1},
		{"v1.2", "v1.2.0", 0},
		{"dev", "v1.0.0", -1},
		{"v1.0.0", "dev", 1},
		{"v1.0.0-test.1", "v1.0.0", -1},
		{"v1.0.0", "v1.0.0-test.1", 1},
		{"v1.0.0-rc.1", "v1.0.0-rc.2", -1},
		{"1.0.0-beta.2", "1.0.0-beta.10", -1},
		{"1.0.0-beta.10", "1.0.0-beta.2", 1},
		{"v1.0.0-rc.9", "v1.0.0-rc.10", -1},
		{"v1.0.0-alpha", "v1.0.0-alpha.1", -1},
		{"v1.0.0-alpha.beta", "v1.0.0-beta", -1},
		{"v1.0.0+build.5", "v1.0.0", 0},
	}

	for _, tt := range tests {
		result := CompareVersions(tt.v1, tt.v2)
		if result != tt.expected {
			t.Errorf("CompareVersions(%s, %s) = %d; want %d", tt.v1, tt.v2, result, tt.expected)
		}
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		client   string
		server   string
		expected bool
	}{
		{"v1.0.542", "v1.0.533", false},
		{"v1.0.533", "v1.0.542", true},
		{"v1.0.533", "v1.0.533", false},
		{"dev", "v0.1.0", true},
		{"1.0.0-rc.9", "1.0.0-rc.10", true},
		{"1.0.0-rc.10", "1.0.0-rc.9", false},
	}

	for _, tt := range tests {
		result := IsUpdateAvailable(tt.client, tt.server)
		if result != tt.expected {
			t.Errorf("IsUpdateAvailable(%s, %s) = %v; want %v", tt.client, tt.server, result, tt.expected)
		}
	}
}

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		info     BuildInfo
		expected string
	}{
		{BuildInfo{Version: "dev", BuildTime: "unknown"}, "dev (development build)"},
		{BuildInfo{Version: "v1.0.0", BuildTime: "yesterday"}, "v1.0.0 (built yesterday)"},
		{
			BuildInfo{Version: "v1.0.0", BuildTime: "2026-01-02T03:04:05Z", GitCommit: "0123456789abcdef"},
			"v1.0.0 (built 2026-01-02 03:04:05 UTC, commit 01234567)",
		},
		{
			BuildInfo{Version: "v1.0.0", BuildTime: "2026-01-02T03:04:05Z", GitCommit: "abc"},
			"v1.0.0 (built 2026-01-02 03:04:05 UTC, commit abc)",
		},
	}

	for _, tt := range tests {
		if got := formatInfo(tt.info); got != tt.expected {
			t.Errorf("formatInfo(%+v) = %q; want %q", tt.info, got, tt.expected)
		}
	}
}
