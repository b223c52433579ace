package provision

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.0.1", "1.0.0", 1},
		{"2.0.0", "1.9.9", 1},
		{"1.9.9", "2.0.0", -1},
		{"10.0.0", "9.9.9", 1}, // numeric, not string, ordering
		{"20.10.0", "20.9.5", 1},
		{"v18.19.0", "18.0.0", 1},
		{"1.2", "1.2.0", 0},
	}

	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMeetsMinimum(t *testing.T) {
	required := "20.10.0"

	tests := []struct {
		current string
		want    bool
	}{
		{"19.3.9", false},
		{"20.9.9", false},
		{"20.10.0", true},
		{"20.10.1", true},
		{"24.0.7", true},
	}

	for _, tt := range tests {
		if got := MeetsMinimum(tt.current, required); got != tt.want {
			t.Errorf("MeetsMinimum(%q, %q) = %v, want %v", tt.current, required, got, tt.want)
		}
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"Docker version 24.0.7, build afdd53b", "24.0.7"},
		{"Docker Compose version v2.24.5", "2.24.5"},
		{"v18.19.0", "18.19.0"},
		{"no version here", ""},
	}

	for _, tt := range tests {
		if got := ExtractVersion(tt.output); got != tt.want {
			t.Errorf("ExtractVersion(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}
