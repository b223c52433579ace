package provision

import (
	"regexp"
	"strconv"
	"strings"
)

var versionRegex = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)

// ExtractVersion pulls the first dotted version triple out of tool output,
// e.g. "Docker version 24.0.7, build afdd53b" -> "24.0.7".
func ExtractVersion(output string) string {
	return versionRegex.FindString(output)
}

// parseTriple splits a dotted version into numeric fields. Missing or
// malformed fields parse as zero.
func parseTriple(version string) [3]int {
	var triple [3]int
	parts := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(version), "v"), ".", 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			break
		}
		triple[i] = n
	}
	return triple
}

// CompareVersions compares two dotted version triples numerically.
// Returns -1, 0 or 1 as a is below, equal to or above b.
func CompareVersions(a, b string) int {
	ta, tb := parseTriple(a), parseTriple(b)
	for i := 0; i < 3; i++ {
		if ta[i] < tb[i] {
			return -1
		}
		if ta[i] > tb[i] {
			return 1
		}
	}
	return 0
}

// MeetsMinimum reports whether current satisfies the required minimum.
func MeetsMinimum(current, required string) bool {
	return CompareVersions(current, required) >= 0
}
