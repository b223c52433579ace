package provision

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/mackerelio/go-osstat/memory"

	"github.com/aztecnode/provisioner/pkg/errors"
)

// OSInfo contains detected operating system information
type OSInfo struct {
	ID      string // ubuntu, debian, etc.
	Version string // 22.04, 24.04, 12, etc.
	Name    string // Full name: "ubuntu 24.04"
}

// PrivilegeChecker validates root access and platform
type PrivilegeChecker struct{}

// CheckRoot verifies the process is running as root
func (pc *PrivilegeChecker) CheckRoot() error {
	if os.Geteuid() != 0 {
		return errors.NewPrivilegeError("this command must be run as root (use sudo)", errors.ErrNotRoot)
	}
	return nil
}

// CheckLinuxOS verifies the process is running on Linux
func (pc *PrivilegeChecker) CheckLinuxOS() error {
	if runtime.GOOS != "linux" {
		return errors.NewPrivilegeError(fmt.Sprintf("provisioning is only supported on Linux (detected: %s)", runtime.GOOS), nil)
	}
	return nil
}

// OSDetector detects the Linux distribution
type OSDetector struct{}

// Detect returns information about the detected OS
func (od *OSDetector) Detect() (*OSInfo, error) {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return nil, fmt.Errorf("cannot detect operating system: %w", err)
	}

	var id, version string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "ID=") {
			id = strings.Trim(strings.TrimPrefix(line, "ID="), "\"")
		}
		if strings.HasPrefix(line, "VERSION_ID=") {
			version = strings.Trim(strings.TrimPrefix(line, "VERSION_ID="), "\"")
		}
	}

	if id == "" {
		return nil, fmt.Errorf("could not detect OS ID from /etc/os-release")
	}

	name := id
	if version != "" {
		name = fmt.Sprintf("%s %s", id, version)
	}

	return &OSInfo{ID: id, Version: version, Name: name}, nil
}

// IsSupportedOS checks if the OS is supported for sequencer deployment
func (od *OSDetector) IsSupportedOS(info *OSInfo) bool {
	supported := map[string][]string{
		"ubuntu": {"22.04", "24.04", "25.04"},
		"debian": {"12"},
	}

	versions, ok := supported[info.ID]
	if !ok {
		return false
	}

	for _, v := range versions {
		if info.Version == v {
			return true
		}
	}

	return false
}

// ArchitectureDetector checks the CPU architecture against the platforms
// the sequencer image is published for.
type ArchitectureDetector struct{}

// Detect returns the runtime architecture
func (ad *ArchitectureDetector) Detect() string {
	return runtime.GOARCH
}

// IsSupported reports whether the node image supports this architecture
func (ad *ArchitectureDetector) IsSupported() bool {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return true
	}
	return false
}

// ResourceChecker validates system resources before a node install.
// Failures here warn rather than abort; small hosts can still sync slowly.
type ResourceChecker struct{}

// NewResourceChecker creates a new resource checker
func NewResourceChecker() *ResourceChecker {
	return &ResourceChecker{}
}

// CheckDiskSpace validates sufficient disk space (minimum 10GB free)
func (rc *ResourceChecker) CheckDiskSpace(path string) error {
	checkPath := path

	// If the path doesn't exist yet, check the nearest existing parent
	for checkPath != "/" {
		if _, err := os.Stat(checkPath); err == nil {
			break
		}
		checkPath = filepath.Dir(checkPath)
	}

	var stat syscall.Statfs_t
	if err := syscall.Statfs(checkPath, &stat); err != nil {
		return fmt.Errorf("failed to check disk space: %w", err)
	}

	availableBytes := stat.Bavail * uint64(stat.Bsize)
	minRequiredBytes := uint64(10 * 1024 * 1024 * 1024) // 10GB

	if availableBytes < minRequiredBytes {
		availableGB := float64(availableBytes) / (1024 * 1024 * 1024)
		return fmt.Errorf("insufficient disk space: %.1fGB available, minimum 10GB recommended", availableGB)
	}

	return nil
}

// CheckRAM validates sufficient RAM (minimum 2GB total)
func (rc *ResourceChecker) CheckRAM() error {
	stats, err := memory.Get()
	if err != nil {
		return fmt.Errorf("failed to read memory info: %w", err)
	}

	minRequiredBytes := uint64(2 * 1024 * 1024 * 1024) // 2GB
	if stats.Total < minRequiredBytes {
		totalGB := float64(stats.Total) / (1024 * 1024 * 1024)
		return fmt.Errorf("insufficient RAM: %.1fGB total, minimum 2GB recommended", totalGB)
	}

	return nil
}
