package system

import (
	"os/exec"
	"runtime"

	"github.com/rs/zerolog/log"

	"smartctl-exporter/internal/utils"
	"smartctl-exporter/pkg/types"
)

// SystemInfo holds detected system information
type SystemInfo struct {
	OS              string
	HasSmartctl     bool
	SmartctlPath    string
	SmartctlVersion string
	Platform        Platform
}

// Platform represents the detected platform type
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformMacOS   Platform = "macos"
	PlatformUnknown Platform = "unknown"
)

// Detector handles system detection
type Detector struct {
	info     *SystemInfo
	lookPath func(string) (string, error)
}

// New creates a new system detector
func New() *Detector {
	return &Detector{lookPath: exec.LookPath}
}

// Detect performs one-time system detection
func (d *Detector) Detect() *SystemInfo {
	if d.info != nil {
		return d.info // Return cached info if already detected
	}

	log.Info().Msg("Performing one-time system detection")

	info := &SystemInfo{
		OS: runtime.GOOS,
	}

	switch info.OS {
	case "linux":
		info.Platform = PlatformLinux
	case "darwin":
		info.Platform = PlatformMacOS
	default:
		info.Platform = PlatformUnknown
	}

	if path, err := d.lookPath("smartctl"); err == nil {
		info.HasSmartctl = true
		info.SmartctlPath = path
		if version, err := utils.GetToolVersion(path, "--version"); err == nil {
			info.SmartctlVersion = version
		}
		log.Info().Str("path", path).Str("version", info.SmartctlVersion).Msg("smartctl found")
	} else {
		log.Warn().Msg("smartctl not found, live collection disabled")
	}

	log.Info().
		Str("platform", string(info.Platform)).
		Str("os", info.OS).
		Bool("smart_support", info.HasSmartctl).
		Msg("System detection summary")

	d.info = info
	return info
}

// GetInfo returns the cached system info (must call Detect first)
func (d *Detector) GetInfo() *SystemInfo {
	if d.info == nil {
		log.Warn().Msg("GetInfo called before Detect()")
		return d.Detect()
	}
	return d.info
}

// IsLinux returns true if running on Linux
func (info *SystemInfo) IsLinux() bool {
	return info.Platform == PlatformLinux
}

// CanMonitorSMART returns true if SMART monitoring is available
func (info *SystemInfo) CanMonitorSMART() bool {
	return info.HasSmartctl
}

// ToolInfo returns the detected smartctl details
func (info *SystemInfo) ToolInfo() types.ToolInfo {
	return types.ToolInfo{
		SmartCtl:        info.HasSmartctl,
		SmartCtlPath:    info.SmartctlPath,
		SmartCtlVersion: info.SmartctlVersion,
	}
}
