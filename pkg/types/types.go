package types

// HealthStatus represents disk health status values
type HealthStatus int

const (
	HealthStatusUnknown  HealthStatus = 0
	HealthStatusOK       HealthStatus = 1
	HealthStatusWarning  HealthStatus = 2
	HealthStatusCritical HealthStatus = 3
)

// CaptureKind identifies which smartctl invocation produced a capture
type CaptureKind string

const (
	CaptureReport CaptureKind = "report" // smartctl -a
	CaptureSCTERC CaptureKind = "scterc" // smartctl -l scterc
)

// Capture is the raw output of one smartctl invocation against one device
type Capture struct {
	Kind  CaptureKind
	Path  string   // capture name the device is derived from
	Lines []string // output split into lines
}

// ToolInfo represents information about the smartctl binary
type ToolInfo struct {
	SmartCtl        bool   `json:"smartctl"`
	SmartCtlPath    string `json:"smartctl_path,omitempty"`
	SmartCtlVersion string `json:"smartctl_version,omitempty"`
}
