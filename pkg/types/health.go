package types

// HealthResponse represents the JSON health response
type HealthResponse struct {
	Status      string       `json:"status"`
	Service     string       `json:"service"`
	Version     string       `json:"version"`
	Timestamp   string       `json:"timestamp"`
	SystemInfo  SystemInfo   `json:"system_info"`
	DiskSummary DiskSummary  `json:"disk_summary"`
	Disks       []DiskHealth `json:"disks"`
}

// SystemInfo represents system information in JSON
type SystemInfo struct {
	Platform     string   `json:"platform"`
	OS           string   `json:"os"`
	Source       string   `json:"source"`
	SmartSupport bool     `json:"smart_support"`
	Tools        ToolInfo `json:"tools"`
	LastCollect  string   `json:"last_collect,omitempty"`
	ParseErrors  int      `json:"parse_errors"`
}

// DiskSummary provides a summary of disk health
type DiskSummary struct {
	TotalDisks      int `json:"total_disks"`
	HealthyDisks    int `json:"healthy_disks"`
	WarningDisks    int `json:"warning_disks"`
	CriticalDisks   int `json:"critical_disks"`
	UnknownDisks    int `json:"unknown_disks"`
	IncompleteDisks int `json:"incomplete_disks"`
}

// DiskHealth represents individual disk health in JSON
type DiskHealth struct {
	Device        string             `json:"device"`
	Serial        string             `json:"serial,omitempty"`
	Model         string             `json:"model,omitempty"`
	Firmware      string             `json:"firmware,omitempty"`
	Health        string             `json:"health"`
	Status        string             `json:"status"`
	HealthCode    int                `json:"health_code"`
	Complete      bool               `json:"complete"`
	Attributes    int                `json:"attributes"`
	FailedAttrs   []string           `json:"failed_attributes,omitempty"`
	ErrorRecovery map[string]float64 `json:"error_recovery_seconds,omitempty"`
}
