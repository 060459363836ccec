package health

import (
	"time"

	"smartctl-exporter/internal/collector"
	"smartctl-exporter/internal/smartctl"
	"smartctl-exporter/internal/system"
	"smartctl-exporter/internal/utils"
	"smartctl-exporter/pkg/types"
)

const (
	serviceVersion = "1.0.0"
	serviceName    = "smartctl-exporter"
)

// SnapshotProvider returns the latest collection result
type SnapshotProvider interface {
	Current() collector.Snapshot
}

// Service provides health data collection functionality
type Service struct {
	provider   SnapshotProvider
	sysInfo    *system.SystemInfo
	sourceName string
	now        func() time.Time
}

// New creates a new health service
func New(provider SnapshotProvider, sysInfo *system.SystemInfo, sourceName string) *Service {
	return &Service{
		provider:   provider,
		sysInfo:    sysInfo,
		sourceName: sourceName,
		now:        time.Now,
	}
}

// GetHealthData collects current health information for JSON response
func (s *Service) GetHealthData() *types.HealthResponse {
	snapshot := s.provider.Current()

	disks := make([]types.DiskHealth, 0, len(snapshot.Devices))
	var summary types.DiskSummary

	for _, device := range snapshot.Devices {
		disk := diskHealth(device)
		disks = append(disks, disk)

		summary.TotalDisks++
		switch types.HealthStatus(disk.HealthCode) {
		case types.HealthStatusOK:
			summary.HealthyDisks++
		case types.HealthStatusWarning:
			summary.WarningDisks++
		case types.HealthStatusCritical:
			summary.CriticalDisks++
		default:
			summary.UnknownDisks++
		}
		if !disk.Complete {
			summary.IncompleteDisks++
		}
	}

	systemInfo := types.SystemInfo{
		Source:      s.sourceName,
		ParseErrors: snapshot.ParseErrors,
	}
	if s.sysInfo != nil {
		systemInfo.Platform = string(s.sysInfo.Platform)
		systemInfo.OS = s.sysInfo.OS
		systemInfo.SmartSupport = s.sysInfo.CanMonitorSMART()
		systemInfo.Tools = s.sysInfo.ToolInfo()
	}
	if !snapshot.CollectedAt.IsZero() {
		systemInfo.LastCollect = snapshot.CollectedAt.Format(time.RFC3339)
	}

	status := "ok"
	if summary.CriticalDisks > 0 {
		status = "degraded"
	}

	return &types.HealthResponse{
		Status:      status,
		Service:     serviceName,
		Version:     serviceVersion,
		Timestamp:   s.now().Format(time.RFC3339),
		SystemInfo:  systemInfo,
		DiskSummary: summary,
		Disks:       disks,
	}
}

// diskHealth converts one device's parsed output
func diskHealth(device collector.DeviceState) types.DiskHealth {
	disk := types.DiskHealth{
		Device: device.Device,
		Health: smartctl.HealthNotParsed,
	}

	if report := device.Report; report != nil {
		disk.Health = report.Health()
		disk.Complete = report.Complete()
		disk.Model, _ = report.Information("Device Model")
		disk.Serial, _ = report.Information("Serial Number")
		disk.Firmware, _ = report.Information("Firmware Version")

		attrs := report.Attributes()
		disk.Attributes = len(attrs)
		for _, attr := range attrs {
			if attr.WhenFailed != "-" {
				disk.FailedAttrs = append(disk.FailedAttrs, attr.Name)
			}
		}
	}
	disk.HealthCode = utils.GetHealthStatusValue(disk.Health)
	disk.Status = utils.HealthStatusName(disk.HealthCode)

	if erc := device.ERC; erc != nil {
		for _, direction := range erc.Keys() {
			if seconds, ok := erc.Seconds(direction); ok {
				if disk.ErrorRecovery == nil {
					disk.ErrorRecovery = make(map[string]float64)
				}
				disk.ErrorRecovery[direction] = seconds
			}
		}
	}
	return disk
}
