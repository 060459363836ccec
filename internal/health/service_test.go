package health

import (
	"testing"
	"time"

	"smartctl-exporter/internal/collector"
	"smartctl-exporter/internal/smartctl"
	"smartctl-exporter/internal/system"
)

type staticProvider struct {
	snapshot collector.Snapshot
}

func (p staticProvider) Current() collector.Snapshot {
	return p.snapshot
}

func report(device string, lines ...string) *smartctl.Report {
	return smartctl.ParseReportLines(device, lines)
}

func TestGetHealthData(t *testing.T) {
	collected := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	snapshot := collector.Snapshot{
		CollectedAt: collected,
		ParseErrors: 2,
		Devices: []collector.DeviceState{
			{
				Device: "/dev/sda",
				Report: report("/dev/sda",
					"Device Model:     ST500LM021-1KJ152",
					"Serial Number:    W620AT02",
					"=== START OF READ SMART DATA SECTION ===",
					"SMART overall-health self-assessment test result: PASSED",
					"Vendor Specific SMART Attributes with Thresholds:",
					"  5 Reallocated_Sector_Ct   0x0033   001   001   036    Pre-fail  Always   FAILING_NOW 2048",
					"  9 Power_On_Hours          0x0032   096   096   000    Old_age   Always       -       3873",
					"SMART Error Log Version: 1",
				),
				ERC: smartctl.ParseSCTERCLines("/dev/sda", []string{" Read: 70 (7.0 seconds)", " Write: Disabled"}),
			},
			{
				Device: "/dev/sdb",
				Report: report("/dev/sdb",
					"=== START OF READ SMART DATA SECTION ===",
					"SMART overall-health self-assessment test result: FAILED!",
				),
			},
			{
				Device: "/dev/sdc",
				ERC:    smartctl.ParseSCTERCLines("/dev/sdc", nil),
			},
		},
	}

	sysInfo := &system.SystemInfo{OS: "linux", Platform: system.PlatformLinux, HasSmartctl: true, SmartctlPath: "/usr/sbin/smartctl"}
	service := New(staticProvider{snapshot}, sysInfo, "files")
	service.now = func() time.Time { return collected.Add(time.Minute) }

	data := service.GetHealthData()

	if data.Status != "degraded" {
		t.Errorf("Expected degraded status with a failed disk, got %s", data.Status)
	}
	if data.Service != "smartctl-exporter" {
		t.Errorf("Expected service name smartctl-exporter, got %s", data.Service)
	}
	if data.Timestamp != "2026-10-14T09:31:00Z" {
		t.Errorf("Unexpected timestamp %s", data.Timestamp)
	}
	if data.SystemInfo.LastCollect != "2026-10-14T09:30:00Z" {
		t.Errorf("Unexpected last collect %s", data.SystemInfo.LastCollect)
	}
	if data.SystemInfo.Tools.SmartCtlPath != "/usr/sbin/smartctl" {
		t.Errorf("Expected smartctl path in tools, got %+v", data.SystemInfo.Tools)
	}
	if data.Disks[1].Status != "CRITICAL" {
		t.Errorf("Expected failed disk to be critical, got %s", data.Disks[1].Status)
	}
	if data.SystemInfo.ParseErrors != 2 || data.SystemInfo.Source != "files" || !data.SystemInfo.SmartSupport {
		t.Errorf("Unexpected system info %+v", data.SystemInfo)
	}

	summary := data.DiskSummary
	if summary.TotalDisks != 3 || summary.HealthyDisks != 1 || summary.CriticalDisks != 1 || summary.UnknownDisks != 1 {
		t.Errorf("Unexpected summary %+v", summary)
	}
	if summary.IncompleteDisks != 2 {
		t.Errorf("Expected 2 incomplete disks, got %d", summary.IncompleteDisks)
	}

	sda := data.Disks[0]
	if sda.Model != "ST500LM021-1KJ152" || sda.Serial != "W620AT02" {
		t.Errorf("Unexpected identity %+v", sda)
	}
	if sda.HealthCode != 1 || sda.Status != "OK" || !sda.Complete || sda.Attributes != 2 {
		t.Errorf("Unexpected health %+v", sda)
	}
	if len(sda.FailedAttrs) != 1 || sda.FailedAttrs[0] != "Reallocated_Sector_Ct" {
		t.Errorf("Expected Reallocated_Sector_Ct to be failed, got %v", sda.FailedAttrs)
	}
	if len(sda.ErrorRecovery) != 1 || sda.ErrorRecovery["Read"] != 7.0 {
		t.Errorf("Expected only the read timer, got %v", sda.ErrorRecovery)
	}

	sdc := data.Disks[2]
	if sdc.Health != smartctl.HealthNotParsed || sdc.HealthCode != 0 {
		t.Errorf("Expected device without report to be unknown, got %+v", sdc)
	}
}

func TestGetHealthDataEmpty(t *testing.T) {
	service := New(staticProvider{}, nil, "smartctl")
	data := service.GetHealthData()

	if data.Status != "ok" {
		t.Errorf("Expected ok status, got %s", data.Status)
	}
	if data.DiskSummary.TotalDisks != 0 || len(data.Disks) != 0 {
		t.Errorf("Expected no disks, got %+v", data.DiskSummary)
	}
	if data.SystemInfo.LastCollect != "" {
		t.Errorf("Expected no last collect before the first cycle, got %s", data.SystemInfo.LastCollect)
	}
}
