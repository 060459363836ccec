package utils

import (
	"strconv"
	"strings"

	"smartctl-exporter/pkg/types"
)

// GetHealthStatusValue converts a smartctl overall-health verdict to a
// numeric status. ATA drives report PASSED/FAILED!, SCSI drives OK or a
// failure description.
func GetHealthStatusValue(health string) int {
	health = strings.ToUpper(strings.TrimSpace(health))

	switch {
	case health == "PASSED" || health == "OK":
		return int(types.HealthStatusOK)
	case strings.Contains(health, "FAILED") || strings.Contains(health, "FAILING"):
		return int(types.HealthStatusCritical)
	case strings.Contains(health, "WARNING") || strings.Contains(health, "PREFAIL"):
		return int(types.HealthStatusWarning)
	default:
		return int(types.HealthStatusUnknown)
	}
}

// HealthStatusName returns the display name of a numeric health status
func HealthStatusName(status int) string {
	switch types.HealthStatus(status) {
	case types.HealthStatusOK:
		return "OK"
	case types.HealthStatusWarning:
		return "WARNING"
	case types.HealthStatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseRawValue extracts the leading counter of an attribute raw value, e.g.
// 33 from "33 (Min/Max 18/45)". Vendor formats such as "0/0" or
// "12h+34m" are cut at the first non-digit.
func ParseRawValue(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	value, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseCapacityBytes parses the smartctl capacity field, for example
// "500,107,862,016 bytes [500 GB]".
func ParseCapacityBytes(capacity string) int64 {
	fields := strings.Fields(capacity)
	if len(fields) < 2 || fields[1] != "bytes" {
		return 0
	}

	value, err := strconv.ParseInt(strings.ReplaceAll(fields[0], ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
