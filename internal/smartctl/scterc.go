package smartctl

import (
	"sort"
	"strconv"
	"strings"
)

// ERC timer directions reported by smartctl -l scterc
const (
	ERCRead  = "Read"
	ERCWrite = "Write"
)

// ERCTimer is one SCT Error Recovery Control timer.
type ERCTimer struct {
	Raw     string  `json:"raw"`               // token as printed, e.g. "200" or "Disabled"
	Seconds float64 `json:"seconds,omitempty"` // set when Numeric
	Numeric bool    `json:"numeric"`
}

// ERCResult holds the timers parsed from smartctl -l scterc.
type ERCResult struct {
	device string
	timers map[string]ERCTimer
}

// ParseSCTERC derives the device from the capture path and parses lines.
func ParseSCTERC(path string, lines []string) (*ERCResult, error) {
	device, err := DeviceFromPath(CommandSCTERC, path)
	if err != nil {
		return nil, err
	}
	return ParseSCTERCLines(device, lines), nil
}

// ParseSCTERCLines parses the Read/Write timer lines. Numeric values are
// reported by the drive in tenths of a second and are converted to seconds.
func ParseSCTERCLines(device string, lines []string) *ERCResult {
	result := &ERCResult{
		device: device,
		timers: make(map[string]ERCTimer),
	}

	for _, line := range lines {
		if !strings.Contains(line, "Read:") && !strings.Contains(line, "Write:") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		key := strings.TrimSuffix(fields[0], ":")
		if key != ERCRead && key != ERCWrite {
			continue
		}

		result.timers[key] = parseERCTimer(fields[1])
	}
	return result
}

func parseERCTimer(raw string) ERCTimer {
	timer := ERCTimer{Raw: raw}
	if !isDigits(raw) {
		return timer
	}

	ticks, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return timer
	}
	timer.Seconds = ticks / 10
	timer.Numeric = true
	return timer
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Device returns the device path
func (r *ERCResult) Device() string {
	return r.device
}

// Timer returns the timer for a direction (ERCRead or ERCWrite).
func (r *ERCResult) Timer(key string) (ERCTimer, bool) {
	t, ok := r.timers[key]
	return t, ok
}

// Seconds returns the timer value in seconds. It is false when the timer is
// absent or was not reported as a number.
func (r *ERCResult) Seconds(key string) (float64, bool) {
	t, ok := r.timers[key]
	if !ok || !t.Numeric {
		return 0, false
	}
	return t.Seconds, true
}

// Keys returns the directions present, sorted.
func (r *ERCResult) Keys() []string {
	keys := make([]string, 0, len(r.timers))
	for k := range r.timers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Timers returns a copy of all timers keyed by direction.
func (r *ERCResult) Timers() map[string]ERCTimer {
	out := make(map[string]ERCTimer, len(r.timers))
	for k, v := range r.timers {
		out[k] = v
	}
	return out
}
