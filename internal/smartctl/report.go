// Package smartctl parses the text output of smartctl -a and
// smartctl -l scterc into structured reports.
package smartctl

import (
	"sort"
)

// HealthNotParsed is the health of a report whose overall-health line was
// never seen.
const HealthNotParsed = "not parsed"

// AttributeRecord is one row of the vendor specific SMART attribute table
type AttributeRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Flag       string `json:"flag"`
	Value      int    `json:"value"`
	Worst      int    `json:"worst"`
	Threshold  int    `json:"threshold"`
	Type       string `json:"type"`
	Updated    string `json:"updated"`
	WhenFailed string `json:"when_failed"` // "-" when the attribute never failed
	RawValue   string `json:"raw_value"`
}

// Report holds the parsed output of smartctl -a for one device. A Report is
// not modified after ParseReport returns it.
type Report struct {
	device      string
	information map[string]string
	health      string
	values      map[string]string
	attributes  map[string]AttributeRecord
	complete    bool
}

// ReportData is a detached, serialisable copy of a Report.
type ReportData struct {
	Device      string                     `json:"device"`
	Health      string                     `json:"health"`
	Complete    bool                       `json:"complete"`
	Information map[string]string          `json:"information"`
	Values      map[string]string          `json:"values"`
	Attributes  map[string]AttributeRecord `json:"attributes"`
}

// ParseReport derives the device from the capture path and parses lines.
// It fails before looking at any line when the path carries no device.
func ParseReport(path string, lines []string) (*Report, error) {
	device, err := DeviceFromPath(CommandAll, path)
	if err != nil {
		return nil, err
	}
	return ParseReportLines(device, lines), nil
}

// ParseReportLines runs the section state machine over lines. Input that
// ends before the error log section still yields the fields seen so far.
func ParseReportLines(device string, lines []string) *Report {
	report := newReport(device)
	m := newMachine(report)

	for _, line := range lines {
		if m.feed(line) == StateComplete {
			report.complete = true
			break
		}
	}
	return report
}

func newReport(device string) *Report {
	return &Report{
		device:      device,
		information: make(map[string]string),
		health:      HealthNotParsed,
		values:      make(map[string]string),
		attributes:  make(map[string]AttributeRecord),
	}
}

// Device returns the device path, e.g. /dev/sda
func (r *Report) Device() string {
	return r.device
}

// Health returns the overall-health self-assessment result
func (r *Report) Health() string {
	return r.health
}

// Complete reports whether parsing reached the error log section.
func (r *Report) Complete() bool {
	return r.complete
}

// Information returns a field of the information section.
func (r *Report) Information(key string) (string, bool) {
	v, ok := r.information[key]
	return v, ok
}

// Value returns a field of the General SMART Values section.
func (r *Report) Value(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Attribute returns the attribute table row with the given name.
func (r *Report) Attribute(name string) (AttributeRecord, bool) {
	a, ok := r.attributes[name]
	return a, ok
}

// InformationKeys returns the information field names in sorted order.
func (r *Report) InformationKeys() []string {
	return sortedKeys(r.information)
}

// ValueKeys returns the value field names in sorted order.
func (r *Report) ValueKeys() []string {
	return sortedKeys(r.values)
}

// AttributeNames returns the attribute names in sorted order.
func (r *Report) AttributeNames() []string {
	return sortedKeys(r.attributes)
}

// Attributes returns the attribute rows ordered by id, then name.
func (r *Report) Attributes() []AttributeRecord {
	attrs := make([]AttributeRecord, 0, len(r.attributes))
	for _, a := range r.attributes {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool {
		if attrs[i].ID != attrs[j].ID {
			return attrs[i].ID < attrs[j].ID
		}
		return attrs[i].Name < attrs[j].Name
	})
	return attrs
}

// Snapshot returns a copy of the report that the caller may modify.
func (r *Report) Snapshot() ReportData {
	data := ReportData{
		Device:      r.device,
		Health:      r.health,
		Complete:    r.complete,
		Information: make(map[string]string, len(r.information)),
		Values:      make(map[string]string, len(r.values)),
		Attributes:  make(map[string]AttributeRecord, len(r.attributes)),
	}
	for k, v := range r.information {
		data.Information[k] = v
	}
	for k, v := range r.values {
		data.Values[k] = v
	}
	for k, v := range r.attributes {
		data.Attributes[k] = v
	}
	return data
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
