package smartctl

import (
	"regexp"
	"strconv"
	"strings"
)

// Section boundary markers. The read-data marker must match the whole line,
// the others are prefixes since smartctl varies the tail between versions.
const (
	markerReadDataSection = "=== START OF READ SMART DATA SECTION ==="
	markerAttributes      = "Vendor Specific SMART Attributes with Thres"
	markerOverallHealth   = "SMART overall-health self-assessment test r"
	markerGeneralValues   = "General SMART Values:"
	markerErrorLog        = "SMART Error Log Version:"

	revisionPrefix = "SMART Attributes Data Structure revision number: "
)

var (
	infoLineRE = regexp.MustCompile(`(?P<key>\w+(?:\s\w+)*):\s+(?P<value>\S.*?)\s*$`)

	valueLineRE = regexp.MustCompile(`(?P<key>\w[A-Za-z _.-]+):\s+\(\s*(?P<value>\S.*?)\)`)

	attributeLineRE = regexp.MustCompile(`^\s*(?P<id>\d+)\s(?P<name>\w+)\s+` +
		`(?P<flag>0x[0-9a-fA-F]{4})\s+(?P<value>\d{3})\s+` +
		`(?P<worst>\d{3})\s+(?P<threshold>\d{3})\s+` +
		`(?P<type>[A-Za-z_-]+)\s+(?P<updated>[A-Za-z_-]+)\s+` +
		`(?P<when_failed>\S+)\s+(?P<raw_value>\S.*)$`)
)

// infoPair is a fixed information entry produced from a free-text line.
type infoPair struct {
	key   string
	value string
}

// infoTranslations maps the unstructured capability statements smartctl
// prints in the information section to the entry they stand for.
var infoTranslations = map[string]infoPair{
	"Device does not support SMART":                 {"SMART support is", "Not supported"},
	"Device supports SMART and is Enabled":          {"SMART support is", "Enabled"},
	"Error Counter logging not supported":           {"Error Counter logging", "Not supported"},
	"Device does not support Self Test logging":     {"Self Test logging", "Not supported"},
	"Temperature Warning Disabled or Not Supported": {"Temperature Warning", "Disabled or Not Supported"},
}

// matchFormattedInfo matches a "Key Words: value" line.
func matchFormattedInfo(line string) (key, value string, ok bool) {
	m := infoLineRE.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// matchParenthesizedValue matches "Key: (value)" anywhere in the
// accumulated line. Only the content up to the first closing parenthesis is
// taken as the value.
func matchParenthesizedValue(accumulated string) (key, value string, ok bool) {
	m := valueLineRE.FindStringSubmatch(accumulated)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// matchAttributeRow matches one row of the vendor specific attribute table.
func matchAttributeRow(line string) (AttributeRecord, bool) {
	m := attributeLineRE.FindStringSubmatch(line)
	if m == nil {
		return AttributeRecord{}, false
	}

	// The pattern guarantees digits, so these conversions only fail on
	// overflow of the id column.
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return AttributeRecord{}, false
	}
	value, _ := strconv.Atoi(m[4])
	worst, _ := strconv.Atoi(m[5])
	threshold, _ := strconv.Atoi(m[6])

	return AttributeRecord{
		ID:         id,
		Name:       m[2],
		Flag:       m[3],
		Value:      value,
		Worst:      worst,
		Threshold:  threshold,
		Type:       m[7],
		Updated:    m[8],
		WhenFailed: m[9],
		RawValue:   m[10],
	}, true
}

// translateInfoLine looks up a free-text information line.
func translateInfoLine(line string) (infoPair, bool) {
	pair, ok := infoTranslations[line]
	return pair, ok
}

// isCommentary reports whether a values-section line continues the
// commentary of the previous setting.
func isCommentary(line string) bool {
	return len(line) == 0 || line[0] == ' ' || line[0] == '\t'
}

// healthFromLine returns everything after the first ": " of an
// overall-health line, with any further separators dropped.
func healthFromLine(line string) string {
	parts := strings.Split(line, ": ")
	return strings.Join(parts[1:], "")
}
