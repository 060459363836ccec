package smartctl

import "strings"

// ParseState is the section of a smartctl -a report the parser is in.
type ParseState int

const (
	StateFormattedInfo ParseState = iota
	StateFreeformInfo
	StateAttributeInfo
	StateComplete
)

// String returns the state name
func (s ParseState) String() string {
	switch s {
	case StateFormattedInfo:
		return "formatted-info"
	case StateFreeformInfo:
		return "freeform-info"
	case StateAttributeInfo:
		return "attribute-info"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// machine is the section state machine for a single report. It owns the
// accumulation buffer, so one machine must never be shared between
// goroutines.
type machine struct {
	state  ParseState
	buffer string
	report *Report
}

// newMachine creates a machine that fills report, starting in the
// information section.
func newMachine(report *Report) *machine {
	return &machine{
		state:  StateFormattedInfo,
		report: report,
	}
}

// feed consumes one line and returns the resulting state.
func (m *machine) feed(line string) ParseState {
	var next ParseState
	switch m.state {
	case StateFormattedInfo:
		next = m.parseInformation(line)
	case StateFreeformInfo:
		next = m.parseValues(line)
	case StateAttributeInfo:
		next = m.parseAttributes(line)
	case StateComplete:
		return StateComplete
	}

	// Partial values never survive a section change.
	if next != m.state {
		m.buffer = ""
	}
	m.state = next
	return next
}

// parseInformation handles the "START OF INFORMATION SECTION" lines
func (m *machine) parseInformation(line string) ParseState {
	if line == markerReadDataSection {
		return StateFreeformInfo
	}

	if key, value, ok := matchFormattedInfo(line); ok {
		m.report.information[key] = value
		return StateFormattedInfo
	}

	if pair, ok := translateInfoLine(line); ok {
		m.report.information[pair.key] = pair.value
	}
	return StateFormattedInfo
}

// parseValues handles the health line and the General SMART Values block.
func (m *machine) parseValues(line string) ParseState {
	switch {
	case strings.HasPrefix(line, markerAttributes):
		return StateAttributeInfo
	case strings.HasPrefix(line, markerOverallHealth):
		m.report.health = healthFromLine(line)
		return StateFreeformInfo
	case strings.HasPrefix(line, markerGeneralValues):
		return StateFreeformInfo
	case isCommentary(line):
		return StateFreeformInfo
	}

	if m.buffer != "" {
		m.buffer += " "
	}
	m.buffer += strings.TrimSpace(line)

	// Polling time recommendations are split over two lines, so the match
	// is retried every time the buffer grows.
	if key, value, ok := matchParenthesizedValue(m.buffer); ok {
		m.report.values[key] = value
		m.buffer = ""
	} else if strings.HasPrefix(m.buffer, revisionPrefix) {
		parts := strings.SplitN(m.buffer, ": ", 2)
		m.report.values[parts[0]] = parts[1]
		m.buffer = ""
	}
	return StateFreeformInfo
}

// parseAttributes handles the vendor specific attribute table. Rows that do
// not fit the column layout are dropped.
func (m *machine) parseAttributes(line string) ParseState {
	if strings.HasPrefix(line, markerErrorLog) {
		return StateComplete
	}
	if len(line) == 0 {
		return StateAttributeInfo
	}

	if attr, ok := matchAttributeRow(line); ok {
		m.report.attributes[attr.Name] = attr
	}
	return StateAttributeInfo
}
