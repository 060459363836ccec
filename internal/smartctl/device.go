package smartctl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Capture name prefixes, one per smartctl invocation. A capture of
// "smartctl -a /dev/sda" is stored as smartctl_-a_.dev.sda.
const (
	CommandAll    = "smartctl_-a_"
	CommandSCTERC = "smartctl_-l_scterc_"
)

// ErrMalformedSourceIdentifier is returned when no device can be derived
// from a capture path.
var ErrMalformedSourceIdentifier = errors.New("cannot parse device name from path")

var devicePatterns = map[string]*regexp.Regexp{
	CommandAll:    regexp.MustCompile(`smartctl_-a_\.dev\.(?P<device>\w+)$`),
	CommandSCTERC: regexp.MustCompile(`smartctl_-l_scterc_\.dev\.(?P<device>\w+)$`),
}

// DeviceFromPath extracts the device from the path of a capture produced by
// command, e.g. "/data/smartctl_-a_.dev.sda" gives "/dev/sda".
func DeviceFromPath(command, path string) (string, error) {
	re, ok := devicePatterns[command]
	if !ok {
		return "", fmt.Errorf("unknown capture command %q", command)
	}

	m := re.FindStringSubmatch(path)
	if m == nil {
		return "", fmt.Errorf("%w %s", ErrMalformedSourceIdentifier, path)
	}
	return "/dev/" + m[1], nil
}

// CapturePath returns the capture file name for running command against
// device. It is the inverse of DeviceFromPath.
func CapturePath(command, device string) string {
	name := strings.TrimPrefix(device, "/dev/")
	return command + ".dev." + strings.ReplaceAll(name, "/", ".")
}
