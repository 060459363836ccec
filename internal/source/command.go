package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"smartctl-exporter/internal/smartctl"
	"smartctl-exporter/internal/utils"
	"smartctl-exporter/pkg/types"
)

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandSource runs smartctl against the devices found by smartctl --scan
type CommandSource struct {
	smartctlPath string
	filter       Filter
	run          runFunc
}

// NewCommandSource creates a source running the smartctl binary at path
func NewCommandSource(path string, filter Filter) *CommandSource {
	if path == "" {
		path = "smartctl"
	}
	return &CommandSource{
		smartctlPath: path,
		filter:       filter,
		run:          utils.RunOutput,
	}
}

// Name returns the source name
func (s *CommandSource) Name() string {
	return "smartctl"
}

// Captures runs smartctl -a and smartctl -l scterc for every scanned device.
// A device whose commands fail is skipped.
func (s *CommandSource) Captures(ctx context.Context) ([]types.Capture, error) {
	output, err := s.run(ctx, s.smartctlPath, "--scan")
	if err != nil {
		return nil, fmt.Errorf("scanning for devices with smartctl: %w", err)
	}

	var captures []types.Capture
	for _, device := range ParseScanOutput(string(output)) {
		if !s.filter.Include(device) {
			continue
		}

		report, err := s.run(ctx, s.smartctlPath, "-a", device)
		if err != nil {
			log.Warn().Err(err).Str("device", device).Msg("Error getting smartctl report")
			continue
		}
		captures = append(captures, types.Capture{
			Kind:  types.CaptureReport,
			Path:  smartctl.CapturePath(smartctl.CommandAll, device),
			Lines: smartctl.SplitLines(string(report)),
		})

		erc, err := s.run(ctx, s.smartctlPath, "-l", "scterc", device)
		if err != nil {
			log.Debug().Err(err).Str("device", device).Msg("SCT ERC not available")
			continue
		}
		captures = append(captures, types.Capture{
			Kind:  types.CaptureSCTERC,
			Path:  smartctl.CapturePath(smartctl.CommandSCTERC, device),
			Lines: smartctl.SplitLines(string(erc)),
		})
	}

	log.Debug().Int("captures", len(captures)).Msg("Ran smartctl")
	return captures, nil
}

// ParseScanOutput returns the block devices listed by smartctl --scan, e.g.
// "/dev/sda -d scsi # /dev/sda, SCSI device". Controller pass-through
// entries such as /dev/bus/0 are skipped.
func ParseScanOutput(output string) []string {
	var devices []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		device := fields[0]
		name := strings.TrimPrefix(device, "/dev/")
		if strings.HasPrefix(name, "sd") || strings.HasPrefix(name, "nvme") ||
			strings.HasPrefix(name, "hd") || strings.HasPrefix(name, "vd") {
			if !seen[device] {
				seen[device] = true
				devices = append(devices, device)
			}
		}
	}
	return devices
}
