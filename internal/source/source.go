// Package source acquires smartctl output, either from capture files or by
// running smartctl against the local devices.
package source

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"smartctl-exporter/pkg/types"
)

// Source produces the captures parsed in one collection cycle
type Source interface {
	Name() string
	Captures(ctx context.Context) ([]types.Capture, error)
}

// Filter selects devices by target list and ignore prefixes
type Filter struct {
	targetDisks    []string
	ignorePatterns []string
}

// NewFilter creates a filter. An empty target list includes every device
// not matching an ignore pattern.
func NewFilter(targetDisks, ignorePatterns []string) Filter {
	return Filter{
		targetDisks:    targetDisks,
		ignorePatterns: ignorePatterns,
	}
}

// Include checks if a device should be collected
func (f Filter) Include(device string) bool {
	for _, pattern := range f.ignorePatterns {
		if strings.HasPrefix(device, pattern) {
			log.Debug().Str("device", device).Str("pattern", pattern).Msg("Ignoring disk")
			return false
		}
	}

	if len(f.targetDisks) > 0 {
		for _, target := range f.targetDisks {
			if device == target {
				return true
			}
		}
		log.Debug().Str("device", device).Msg("Skipping disk not in target list")
		return false
	}

	return true
}
