package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"smartctl-exporter/internal/smartctl"
	"smartctl-exporter/pkg/types"
)

// DirSource reads smartctl captures from a directory. Files are expected to
// follow the smartctl_-a_.dev.<device> naming used by diagnostic archives.
type DirSource struct {
	dir    string
	filter Filter
}

// NewDirSource creates a source reading captures from dir
func NewDirSource(dir string, filter Filter) *DirSource {
	return &DirSource{dir: dir, filter: filter}
}

// Name returns the source name
func (s *DirSource) Name() string {
	return "files"
}

// Captures reads every capture file in the directory. Files whose device
// cannot be derived are still returned so the parser reports them.
func (s *DirSource) Captures(ctx context.Context) ([]types.Capture, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading report directory: %w", err)
	}

	var captures []types.Capture
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		kind, command, ok := captureKind(name)
		if !ok {
			continue
		}
		if device, err := smartctl.DeviceFromPath(command, name); err == nil && !s.filter.Include(device) {
			continue
		}

		path := filepath.Join(s.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error reading capture")
			continue
		}

		captures = append(captures, types.Capture{
			Kind:  kind,
			Path:  path,
			Lines: smartctl.SplitLines(string(data)),
		})
	}

	sort.Slice(captures, func(i, j int) bool { return captures[i].Path < captures[j].Path })
	log.Debug().Str("dir", s.dir).Int("captures", len(captures)).Msg("Read captures")
	return captures, nil
}

// captureKind classifies a file name by the smartctl command it captures
func captureKind(name string) (types.CaptureKind, string, bool) {
	switch {
	case strings.HasPrefix(name, smartctl.CommandAll):
		return types.CaptureReport, smartctl.CommandAll, true
	case strings.HasPrefix(name, smartctl.CommandSCTERC):
		return types.CaptureSCTERC, smartctl.CommandSCTERC, true
	default:
		return "", "", false
	}
}
