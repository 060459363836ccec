package collector

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"smartctl-exporter/internal/metrics"
	"smartctl-exporter/internal/smartctl"
	"smartctl-exporter/internal/source"
	"smartctl-exporter/internal/utils"
	"smartctl-exporter/pkg/types"
)

// DeviceState is the latest parsed output for one device. Either part may
// be nil when the matching capture was missing.
type DeviceState struct {
	Device string
	Report *smartctl.Report
	ERC    *smartctl.ERCResult
}

// Snapshot is the result of one collection cycle
type Snapshot struct {
	Devices     []DeviceState
	ParseErrors int
	CollectedAt time.Time
}

// Collector handles metric collection
type Collector struct {
	metrics  *metrics.Metrics
	source   source.Source
	interval time.Duration
	workers  int

	mu      sync.RWMutex
	current Snapshot
}

// New creates a new collector
func New(m *metrics.Metrics, src source.Source, interval time.Duration, workers int) *Collector {
	if workers < 1 {
		workers = 1
	}
	return &Collector{
		metrics:  m,
		source:   src,
		interval: interval,
		workers:  workers,
	}
}

// Start begins the metric collection loop and returns when ctx is done
func (c *Collector) Start(ctx context.Context) {
	// Set exporter as up
	c.metrics.ExporterUp.Set(1)
	defer c.metrics.ExporterUp.Set(0)

	// Collect metrics immediately on startup
	c.collectAndLog(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.collectAndLog(ctx)
		}
	}
}

func (c *Collector) collectAndLog(ctx context.Context) {
	if err := c.Collect(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Str("source", c.source.Name()).Msg("Collection failed")
	}
}

// parsed is the outcome of parsing one capture
type parsed struct {
	report *smartctl.Report
	erc    *smartctl.ERCResult
	err    error
}

// Collect runs one collection cycle: fetch captures, parse them in parallel
// and publish the results.
func (c *Collector) Collect(ctx context.Context) error {
	log.Debug().Str("source", c.source.Name()).Msg("Collecting SMART reports")

	captures, err := c.source.Captures(ctx)
	if err != nil {
		return err
	}

	// Every goroutine runs its own parser, the results slice is only
	// written at distinct indexes.
	results := make([]parsed, len(captures))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := range captures {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = parseCapture(captures[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	snapshot := c.merge(captures, results)
	c.publish(snapshot)

	c.mu.Lock()
	c.current = snapshot
	c.mu.Unlock()

	log.Info().
		Int("devices", len(snapshot.Devices)).
		Int("parse_errors", snapshot.ParseErrors).
		Msg("Updated SMART metrics")
	return nil
}

// Current returns the snapshot of the last completed cycle
func (c *Collector) Current() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func parseCapture(capture types.Capture) parsed {
	switch capture.Kind {
	case types.CaptureReport:
		report, err := smartctl.ParseReport(capture.Path, capture.Lines)
		return parsed{report: report, err: err}
	case types.CaptureSCTERC:
		erc, err := smartctl.ParseSCTERC(capture.Path, capture.Lines)
		return parsed{erc: erc, err: err}
	default:
		return parsed{err: errors.New("unknown capture kind " + string(capture.Kind))}
	}
}

// merge groups parse results by device
func (c *Collector) merge(captures []types.Capture, results []parsed) Snapshot {
	snapshot := Snapshot{CollectedAt: time.Now()}
	byDevice := make(map[string]*DeviceState)

	state := func(device string) *DeviceState {
		s, ok := byDevice[device]
		if !ok {
			s = &DeviceState{Device: device}
			byDevice[device] = s
		}
		return s
	}

	for i, result := range results {
		if result.err != nil {
			snapshot.ParseErrors++
			c.metrics.ParseErrors.WithLabelValues(string(captures[i].Kind)).Inc()
			log.Warn().Err(result.err).Str("path", captures[i].Path).Msg("Skipping capture")
			continue
		}
		if result.report != nil {
			state(result.report.Device()).Report = result.report
		}
		if result.erc != nil {
			state(result.erc.Device()).ERC = result.erc
		}
	}

	for _, s := range byDevice {
		snapshot.Devices = append(snapshot.Devices, *s)
	}
	sort.Slice(snapshot.Devices, func(i, j int) bool {
		return snapshot.Devices[i].Device < snapshot.Devices[j].Device
	})
	return snapshot
}

// publish replaces the per-device metrics with the snapshot
func (c *Collector) publish(snapshot Snapshot) {
	c.metrics.Reset()
	for _, device := range snapshot.Devices {
		if device.Report != nil {
			c.updateReportMetrics(device.Report)
		}
		if device.ERC != nil {
			c.updateERCMetrics(device.ERC)
		}
	}
	c.metrics.LastCollectTime.Set(float64(snapshot.CollectedAt.Unix()))
}

func (c *Collector) updateReportMetrics(report *smartctl.Report) {
	device := report.Device()

	c.metrics.DiskHealthStatus.WithLabelValues(device, report.Health()).
		Set(float64(utils.GetHealthStatusValue(report.Health())))
	c.metrics.ReportComplete.WithLabelValues(device).Set(boolToFloat(report.Complete()))

	model := firstInformation(report, "Device Model", "Product", "Model Number")
	serial := firstInformation(report, "Serial Number", "Serial number")
	firmware := firstInformation(report, "Firmware Version", "Revision")
	c.metrics.DiskInfo.WithLabelValues(device, model, serial, firmware).Set(1)

	if capacity, ok := report.Information("User Capacity"); ok {
		if bytes := utils.ParseCapacityBytes(capacity); bytes > 0 {
			c.metrics.DiskCapacityBytes.WithLabelValues(device).Set(float64(bytes))
		}
	}

	for _, attr := range report.Attributes() {
		labels := []string{device, strconv.Itoa(attr.ID), attr.Name, attr.Type}
		c.metrics.AttributeValue.WithLabelValues(labels...).Set(float64(attr.Value))
		c.metrics.AttributeWorst.WithLabelValues(labels...).Set(float64(attr.Worst))
		c.metrics.AttributeThreshold.WithLabelValues(labels...).Set(float64(attr.Threshold))
		c.metrics.AttributeFailed.WithLabelValues(labels...).Set(boolToFloat(attr.WhenFailed != "-"))
		if raw, ok := utils.ParseRawValue(attr.RawValue); ok {
			c.metrics.AttributeRawValue.WithLabelValues(labels...).Set(float64(raw))
		}
	}
}

func (c *Collector) updateERCMetrics(erc *smartctl.ERCResult) {
	device := erc.Device()
	for _, direction := range erc.Keys() {
		timer, _ := erc.Timer(direction)
		c.metrics.ErrorRecoveryEnable.WithLabelValues(device, direction).Set(boolToFloat(timer.Numeric))
		if timer.Numeric {
			c.metrics.ErrorRecoverySec.WithLabelValues(device, direction).Set(timer.Seconds)
		}
	}
}

// firstInformation returns the first information field present. ATA and
// SCSI devices name the same fields differently.
func firstInformation(report *smartctl.Report, keys ...string) string {
	for _, key := range keys {
		if v, ok := report.Information(key); ok {
			return v
		}
	}
	return ""
}

// boolToFloat converts boolean to float64 for metrics
func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
