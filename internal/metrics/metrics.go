package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	DiskHealthStatus    *prometheus.GaugeVec
	DiskInfo            *prometheus.GaugeVec
	DiskCapacityBytes   *prometheus.GaugeVec
	ReportComplete      *prometheus.GaugeVec
	AttributeValue      *prometheus.GaugeVec
	AttributeWorst      *prometheus.GaugeVec
	AttributeThreshold  *prometheus.GaugeVec
	AttributeRawValue   *prometheus.GaugeVec
	AttributeFailed     *prometheus.GaugeVec
	ErrorRecoverySec    *prometheus.GaugeVec
	ErrorRecoveryEnable *prometheus.GaugeVec
	ParseErrors         *prometheus.CounterVec
	LastCollectTime     prometheus.Gauge
	ExporterUp          prometheus.Gauge
}

var (
	deviceLabels    = []string{"device"}
	attributeLabels = []string{"device", "id", "name", "type"}
)

// New creates all metrics and registers them with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates all metrics and registers them with reg
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DiskHealthStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_disk_health_status",
				Help: "SMART overall-health self-assessment (0=unknown, 1=ok, 2=warning, 3=critical)",
			},
			[]string{"device", "health"},
		),
		DiskInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_disk_info",
				Help: "Disk identity from the smartctl information section, always 1",
			},
			[]string{"device", "model", "serial", "firmware"},
		),
		DiskCapacityBytes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_disk_capacity_bytes",
				Help: "User capacity of the disk in bytes",
			},
			deviceLabels,
		),
		ReportComplete: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_report_complete",
				Help: "Whether the smartctl report was parsed up to the error log section",
			},
			deviceLabels,
		),
		AttributeValue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_attribute_value",
				Help: "Normalized current value of a SMART attribute",
			},
			attributeLabels,
		),
		AttributeWorst: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_attribute_worst",
				Help: "Worst normalized value of a SMART attribute",
			},
			attributeLabels,
		),
		AttributeThreshold: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_attribute_threshold",
				Help: "Failure threshold of a SMART attribute",
			},
			attributeLabels,
		),
		AttributeRawValue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_attribute_raw_value",
				Help: "Leading counter of the raw value of a SMART attribute",
			},
			attributeLabels,
		),
		AttributeFailed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_attribute_failed",
				Help: "Whether smartctl reports a WHEN_FAILED entry for the attribute",
			},
			attributeLabels,
		),
		ErrorRecoverySec: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_scterc_seconds",
				Help: "SCT Error Recovery Control timeout in seconds",
			},
			[]string{"device", "direction"},
		),
		ErrorRecoveryEnable: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartctl_scterc_enabled",
				Help: "Whether the SCT Error Recovery Control timer is set",
			},
			[]string{"device", "direction"},
		),
		ParseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartctl_report_parse_errors_total",
				Help: "Captures that could not be attributed to a device",
			},
			[]string{"kind"},
		),
		LastCollectTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "smartctl_last_collect_timestamp_seconds",
				Help: "Unix time of the last completed collection",
			},
		),
		ExporterUp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "smartctl_exporter_up",
				Help: "Whether the smartctl exporter is up and running",
			},
		),
	}

	// Register all metrics
	reg.MustRegister(
		m.DiskHealthStatus,
		m.DiskInfo,
		m.DiskCapacityBytes,
		m.ReportComplete,
		m.AttributeValue,
		m.AttributeWorst,
		m.AttributeThreshold,
		m.AttributeRawValue,
		m.AttributeFailed,
		m.ErrorRecoverySec,
		m.ErrorRecoveryEnable,
		m.ParseErrors,
		m.LastCollectTime,
		m.ExporterUp,
	)

	return m
}

// Reset clears all per-device metrics
func (m *Metrics) Reset() {
	m.DiskHealthStatus.Reset()
	m.DiskInfo.Reset()
	m.DiskCapacityBytes.Reset()
	m.ReportComplete.Reset()
	m.AttributeValue.Reset()
	m.AttributeWorst.Reset()
	m.AttributeThreshold.Reset()
	m.AttributeRawValue.Reset()
	m.AttributeFailed.Reset()
	m.ErrorRecoverySec.Reset()
	m.ErrorRecoveryEnable.Reset()
}
