package statistics

import (
	"github.com/markusressel/notebot/internal/intake"
	"github.com/prometheus/client_golang/prometheus"
)

const intakeSubsystem = "intake"

type IntakeCollector struct {
	intake  *intake.Intake
	hasNote *prometheus.Desc
	speed   *prometheus.Desc
}

func NewIntakeCollector(i *intake.Intake) *IntakeCollector {
	return &IntakeCollector{
		intake: i,
		hasNote: prometheus.NewDesc(prometheus.BuildFQName(namespace, intakeSubsystem, "has_note"),
			"Whether the intake holds a note", nil, nil,
		),
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, intakeSubsystem, "speed"),
			"Configured speed of the intake", nil, nil,
		),
	}
}

func (collector *IntakeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.hasNote
	ch <- collector.speed
}

func (collector *IntakeCollector) Collect(ch chan<- prometheus.Metric) {
	state := collector.intake.GetState()
	ch <- prometheus.MustNewConstMetric(collector.hasNote, prometheus.GaugeValue, boolToFloat(state.HasNote))
	ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, state.Speed)
}
