package statistics

import (
	"github.com/markusressel/notebot/internal/shooter"
	"github.com/prometheus/client_golang/prometheus"
)

const shooterSubsystem = "shooter"

type ShooterCollector struct {
	shooter  *shooter.Shooter
	speed    *prometheus.Desc
	spinning *prometheus.Desc
}

func NewShooterCollector(s *shooter.Shooter) *ShooterCollector {
	return &ShooterCollector{
		shooter: s,
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, shooterSubsystem, "speed"),
			"Configured speed of the shooter flywheel", nil, nil,
		),
		spinning: prometheus.NewDesc(prometheus.BuildFQName(namespace, shooterSubsystem, "spinning"),
			"Whether the shooter flywheel is spinning", nil, nil,
		),
	}
}

func (collector *ShooterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.speed
	ch <- collector.spinning
}

func (collector *ShooterCollector) Collect(ch chan<- prometheus.Metric) {
	state := collector.shooter.GetState()
	ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, state.Speed)
	ch <- prometheus.MustNewConstMetric(collector.spinning, prometheus.GaugeValue, boolToFloat(state.Spinning))
}
