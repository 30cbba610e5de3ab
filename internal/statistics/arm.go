package statistics

import (
	"github.com/markusressel/notebot/internal/arm"
	"github.com/prometheus/client_golang/prometheus"
)

const armSubsystem = "arm"

type ArmCollector struct {
	arm *arm.Arm

	goal             *prometheus.Desc
	setpointPosition *prometheus.Desc
	setpointVelocity *prometheus.Desc
	measurement      *prometheus.Desc
	outputVolts      *prometheus.Desc
	feedforwardVolts *prometheus.Desc
	trackingError    *prometheus.Desc
	enabled          *prometheus.Desc
}

func NewArmCollector(a *arm.Arm) *ArmCollector {
	return &ArmCollector{
		arm: a,
		goal: prometheus.NewDesc(prometheus.BuildFQName(namespace, armSubsystem, "goal_radians"),
			"Goal angle of the arm", nil, nil,
		),
		setpointPosition: prometheus.NewDesc(prometheus.BuildFQName(namespace, armSubsystem, "setpoint_radians"),
			"Position of the current motion profile setpoint", nil, nil,
		),
		setpointVelocity: prometheus.NewDesc(prometheus.BuildFQName(namespace, armSubsystem, "setpoint_velocity_radians_per_second"),
			"Velocity of the current motion profile setpoint", nil, nil,
		),
		measurement: prometheus.NewDesc(prometheus.BuildFQName(namespace, armSubsystem, "measurement_radians"),
			"Measured angle of the arm", nil, nil,
		),
		outputVolts: prometheus.NewDesc(prometheus.BuildFQName(namespace, armSubsystem, "output_volts"),
			"Voltage applied to the arm motor", nil, nil,
		),
		feedforwardVolts: prometheus.NewDesc(prometheus.BuildFQName(namespace, armSubsystem, "feedforward_volts"),
			"Feedforward part of the applied voltage", nil, nil,
		),
		trackingError: prometheus.NewDesc(prometheus.BuildFQName(namespace, armSubsystem, "tracking_error_radians"),
			"Average difference between setpoint and measurement", nil, nil,
		),
		enabled: prometheus.NewDesc(prometheus.BuildFQName(namespace, armSubsystem, "enabled"),
			"Whether closed loop control of the arm is enabled", nil, nil,
		),
	}
}

func (collector *ArmCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.goal
	ch <- collector.setpointPosition
	ch <- collector.setpointVelocity
	ch <- collector.measurement
	ch <- collector.outputVolts
	ch <- collector.feedforwardVolts
	ch <- collector.trackingError
	ch <- collector.enabled
}

func (collector *ArmCollector) Collect(ch chan<- prometheus.Metric) {
	state := collector.arm.GetState()
	ch <- prometheus.MustNewConstMetric(collector.goal, prometheus.GaugeValue, state.Goal.Position)
	ch <- prometheus.MustNewConstMetric(collector.setpointPosition, prometheus.GaugeValue, state.Setpoint.Position)
	ch <- prometheus.MustNewConstMetric(collector.setpointVelocity, prometheus.GaugeValue, state.Setpoint.Velocity)
	ch <- prometheus.MustNewConstMetric(collector.measurement, prometheus.GaugeValue, state.Measurement)
	ch <- prometheus.MustNewConstMetric(collector.outputVolts, prometheus.GaugeValue, state.OutputVolts)
	ch <- prometheus.MustNewConstMetric(collector.feedforwardVolts, prometheus.GaugeValue, state.FeedforwardVolts)
	ch <- prometheus.MustNewConstMetric(collector.trackingError, prometheus.GaugeValue, state.AvgTrackingError)
	ch <- prometheus.MustNewConstMetric(collector.enabled, prometheus.GaugeValue, boolToFloat(state.Enabled))
}

func boolToFloat(value bool) float64 {
	if value {
		return 1
	}
	return 0
}
