package statistics

import (
	"github.com/markusressel/notebot/internal/motors"
	"github.com/prometheus/client_golang/prometheus"
)

const motorSubsystem = "motor"

type MotorCollector struct {
	speed *prometheus.Desc
}

// NewMotorCollector reports all motors registered in motors.MotorMap
func NewMotorCollector() *MotorCollector {
	return &MotorCollector{
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, motorSubsystem, "speed"),
			"Last commanded duty cycle of the motor",
			[]string{"id"}, nil,
		),
	}
}

func (collector *MotorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.speed
}

func (collector *MotorCollector) Collect(ch chan<- prometheus.Metric) {
	for id, motor := range motors.MotorMap.Items() {
		ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, motor.Get(), id)
	}
}
