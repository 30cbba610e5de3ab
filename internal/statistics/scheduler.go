package statistics

import (
	"github.com/markusressel/notebot/internal/scheduler"
	"github.com/prometheus/client_golang/prometheus"
)

const schedulerSubsystem = "scheduler"

type SchedulerCollector struct {
	scheduler    *scheduler.Scheduler
	ticks        *prometheus.Desc
	errors       *prometheus.Desc
	tickDuration *prometheus.Desc
	maxDuration  *prometheus.Desc
}

func NewSchedulerCollector(s *scheduler.Scheduler) *SchedulerCollector {
	return &SchedulerCollector{
		scheduler: s,
		ticks: prometheus.NewDesc(prometheus.BuildFQName(namespace, schedulerSubsystem, "ticks_total"),
			"Number of ticks executed", nil, nil,
		),
		errors: prometheus.NewDesc(prometheus.BuildFQName(namespace, schedulerSubsystem, "errors_total"),
			"Number of failed subsystem updates", nil, nil,
		),
		tickDuration: prometheus.NewDesc(prometheus.BuildFQName(namespace, schedulerSubsystem, "tick_duration_microseconds"),
			"Average duration of recent ticks", nil, nil,
		),
		maxDuration: prometheus.NewDesc(prometheus.BuildFQName(namespace, schedulerSubsystem, "tick_duration_max_microseconds"),
			"Maximum duration of recent ticks", nil, nil,
		),
	}
}

func (collector *SchedulerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.ticks
	ch <- collector.errors
	ch <- collector.tickDuration
	ch <- collector.maxDuration
}

func (collector *SchedulerCollector) Collect(ch chan<- prometheus.Metric) {
	stats := collector.scheduler.GetStats()
	ch <- prometheus.MustNewConstMetric(collector.ticks, prometheus.CounterValue, float64(stats.Ticks))
	ch <- prometheus.MustNewConstMetric(collector.errors, prometheus.CounterValue, float64(stats.Errors))
	ch <- prometheus.MustNewConstMetric(collector.tickDuration, prometheus.GaugeValue, stats.AvgTickDuration)
	ch <- prometheus.MustNewConstMetric(collector.maxDuration, prometheus.GaugeValue, stats.MaxTickDuration)
}
