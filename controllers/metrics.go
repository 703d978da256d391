package controllers

import "github.com/prometheus/client_golang/prometheus"

var (
	activitiesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitarc",
		Subsystem: "activity",
		Name:      "logged_total",
		Help:      "Number of activities appended through /activity/log.",
	})

	levelUps = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitarc",
		Subsystem: "gamification",
		Name:      "level_ups_total",
		Help:      "Number of successful level-up events.",
	})
)

func init() {
	prometheus.MustRegister(activitiesLogged, levelUps)
}
