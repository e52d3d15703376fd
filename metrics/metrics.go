// Package metrics exposes Prometheus counters for page interactions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

var (
	PageSessions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_sessions_total",
		Help:      "Page sessions created.",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "page_sessions_active",
		Help:      "Page sessions currently held in memory.",
	})

	ProjectReorders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_reorders_total",
		Help:      "Project reorder gestures by outcome.",
	}, []string{"outcome"})

	SectionReveals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "section_reveals_total",
		Help:      "Sections that became visible for the first time.",
	}, []string{"section"})

	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by result.",
	}, []string{"result"})

	ContactSendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "contact_send_duration_seconds",
		Help:      "Time spent delivering contact messages.",
		Buckets:   prometheus.DefBuckets,
	})

	NavStyleChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nav_style_changes_total",
		Help:      "Navigation bar switches between its top and scrolled styles.",
	}, []string{"style"})

	NavScrolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nav_scrolls_total",
		Help:      "Navigation scroll requests by whether the target existed.",
	}, []string{"resolved"})
)
