package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts handled HTTP requests by method, route and status
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edutask", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "edutask", Name: "http_request_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// SubmissionsReceived counts assignment submissions (first and resubmit)
	SubmissionsReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "edutask", Name: "submissions_total", Help: "Assignment submissions received",
	})

	// GradesRecorded counts grade writes for submissions and tests
	GradesRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edutask", Name: "grades_recorded_total", Help: "Grade writes",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, SubmissionsReceived, GradesRecorded)
}

// Handler returns the prometheus scrape handler
func Handler() http.Handler { return promhttp.Handler() }
