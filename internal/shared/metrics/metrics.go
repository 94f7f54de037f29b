// Package metrics owns the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "talent",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "talent",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	MalformedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "talent",
		Name:      "malformed_records_total",
		Help:      "Stored employee entries skipped because they failed decoding.",
	})

	EmployeesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "talent",
		Name:      "employees_created_total",
		Help:      "Employees created, by id allocation policy.",
	}, []string{"policy"})
)
