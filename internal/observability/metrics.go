package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	requestsTotal       *prometheus.CounterVec
	latencySeconds      *prometheus.HistogramVec
	errorsTotal         *prometheus.CounterVec
	submissionUploads   *prometheus.CounterVec
	submissionRejected  *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coursehub_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coursehub_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coursehub_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		submissionUploads = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coursehub_submission_uploads_total",
			Help: "Total number of stored submission files by detected type.",
		}, []string{"type"})

		submissionRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coursehub_submission_rejected_total",
			Help: "Total number of rejected submission uploads by reason.",
		}, []string{"reason"})

		prometheus.MustRegister(requestsTotal, latencySeconds, errorsTotal, submissionUploads, submissionRejected)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the counter for API error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// SubmissionUploads exposes the counter for stored submission files.
func SubmissionUploads() *prometheus.CounterVec {
	RegisterMetrics()
	return submissionUploads
}

// SubmissionRejected exposes the counter for rejected submission uploads.
func SubmissionRejected() *prometheus.CounterVec {
	RegisterMetrics()
	return submissionRejected
}
