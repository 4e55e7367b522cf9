// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes the Prometheus instruments of the API.

The [Recorder] owns a private registry rather than the global default one, so
every instance (production or test) starts from zero and can be served on
/metrics with [Recorder.Handler].

Instruments:

  - clubcompass_http_requests_total and clubcompass_http_request_duration_seconds
  - clubcompass_auth_decisions_total, labelled by outcome
  - clubcompass_tenant_resolutions_total, labelled by outcome

All methods are safe on a nil *Recorder.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clubcompass"

// # Outcome Labels

// Authorization outcomes.
const (
	AuthAuthorized   = "authorized"
	AuthNoSession    = "no_session"
	AuthMalformed    = "malformed"
	AuthInsufficient = "insufficient_role"
	AuthError        = "error"
	AuthAbandoned    = "abandoned"
)

// Tenant resolution outcomes.
const (
	TenantResolved    = "resolved"
	TenantNoSubdomain = "no_subdomain"
	TenantTooMany     = "too_many_subdomains"
	TenantInvalid     = "invalid_subdomain"
	TenantError       = "error"
)

// Recorder groups the application's collectors behind a dedicated registry.
type Recorder struct {
	registry          *prometheus.Registry
	requests          *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	authDecisions     *prometheus.CounterVec
	tenantResolutions *prometheus.CounterVec
}

// New builds a [Recorder] with the Go runtime and process collectors attached.
func New() *Recorder {
	recorder := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_decisions_total",
			Help:      "Authorization middleware decisions by outcome.",
		}, []string{"outcome"}),
		tenantResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tenant_resolutions_total",
			Help:      "Tenant resolution results by outcome.",
		}, []string{"outcome"}),
	}

	recorder.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		recorder.requests,
		recorder.requestDuration,
		recorder.authDecisions,
		recorder.tenantResolutions,
	)

	return recorder
}

// # Recording

// ObserveRequest records one finished HTTP request.
func (recorder *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if recorder == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	recorder.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	recorder.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// AuthDecision counts one authorization outcome.
func (recorder *Recorder) AuthDecision(outcome string) {
	if recorder == nil {
		return
	}
	recorder.authDecisions.WithLabelValues(outcome).Inc()
}

// TenantResolution counts one tenant resolution outcome.
func (recorder *Recorder) TenantResolution(outcome string) {
	if recorder == nil {
		return
	}
	recorder.tenantResolutions.WithLabelValues(outcome).Inc()
}

// # Exposition

// Handler serves the registry in the Prometheus text format.
func (recorder *Recorder) Handler() http.Handler {
	if recorder == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(recorder.registry, promhttp.HandlerOpts{})
}
