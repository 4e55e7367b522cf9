// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/metrics"
	"github.com/taibuivan/clubcompass/internal/platform/respond"
	"github.com/taibuivan/clubcompass/internal/school"
)

const (
	msgNoSubdomain       = "No subdomain"
	msgTooManySubdomains = "Too many subdomains"
	msgInvalidSubdomain  = "Invalid subdomain"
)

// SchoolFinder looks up a registered school by its subdomain name.
//
// A missing school must be reported with an error matching [dberr.ErrNotFound].
type SchoolFinder interface {
	FindByName(ctx context.Context, name string) (*school.School, error)
}

// TenantResolver scopes each request to the school named by its subdomain.
type TenantResolver struct {
	known   map[string]struct{}
	schools SchoolFinder
	offset  int
	metrics *metrics.Recorder
}

// NewTenantResolver builds a resolver for hosts under clientDomain. Only the
// names in known are accepted, and each must also exist in schools.
func NewTenantResolver(clientDomain string, known []string, schools SchoolFinder, recorder *metrics.Recorder) *TenantResolver {
	set := make(map[string]struct{}, len(known))
	for _, name := range known {
		set[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	return &TenantResolver{
		known:   set,
		schools: schools,
		offset:  len(hostLabels(clientDomain)),
		metrics: recorder,
	}
}

/*
Resolve rejects requests whose host does not name exactly one known school.

# Flow
 1. Derive the subdomains from the Host header.
 2. Zero → 400 "No subdomain"; more than one → 400 "Too many subdomains".
 3. Not configured or not registered → 400 "Invalid subdomain".
 4. Attach the school name to the context.
*/
func (resolver *TenantResolver) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		subdomains := Subdomains(request.Host, resolver.offset)

		// 1. Cardinality
		switch {
		case len(subdomains) == 0:
			resolver.reject(writer, request, metrics.TenantNoSubdomain, msgNoSubdomain)
			return
		case len(subdomains) > 1:
			resolver.reject(writer, request, metrics.TenantTooMany, msgTooManySubdomains)
			return
		}

		// 2. Configured tenants
		name := subdomains[0]
		if _, ok := resolver.known[name]; !ok {
			resolver.reject(writer, request, metrics.TenantInvalid, msgInvalidSubdomain)
			return
		}

		// 3. Registered tenants
		if _, err := resolver.schools.FindByName(ctx, name); err != nil {
			switch {
			case ctx.Err() != nil:
				resolver.metrics.TenantResolution(metrics.TenantError)
			case dberr.IsNotFound(err):
				resolver.reject(writer, request, metrics.TenantInvalid, msgInvalidSubdomain)
			default:
				resolver.metrics.TenantResolution(metrics.TenantError)
				respond.Error(writer, request, apperr.Internal(err))
			}
			return
		}

		// 4. Attach
		resolver.metrics.TenantResolution(metrics.TenantResolved)
		next.ServeHTTP(writer, request.WithContext(ctxutil.WithSchool(ctx, name)))
	})
}

func (resolver *TenantResolver) reject(writer http.ResponseWriter, request *http.Request, outcome, message string) {
	resolver.metrics.TenantResolution(outcome)
	ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "tenant_rejected",
		slog.String("host", request.Host),
		slog.String("outcome", outcome),
	)
	respond.Error(writer, request, apperr.BadRequest(message))
}

// # Host Parsing

/*
Subdomains returns the labels of host left of its last offset labels, nearest
first. The port, if any, is ignored.

Example:

	Subdomains("lincoln.clubcompass.app:443", 2) // ["lincoln"]
	Subdomains("a.b.clubcompass.app", 2)         // ["b", "a"]
	Subdomains("clubcompass.app", 2)             // []
*/
func Subdomains(host string, offset int) []string {
	labels := hostLabels(host)
	if net.ParseIP(hostWithoutPort(host)) != nil || len(labels) <= offset {
		return nil
	}

	labels = labels[:len(labels)-offset]
	subdomains := make([]string, 0, len(labels))
	for i := len(labels) - 1; i >= 0; i-- {
		subdomains = append(subdomains, labels[i])
	}
	return subdomains
}

func hostLabels(host string) []string {
	host = strings.Trim(strings.ToLower(hostWithoutPort(host)), ".")
	if host == "" {
		return nil
	}
	return strings.Split(host, ".")
}

func hostWithoutPort(host string) string {
	if stripped, _, err := net.SplitHostPort(host); err == nil {
		return stripped
	}
	return host
}
