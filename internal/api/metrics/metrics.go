// Package metrics defines and registers all custom Prometheus metrics for
// the jobtrack API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at package initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobtrack"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// AuthRejectionsTotal counts requests rejected by the authorization gate.
// Label:
//   - reason: "anonymous", "expired", "bad_signature", "malformed",
//     "unsupported", "unknown_subject", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected during authorization, by reason.",
	},
	[]string{"reason"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// JobsCreatedTotal counts job postings created by admins.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created.",
	},
)

// BookmarksCreatedTotal counts bookmarks successfully created.
var BookmarksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmarks_created_total",
		Help:      "Total number of bookmarks created.",
	},
)

// BookmarkConflictsTotal counts bookmark inserts rejected by the uniqueness
// constraint, including the losers of concurrent duplicate adds.
var BookmarkConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_conflicts_total",
		Help:      "Total number of bookmark creations rejected as duplicates.",
	},
)
