// Package metrics defines and registers all custom Prometheus metrics for the
// blog API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at init time;
// HTTP-level metrics come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// EntitiesCreatedTotal counts successfully created entities.
// Label:
//   - entity: "user", "post", or "comment"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by entity type.",
	},
	[]string{"entity"},
)

// EntitiesDeletedTotal counts successfully deleted entities.
// Label:
//   - entity: "user", "post", or "comment"
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of entities deleted, by entity type.",
	},
	[]string{"entity"},
)

// ValidationRejectionsTotal counts mutations rejected by the business-rule layer.
// Label:
//   - reason: "email_conflict", "invalid_age", "user_not_found", "post_not_found"
var ValidationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Total number of create/update requests rejected by validation, by reason.",
	},
	[]string{"reason"},
)

// IdempotentReplaysTotal counts creates short-circuited by a known Idempotency-Key.
// Label:
//   - entity: "user", "post", or "comment"
var IdempotentReplaysTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests answered from a previously seen Idempotency-Key.",
	},
	[]string{"entity"},
)

// SeedRunsTotal counts executions of the sample-data seeder (startup or admin reset).
var SeedRunsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Total number of sample-data seed runs.",
	},
)
