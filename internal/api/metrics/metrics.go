// Package metrics defines and registers all custom Prometheus metrics for the
// corporate site API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "corpsite"

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// MessagesSubmittedTotal counts visitor inquiries accepted through the
// public contact form.
var MessagesSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_submitted_total",
		Help:      "Total number of visitor inquiries submitted.",
	},
)

// MessagesRepliedTotal counts inquiries answered from the admin area.
var MessagesRepliedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_replied_total",
		Help:      "Total number of inquiries replied to.",
	},
)

// PagesUpdatedTotal counts content edits.
// Label:
//   - page_key: the stable page identifier (home, about, ...)
var PagesUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_updated_total",
		Help:      "Total number of page content updates, by page key.",
	},
	[]string{"page_key"},
)

// ProductsMutatedTotal counts catalog changes.
// Label:
//   - action: "created", "updated", or "deleted"
var ProductsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_mutated_total",
		Help:      "Total number of catalog mutations, by action.",
	},
	[]string{"action"},
)
