// Package metrics defines and registers all custom Prometheus metrics for
// the election API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "election"

// VotesCastTotal counts ballots committed successfully.
var VotesCastTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_cast_total",
		Help:      "Total number of ballots recorded successfully.",
	},
)

// VotesRejectedTotal counts vote attempts that failed a business rule.
// Label:
//   - reason: "forbidden", "window_not_configured", "voting_not_active",
//     "candidate_not_found", or "already_voted"
var VotesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_rejected_total",
		Help:      "Total number of vote attempts rejected, labelled by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// CandidatesAddedTotal counts candidates registered by administrators.
var CandidatesAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_added_total",
		Help:      "Total number of candidates added.",
	},
)
