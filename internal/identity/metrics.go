package identity

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campusregistry"

var registrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "identity",
		Name:      "registrations_total",
		Help:      "Registration attempts by outcome",
	},
	[]string{"outcome"},
)

// Outcome labels; also used as error codes on the error page.
const (
	OutcomeSuccess       = "success"
	OutcomeValidation    = "validation"
	OutcomeAccountExists = "account_exists"
	OutcomePersistence   = "unavailable"
	OutcomeFailed        = "failed"
)

// Outcome returns the label describing a registration result.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrValidation):
		return OutcomeValidation
	case errors.Is(err, ErrAccountExists):
		return OutcomeAccountExists
	case errors.Is(err, ErrPersistence):
		return OutcomePersistence
	default:
		return OutcomeFailed
	}
}

func recordRegistration(err error) {
	registrationsTotal.WithLabelValues(Outcome(err)).Inc()
}
