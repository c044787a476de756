package enrich

import (
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// breaker wraps one provider with a circuit breaker so a flapping upstream
// stops eating the per-call timeout on every create.
type breaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

func newBreaker[T any](name string, logger zerolog.Logger) *breaker[T] {
	cb := gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	})
	return &breaker[T]{cb: cb}
}

func (b *breaker[T]) execute(fn func() (T, error)) (T, error) {
	return b.cb.Execute(fn)
}
