// Package breaker construye circuit breakers con la configuración común de la aplicación.
package breaker

import (
	"time"

	"github.com/sony/gobreaker"

	"github.com/jhoicas/graha-hub/pkg/logger"
)

// Nombres de los breakers por dependencia.
const (
	Postgres = "PostgreSQL-Preferences"
	Redis    = "Redis-Preferences"
	RabbitMQ = "RabbitMQ-Attendance"
)

// New crea un breaker que abre tras 3 fallos consecutivos.
// El tiempo en estado abierto depende de la dependencia protegida. log puede ser nil.
func New(name string, log *logger.Logger) *gobreaker.CircuitBreaker {
	var timeout time.Duration
	switch name {
	case Redis:
		timeout = 5 * time.Second
	case Postgres:
		timeout = 10 * time.Second
	default:
		timeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if log != nil {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("cambio de estado del circuit breaker")
			}
		},
	})
}

// Execute ejecuta fn dentro del breaker y devuelve su resultado tipado.
func Execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	out, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	v, _ := out.(T)
	return v, nil
}
