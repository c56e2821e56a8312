package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
	"github.com/jhoicas/graha-hub/pkg/logger"
)

// DefaultIdleTimeout tiempo sin actividad tras el cual una sesión se descarta.
const DefaultIdleTimeout = 120 * time.Minute

// Registry sesiones abiertas indexadas por id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	idle     time.Duration
	metrics  ports.MetricsRecorder
	log      *logger.Logger
}

// NewRegistry construye el registro. metrics puede ser nil.
func NewRegistry(opts Options, idle time.Duration, metrics ports.MetricsRecorder, log *logger.Logger) *Registry {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &Registry{
		sessions: make(map[string]*Session),
		opts:     opts.withDefaults(),
		idle:     idle,
		metrics:  metrics,
		log:      log,
	}
}

// Open crea una sesión nueva para el dispositivo con el tema ya resuelto.
func (r *Registry) Open(deviceID string, theme entity.Theme) *Session {
	s := New(uuid.New().String(), deviceID, theme, r.opts)
	r.mu.Lock()
	r.sessions[s.ID] = s
	n := len(r.sessions)
	r.mu.Unlock()
	r.metrics.SessionsOpen(n)
	return s
}

// Get devuelve la sesión y registra actividad.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	s.Touch()
	return s, nil
}

// Close descarta la sesión y libera sus recursos.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.Close()
	r.metrics.SessionsOpen(n)
	return nil
}

// Len cantidad de sesiones abiertas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep cierra las sesiones inactivas desde antes de now-idle. Devuelve cuántas cerró.
func (r *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-r.idle)
	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		r.metrics.SessionsOpen(n)
		if r.log != nil {
			r.log.Info().Int("expired", len(expired)).Int("open", n).Msg("sesiones inactivas descartadas")
		}
	}
	return len(expired)
}

// Run ejecuta Sweep cada intervalo hasta que ctx termine.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	tk := time.NewTicker(every)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tk.C:
			r.Sweep(now)
		}
	}
}

// CloseAll descarta todas las sesiones (apagado del servidor).
func (r *Registry) CloseAll() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, s := range all {
		s.Close()
	}
	r.metrics.SessionsOpen(0)
}
