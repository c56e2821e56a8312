// Package memory implementa adaptadores en memoria para desarrollo y tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

var _ ports.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore mapa protegido por mutex. Se pierde al reiniciar el proceso.
type PreferenceStore struct {
	mu     sync.RWMutex
	themes map[string]entity.Theme
}

// NewPreferenceStore construye el almacén vacío.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{themes: make(map[string]entity.Theme)}
}

func (s *PreferenceStore) GetTheme(_ context.Context, deviceID string) (entity.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.themes[deviceID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return t, nil
}

func (s *PreferenceStore) SetTheme(_ context.Context, deviceID string, theme entity.Theme) error {
	s.mu.Lock()
	s.themes[deviceID] = theme
	s.mu.Unlock()
	return nil
}

func (s *PreferenceStore) Ping(context.Context) error { return nil }
