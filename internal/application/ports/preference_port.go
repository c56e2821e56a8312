package ports

import (
	"context"

	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// PreferenceStore define el puerto de persistencia del tema por dispositivo.
// Las implementaciones devuelven domain.ErrNotFound cuando el dispositivo no tiene preferencia guardada.
type PreferenceStore interface {
	GetTheme(ctx context.Context, deviceID string) (entity.Theme, error)
	SetTheme(ctx context.Context, deviceID string, theme entity.Theme) error
	// Ping verifica la conectividad del backend (readiness).
	Ping(ctx context.Context) error
}
