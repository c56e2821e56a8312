package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/application/session"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
	"github.com/jhoicas/graha-hub/pkg/logger"
)

// PreferenceUseCase lectura y escritura del tema persistido por dispositivo.
type PreferenceUseCase struct {
	store ports.PreferenceStore
	log   *logger.Logger
}

// NewPreferenceUseCase construye el caso de uso.
func NewPreferenceUseCase(store ports.PreferenceStore, log *logger.Logger) *PreferenceUseCase {
	return &PreferenceUseCase{store: store, log: log}
}

// Load tema guardado del dispositivo. Sin preferencia o ante fallo del store devuelve el tema claro.
func (uc *PreferenceUseCase) Load(ctx context.Context, deviceID string) entity.Theme {
	t, err := uc.store.GetTheme(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && uc.log != nil {
			uc.log.Warn().Err(err).Str("device_id", deviceID).Msg("no se pudo leer el tema; se usa el predeterminado")
		}
		return entity.DefaultTheme
	}
	if _, ok := entity.ParseTheme(string(t)); !ok {
		return entity.DefaultTheme
	}
	return t
}

// Get tema vigente de la sesión.
func (uc *PreferenceUseCase) Get(s *session.Session) dto.ThemeResponse {
	return dto.ThemeResponse{Theme: string(s.Theme())}
}

// Toggle alterna el tema. El cambio en la sesión se mantiene aunque falle la persistencia.
func (uc *PreferenceUseCase) Toggle(ctx context.Context, s *session.Session) (dto.ThemeResponse, error) {
	t := s.ToggleTheme()
	return dto.ThemeResponse{Theme: string(t)}, uc.persist(ctx, s, t)
}

// Set fija el tema explícitamente.
func (uc *PreferenceUseCase) Set(ctx context.Context, s *session.Session, raw string) (dto.ThemeResponse, error) {
	t, ok := entity.ParseTheme(raw)
	if !ok {
		return uc.Get(s), domain.ErrInvalidTheme
	}
	s.SetTheme(t)
	return dto.ThemeResponse{Theme: string(t)}, uc.persist(ctx, s, t)
}

// Ready verifica el backend de preferencias.
func (uc *PreferenceUseCase) Ready(ctx context.Context) error {
	return uc.store.Ping(ctx)
}

func (uc *PreferenceUseCase) persist(ctx context.Context, s *session.Session, t entity.Theme) error {
	if err := uc.store.SetTheme(ctx, s.DeviceID, t); err != nil {
		if uc.log != nil {
			uc.log.Error().Err(err).Str("device_id", s.DeviceID).Msg("no se pudo guardar el tema")
		}
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return nil
}
