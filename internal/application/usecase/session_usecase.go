package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/graha-hub/internal/application/auth"
	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/application/panel"
	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/application/session"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
	"github.com/jhoicas/graha-hub/pkg/jwt"
	"github.com/jhoicas/graha-hub/pkg/logger"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionUseCase ciclo de vida de la sesión: apertura, login simulado, logout y cierre.
type SessionUseCase struct {
	registry *session.Registry
	prefs    *PreferenceUseCase
	jwtCfg   JWTConfig
	metrics  ports.MetricsRecorder
	log      *logger.Logger
}

// NewSessionUseCase construye el caso de uso. metrics puede ser nil.
func NewSessionUseCase(registry *session.Registry, prefs *PreferenceUseCase, jwtCfg JWTConfig, metrics ports.MetricsRecorder, log *logger.Logger) *SessionUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &SessionUseCase{registry: registry, prefs: prefs, jwtCfg: jwtCfg, metrics: metrics, log: log}
}

// Open crea una sesión anónima con el tema guardado del dispositivo y emite su token.
func (uc *SessionUseCase) Open(ctx context.Context, in dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	device := strings.TrimSpace(in.DeviceID)
	if device == "" {
		device = uuid.New().String()
	}
	theme := uc.prefs.Load(ctx, device)
	s := uc.registry.Open(device, theme)
	return uc.withToken(s)
}

// Resolve obtiene la sesión referida por el token.
func (uc *SessionUseCase) Resolve(sessionID string) (*session.Session, error) {
	return uc.registry.Get(sessionID)
}

// State estado completo de la sesión, sin token nuevo.
func (uc *SessionUseCase) State(s *session.Session) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		SessionID: s.ID,
		DeviceID:  s.DeviceID,
		Auth:      panel.AuthState(s.Auth().State()),
		Theme:     string(s.Theme()),
		ActiveTab: string(s.ActiveTab()),
	}
	if s.User() != nil {
		att := panel.AttendanceView(s.Attendance(), s.Now())
		resp.Attendance = &att
	}
	return resp
}

// Refresh estado con un token nuevo que refleja la identidad vigente.
func (uc *SessionUseCase) Refresh(s *session.Session) (*dto.SessionResponse, error) {
	return uc.withToken(s)
}

// Login ejecuta el login simulado. Con wait=false devuelve de inmediato el estado "cargando";
// con wait=true espera el resultado y emite un token nuevo.
func (uc *SessionUseCase) Login(ctx context.Context, s *session.Session, in dto.LoginRequest, wait bool) (*dto.SessionResponse, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, fmt.Errorf("%w: rol %q desconocido", domain.ErrInvalidInput, in.Role)
	}

	loginCtx := ctx
	if !wait {
		loginCtx = context.Background()
	}
	task, err := s.Login(loginCtx, auth.LoginInput{Identifier: in.Username, Secret: in.Password, Role: role})
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotSelected) {
			uc.metrics.LoginCompleted(ports.LoginOutcomeRoleNotSelected)
		}
		return nil, err
	}
	go uc.observe(s.ID, task)

	if !wait {
		return uc.State(s), nil
	}
	if _, err := task.Wait(ctx); err != nil {
		return nil, err
	}
	return uc.withToken(s)
}

// observe registra el resultado del intento cuando termina.
func (uc *SessionUseCase) observe(sessionID string, task *auth.LoginTask) {
	<-task.Done()
	u, err := task.Wait(context.Background())
	switch {
	case err == nil:
		uc.metrics.LoginCompleted(ports.LoginOutcomeSuccess)
		if uc.log != nil {
			uc.log.Info().Str("session_id", sessionID).Str("user_id", u.ID).Str("role", string(u.Role)).Msg("login completado")
		}
	case errors.Is(err, domain.ErrLoginCancelled):
		uc.metrics.LoginCompleted(ports.LoginOutcomeCancelled)
	default:
		uc.metrics.LoginCompleted(ports.LoginOutcomeInvalid)
		if uc.log != nil {
			uc.log.Debug().Str("session_id", sessionID).Err(err).Msg("login rechazado")
		}
	}
}

// CancelLogin descarta el intento en curso, si existe.
func (uc *SessionUseCase) CancelLogin(s *session.Session) *dto.SessionResponse {
	if t := s.Auth().Pending(); t != nil {
		t.Cancel()
	}
	return uc.State(s)
}

// Logout vuelve la sesión al estado anónimo. Nunca falla por estado de la sesión.
func (uc *SessionUseCase) Logout(s *session.Session) (*dto.SessionResponse, error) {
	s.Logout()
	return uc.withToken(s)
}

// Close descarta la sesión.
func (uc *SessionUseCase) Close(s *session.Session) error {
	return uc.registry.Close(s.ID)
}

// Roles opciones del selector de login.
func (uc *SessionUseCase) Roles() []dto.RoleOption {
	out := make([]dto.RoleOption, 0, len(entity.Roles()))
	for _, r := range entity.Roles() {
		out = append(out, dto.RoleOption{Value: string(r), Label: r.Label()})
	}
	return out
}

func (uc *SessionUseCase) withToken(s *session.Session) (*dto.SessionResponse, error) {
	var userID, role string
	if u := s.User(); u != nil {
		userID, role = u.ID, string(u.Role)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, s.ID, userID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("session: emitir token: %w", err)
	}
	resp := uc.State(s)
	resp.Token = token
	return resp, nil
}
