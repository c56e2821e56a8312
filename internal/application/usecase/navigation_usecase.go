package usecase

import (
	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/application/panel"
	"github.com/jhoicas/graha-hub/internal/application/session"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/access"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// NavigationUseCase menú lateral, pestaña activa y panel principal.
type NavigationUseCase struct {
	panels *panel.Builder
}

// NewNavigationUseCase construye el caso de uso.
func NewNavigationUseCase(panels *panel.Builder) *NavigationUseCase {
	return &NavigationUseCase{panels: panels}
}

// Views vistas autorizadas del rol en orden de menú.
func (uc *NavigationUseCase) Views(s *session.Session) (*dto.ViewsResponse, error) {
	u := s.User()
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	views := access.AuthorizedViews(u.Role)
	out := make([]dto.ViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.ViewResponse{ID: string(v), Label: v.Label()})
	}
	return &dto.ViewsResponse{Views: out, Active: string(s.ActiveTab())}, nil
}

// Tab pestaña activa tras la guarda.
func (uc *NavigationUseCase) Tab(s *session.Session) (*dto.TabResponse, error) {
	if s.User() == nil {
		return nil, domain.ErrUnauthorized
	}
	v := s.ActiveTab()
	return &dto.TabResponse{Active: string(v), Label: v.Label()}, nil
}

// SelectTab cambia de pestaña. Un id desconocido es ErrInvalidView; uno conocido pero no
// autorizado para el rol se redirige a la vista por defecto.
func (uc *NavigationUseCase) SelectTab(s *session.Session, raw string) (*dto.TabResponse, error) {
	v, ok := entity.ParseViewID(raw)
	if !ok {
		return nil, domain.ErrInvalidView
	}
	active, err := s.SelectTab(v)
	if err != nil {
		return nil, err
	}
	return &dto.TabResponse{Active: string(active), Label: active.Label(), Redirected: active != v}, nil
}

// Panel contenido de la pestaña activa.
func (uc *NavigationUseCase) Panel(s *session.Session) (*dto.PanelResponse, error) {
	u := s.User()
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	view := s.ActiveTab()
	in := panel.Input{
		User:       u,
		View:       view,
		Attendance: panel.AttendanceView(s.Attendance(), s.Now()),
	}
	if view == entity.ViewAttendance {
		hist, err := s.History()
		if err != nil {
			return nil, err
		}
		in.History = panel.Records(hist)
	}
	p := uc.panels.Build(in)
	return &p, nil
}
