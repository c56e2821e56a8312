// Package session agrupa el estado por cliente del dashboard.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/graha-hub/internal/application/auth"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/access"
	"github.com/jhoicas/graha-hub/internal/domain/attendance"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// Options parámetros comunes a todas las sesiones.
type Options struct {
	Login        auth.Config
	Location     *time.Location
	TickInterval time.Duration
	Now          func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	return o
}

// Session estado de un cliente. Nunca se comparte entre clientes.
type Session struct {
	ID       string
	DeviceID string

	auth   *auth.Controller
	ticker *Ticker
	now    func() time.Time

	mu       sync.Mutex
	theme    entity.Theme
	tabs     *access.TabController
	tracker  *attendance.Tracker
	own      []entity.AttendanceRecord
	lastSeen time.Time
}

// New construye una sesión anónima con el tema indicado.
func New(id, deviceID string, theme entity.Theme, opts Options) *Session {
	opts = opts.withDefaults()
	if _, ok := entity.ParseTheme(string(theme)); !ok {
		theme = entity.DefaultTheme
	}
	return &Session{
		ID:       id,
		DeviceID: deviceID,
		auth:     auth.NewController(opts.Login),
		ticker:   NewTicker(opts.TickInterval, opts.Now),
		now:      opts.Now,
		theme:    theme,
		tabs:     access.NewTabController(),
		tracker:  attendance.NewTracker(opts.Location),
		lastSeen: opts.Now(),
	}
}

// Auth controlador de autenticación de la sesión.
func (s *Session) Auth() *auth.Controller { return s.auth }

// User identidad autenticada o nil.
func (s *Session) User() *entity.User { return s.auth.User() }

// Login delega en el controlador de autenticación. Con una identidad activa
// devuelve domain.ErrAlreadyLoggedIn: para cambiar de identidad hay que pasar por Logout.
func (s *Session) Login(ctx context.Context, in auth.LoginInput) (*auth.LoginTask, error) {
	return s.auth.Login(ctx, in)
}

// Logout vuelve la sesión al estado anónimo y detiene el reloj.
func (s *Session) Logout() {
	s.auth.Logout()
	s.ticker.Stop()
	s.mu.Lock()
	s.tabs.Reset()
	s.tracker.Reset()
	s.own = nil
	s.mu.Unlock()
}

// Close libera los recursos de la sesión.
func (s *Session) Close() {
	s.Logout()
}

// Touch marca actividad del cliente.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()
}

// LastSeen última actividad registrada.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Now instante visible: el último tick mientras el reloj corre, si no el reloj del sistema.
func (s *Session) Now() time.Time {
	if t, ok := s.ticker.Last(); ok {
		return t
	}
	return s.now()
}

// ClockRunning informa si el reloj de asistencia está activo.
func (s *Session) ClockRunning() bool { return s.ticker.Running() }

// Theme tema vigente.
func (s *Session) Theme() entity.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme fija el tema de la sesión.
func (s *Session) SetTheme(t entity.Theme) {
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
}

// ToggleTheme alterna el tema y devuelve el nuevo valor.
func (s *Session) ToggleTheme() entity.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	return s.theme
}

// ActiveTab pestaña vigente tras aplicar la guarda del rol.
// Sin identidad devuelve la vista por defecto.
func (s *Session) ActiveTab() entity.ViewID {
	u := s.User()
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		return entity.DefaultView
	}
	v, _ := s.tabs.Active(u.Role)
	return v
}

// SelectTab fija la pestaña, aplica la guarda y ajusta el reloj según la vista resultante.
func (s *Session) SelectTab(v entity.ViewID) (entity.ViewID, error) {
	u := s.User()
	if u == nil {
		return entity.DefaultView, domain.ErrUnauthorized
	}
	s.mu.Lock()
	s.tabs.Select(v)
	active, _ := s.tabs.Active(u.Role)
	s.mu.Unlock()

	if active == entity.ViewAttendance {
		s.ticker.Start()
	} else {
		s.ticker.Stop()
	}
	return active, nil
}

// Attendance estado de asistencia visible ahora.
func (s *Session) Attendance() attendance.Snapshot {
	now := s.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Snapshot(now)
}

// Location zona horaria de la oficina.
func (s *Session) Location() *time.Location {
	return s.tracker.Location()
}

// CheckIn registra la entrada de la identidad y agrega su fila al historial.
// Lee el reloj en el momento de la acción, no el último tick visible.
func (s *Session) CheckIn() (attendance.Snapshot, error) {
	u := s.User()
	if u == nil {
		return attendance.Snapshot{}, domain.ErrUnauthorized
	}
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.tracker.CheckIn(now)
	if err != nil {
		return snap, err
	}
	rec := entity.AttendanceRecord{
		ID:       uuid.New().String(),
		UserID:   u.ID,
		UserName: u.FullName,
		Role:     u.Role,
		Date:     snap.Date,
		ClockIn:  *snap.CheckInTime,
		Status:   snap.Status,
	}
	s.own = append([]entity.AttendanceRecord{rec}, s.own...)
	return snap, nil
}

// CheckOut registra la salida y la refleja en la fila del día.
func (s *Session) CheckOut() (attendance.Snapshot, error) {
	if s.User() == nil {
		return attendance.Snapshot{}, domain.ErrUnauthorized
	}
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.tracker.CheckOut(now)
	if err != nil {
		return snap, err
	}
	for i := range s.own {
		if s.own[i].Date == snap.Date && s.own[i].ClockOut == nil {
			out := *snap.CheckOutTime
			s.own[i].ClockOut = &out
			break
		}
	}
	return snap, nil
}

// History historial visible para la identidad: registros propios de la sesión
// (más recientes primero) seguidos de las filas de demostración, filtrados por rol.
func (s *Session) History() ([]entity.AttendanceRecord, error) {
	u := s.User()
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	s.mu.Lock()
	all := make([]entity.AttendanceRecord, 0, len(s.own)+3)
	all = append(all, s.own...)
	s.mu.Unlock()
	all = append(all, seedHistory(u)...)
	return attendance.VisibleHistory(all, u.Role, u.ID), nil
}
