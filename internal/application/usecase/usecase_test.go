package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/graha-hub/internal/application/auth"
	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/application/panel"
	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/application/session"
	"github.com/jhoicas/graha-hub/internal/application/usecase"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
	"github.com/jhoicas/graha-hub/pkg/jwt"
)

const testSecret = "secret-de-prueba"

var wib = time.FixedZone("WIB", 7*3600)

// ─── fakes ────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu      sync.Mutex
	themes  map[string]entity.Theme
	failGet bool
	failSet bool
}

func newFakeStore() *fakeStore { return &fakeStore{themes: map[string]entity.Theme{}} }

func (f *fakeStore) GetTheme(_ context.Context, id string) (entity.Theme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return "", errors.New("conexión rechazada")
	}
	t, ok := f.themes[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return t, nil
}

func (f *fakeStore) SetTheme(_ context.Context, id string, t entity.Theme) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return errors.New("conexión rechazada")
	}
	f.themes[id] = t
	return nil
}

func (f *fakeStore) Ping(context.Context) error { return nil }

type fakePublisher struct {
	mu     sync.Mutex
	events []ports.AttendanceEvent
	err    error
}

func (f *fakePublisher) PublishAttendance(_ context.Context, ev ports.AttendanceEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

type fakeExporter struct {
	got ports.HistoryReport
}

func (f *fakeExporter) Export(_ context.Context, r ports.HistoryReport) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}
func (f *fakeExporter) ContentType() string { return "application/pdf" }
func (f *fakeExporter) Extension() string   { return "pdf" }

type fixture struct {
	store    *fakeStore
	registry *session.Registry
	prefs    *usecase.PreferenceUseCase
	sessions *usecase.SessionUseCase
	now      time.Time
}

func immediate(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	f := &fixture{store: newFakeStore(), now: now}
	f.registry = session.NewRegistry(session.Options{
		Login:    auth.Config{After: immediate},
		Location: wib,
		Now:      func() time.Time { return f.now },
	}, time.Hour, nil, nil)
	f.prefs = usecase.NewPreferenceUseCase(f.store, nil)
	f.sessions = usecase.NewSessionUseCase(f.registry, f.prefs, usecase.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}, nil, nil)
	t.Cleanup(f.registry.CloseAll)
	return f
}

func (f *fixture) login(t *testing.T, role entity.Role) *session.Session {
	t.Helper()
	resp, err := f.sessions.Open(context.Background(), dto.OpenSessionRequest{DeviceID: "dev-1"})
	require.NoError(t, err)
	s, err := f.sessions.Resolve(resp.SessionID)
	require.NoError(t, err)
	_, err = f.sessions.Login(context.Background(), s, dto.LoginRequest{Username: "budi", Password: "rahasia", Role: string(role)}, true)
	require.NoError(t, err)
	return s
}

// ─── sesión ───────────────────────────────────────────────────────────────────

func TestSessionUseCase_OpenCargaTemaYToken(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	f.store.themes["dev-9"] = entity.ThemeDark

	resp, err := f.sessions.Open(context.Background(), dto.OpenSessionRequest{DeviceID: "dev-9"})
	require.NoError(t, err)
	assert.Equal(t, "dark", resp.Theme)
	assert.Equal(t, "dev-9", resp.DeviceID)
	assert.False(t, resp.Auth.IsAuthenticated)
	assert.Equal(t, "Ringkasan", resp.ActiveTab)
	assert.Nil(t, resp.Attendance)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, claims.SessionID)
	assert.Empty(t, claims.UserID)
}

func TestSessionUseCase_OpenSinDispositivoGeneraUno(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	resp, err := f.sessions.Open(context.Background(), dto.OpenSessionRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.DeviceID)
	assert.Equal(t, "light", resp.Theme)
}

func TestSessionUseCase_LoginEsperando(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	open, err := f.sessions.Open(context.Background(), dto.OpenSessionRequest{DeviceID: "d"})
	require.NoError(t, err)
	s, err := f.sessions.Resolve(open.SessionID)
	require.NoError(t, err)

	resp, err := f.sessions.Login(context.Background(), s, dto.LoginRequest{Username: "budi", Password: "1234", Role: "ADMIN_PACKING"}, true)
	require.NoError(t, err)
	require.NotNil(t, resp.Auth.User)
	assert.Equal(t, "Tim Operasional Packing", resp.Auth.User.FullName)
	assert.Equal(t, "PACKING", resp.Auth.User.Department)
	require.NotNil(t, resp.Attendance)
	assert.Equal(t, "BELUM_ABSEN", resp.Attendance.Status)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN_PACKING", claims.Role)
	assert.Equal(t, resp.Auth.User.ID, claims.UserID)
}

func TestSessionUseCase_LoginErrores(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	open, err := f.sessions.Open(context.Background(), dto.OpenSessionRequest{DeviceID: "d"})
	require.NoError(t, err)
	s, err := f.sessions.Resolve(open.SessionID)
	require.NoError(t, err)

	_, err = f.sessions.Login(context.Background(), s, dto.LoginRequest{Username: "budi", Password: "1234"}, true)
	assert.ErrorIs(t, err, domain.ErrRoleNotSelected)

	_, err = f.sessions.Login(context.Background(), s, dto.LoginRequest{Username: "budi", Password: "1234", Role: "OWNER"}, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.sessions.Login(context.Background(), s, dto.LoginRequest{Username: "budi", Password: "12", Role: "SUPERADMIN"}, true)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	st := f.sessions.State(s)
	require.NotNil(t, st.Auth.Error)
	assert.Equal(t, "Kredensial tidak valid (Minimal 4 karakter).", *st.Auth.Error)
}

func TestSessionUseCase_LoginAsincrono(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	open, err := f.sessions.Open(context.Background(), dto.OpenSessionRequest{DeviceID: "d"})
	require.NoError(t, err)
	s, err := f.sessions.Resolve(open.SessionID)
	require.NoError(t, err)

	_, err = f.sessions.Login(context.Background(), s, dto.LoginRequest{Username: "budi", Password: "1234", Role: "ADMIN_KONTEN"}, false)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return f.sessions.State(s).Auth.IsAuthenticated
	}, time.Second, 5*time.Millisecond)
}

func TestSessionUseCase_LogoutEmiteTokenAnonimo(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	s := f.login(t, entity.RoleSuperAdmin)

	resp, err := f.sessions.Logout(s)
	require.NoError(t, err)
	assert.False(t, resp.Auth.IsAuthenticated)
	assert.Nil(t, resp.Auth.User)
	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)

	require.NoError(t, f.sessions.Close(s))
	_, err = f.sessions.Resolve(s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionUseCase_Roles(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	roles := f.sessions.Roles()
	require.Len(t, roles, 5)
	assert.Equal(t, dto.RoleOption{Value: "ADMIN_PACKING", Label: "Admin Packing"}, roles[1])
}

// ─── preferencias ─────────────────────────────────────────────────────────────

func TestPreferenceUseCase_LoadFallaUsaClaro(t *testing.T) {
	f := newFixture(t, time.Now())
	f.store.failGet = true
	assert.Equal(t, entity.ThemeLight, f.prefs.Load(context.Background(), "x"))
}

func TestPreferenceUseCase_TogglePersiste(t *testing.T) {
	f := newFixture(t, time.Now())
	s := f.login(t, entity.RoleAdminKonten)

	resp, err := f.prefs.Toggle(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "dark", resp.Theme)
	assert.Equal(t, entity.ThemeDark, f.store.themes["dev-1"])

	// Una sesión nueva del mismo dispositivo arranca en oscuro.
	open, err := f.sessions.Open(context.Background(), dto.OpenSessionRequest{DeviceID: "dev-1"})
	require.NoError(t, err)
	assert.Equal(t, "dark", open.Theme)
}

func TestPreferenceUseCase_FalloDeEscrituraMantieneCambio(t *testing.T) {
	f := newFixture(t, time.Now())
	s := f.login(t, entity.RoleAdminKonten)
	f.store.failSet = true

	resp, err := f.prefs.Toggle(context.Background(), s)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, "dark", resp.Theme)
	assert.Equal(t, entity.ThemeDark, s.Theme())
}

func TestPreferenceUseCase_SetInvalido(t *testing.T) {
	f := newFixture(t, time.Now())
	s := f.login(t, entity.RoleAdminKonten)
	_, err := f.prefs.Set(context.Background(), s, "sepia")
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)

	resp, err := f.prefs.Set(context.Background(), s, "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", resp.Theme)
}

// ─── navegación ───────────────────────────────────────────────────────────────

func TestNavigationUseCase_VistasYGuarda(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	s := f.login(t, entity.RoleAdminMarketplace)
	nav := usecase.NewNavigationUseCase(panel.NewBuilder())

	views, err := nav.Views(s)
	require.NoError(t, err)
	require.Len(t, views.Views, 4)
	assert.Equal(t, "Ringkasan", views.Views[0].ID)
	assert.Equal(t, "Chat Pelanggan", views.Views[3].Label)

	_, err = nav.SelectTab(s, "NoExiste")
	assert.ErrorIs(t, err, domain.ErrInvalidView)

	tab, err := nav.SelectTab(s, "Pengaturan")
	require.NoError(t, err)
	assert.True(t, tab.Redirected)
	assert.Equal(t, "Ringkasan", tab.Active)

	tab, err = nav.SelectTab(s, "Toko")
	require.NoError(t, err)
	assert.False(t, tab.Redirected)
	assert.Equal(t, "Toko", tab.Active)
}

func TestNavigationUseCase_PanelAbsensiIncluyeHistorial(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	s := f.login(t, entity.RoleSuperAdmin)
	nav := usecase.NewNavigationUseCase(panel.NewBuilder())

	_, err := nav.SelectTab(s, "Absensi")
	require.NoError(t, err)
	p, err := nav.Panel(s)
	require.NoError(t, err)
	assert.Equal(t, dto.PanelKindAttendance, p.Kind)
	assert.Len(t, p.History, 3)
}

func TestNavigationUseCase_SinIdentidad(t *testing.T) {
	f := newFixture(t, time.Now())
	open, err := f.sessions.Open(context.Background(), dto.OpenSessionRequest{})
	require.NoError(t, err)
	s, err := f.sessions.Resolve(open.SessionID)
	require.NoError(t, err)
	nav := usecase.NewNavigationUseCase(panel.NewBuilder())

	_, err = nav.Views(s)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = nav.Panel(s)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ─── asistencia ───────────────────────────────────────────────────────────────

func TestAttendanceUseCase_CheckInPublicaEvento(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 31, 0, 0, wib))
	s := f.login(t, entity.RoleAdminPacking)
	pub := &fakePublisher{}
	uc := usecase.NewAttendanceUseCase(pub, nil, nil)

	resp, err := uc.CheckIn(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "TERLAMBAT", resp.Status)
	assert.Equal(t, "amber", resp.Color)

	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, ports.EventCheckedIn, ev.Type)
	assert.Equal(t, "08:31", ev.Time)
	assert.Equal(t, "TERLAMBAT", ev.Status)
	assert.Equal(t, "ADMIN_PACKING", ev.Role)

	_, err = uc.CheckIn(context.Background(), s)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	assert.Len(t, pub.events, 1)
}

func TestAttendanceUseCase_FalloDelBrokerNoSeExpone(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 8, 0, 0, 0, wib))
	s := f.login(t, entity.RoleAdminPacking)
	pub := &fakePublisher{err: errors.New("broker caído")}
	uc := usecase.NewAttendanceUseCase(pub, nil, nil)

	resp, err := uc.CheckIn(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "HADIR", resp.Status)

	f.now = time.Date(2025, 5, 20, 17, 0, 0, 0, wib)
	resp, err = uc.CheckOut(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "HADIR", resp.Status)
	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "17:00", *resp.CheckOutTime)
	assert.Len(t, pub.events, 2)
}

func TestAttendanceUseCase_CheckOutSinEntrada(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 20, 17, 0, 0, 0, wib))
	s := f.login(t, entity.RoleAdminPacking)
	uc := usecase.NewAttendanceUseCase(nil, nil, nil)

	_, err := uc.CheckOut(context.Background(), s)
	assert.ErrorIs(t, err, domain.ErrNotCheckedIn)
}

func TestAttendanceUseCase_HistorialFiltrado(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 21, 8, 0, 0, 0, wib))
	s := f.login(t, entity.RoleAdminKonten)
	uc := usecase.NewAttendanceUseCase(nil, nil, nil)

	h, err := uc.History(s)
	require.NoError(t, err)
	require.Equal(t, 1, h.Total)
	assert.Equal(t, s.User().ID, h.Records[0].UserID)
}

func TestAttendanceUseCase_Export(t *testing.T) {
	f := newFixture(t, time.Date(2025, 5, 21, 9, 0, 0, 0, wib))
	s := f.login(t, entity.RoleSuperAdmin)
	exp := &fakeExporter{}
	uc := usecase.NewAttendanceUseCase(nil, nil, nil, exp)

	_, err := uc.Export(context.Background(), s, "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	res, err := uc.Export(context.Background(), s, "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.Equal(t, "riwayat-absensi-20250521.pdf", res.Filename)
	assert.Len(t, exp.got.Records, 3)
	assert.Equal(t, "Super Admin Elite", exp.got.GeneratedBy)
}
