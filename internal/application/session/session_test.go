package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/graha-hub/internal/application/auth"
	"github.com/jhoicas/graha-hub/internal/application/session"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

var wib = time.FixedZone("WIB", 7*3600)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func immediate(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func testOptions(c *clock) session.Options {
	return session.Options{
		Login:        auth.Config{After: immediate},
		Location:     wib,
		TickInterval: 10 * time.Millisecond,
		Now:          c.Now,
	}
}

func login(t *testing.T, s *session.Session, id string, role entity.Role) {
	t.Helper()
	task, err := s.Login(context.Background(), auth.LoginInput{Identifier: id, Secret: "rahasia", Role: role})
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = task.Wait(ctx)
	require.NoError(t, err)
}

func loggedIn(t *testing.T, role entity.Role, c *clock) *session.Session {
	t.Helper()
	s := session.New("s1", "dev-1", entity.ThemeLight, testOptions(c))
	login(t, s, "budi", role)
	t.Cleanup(s.Close)
	return s
}

func TestSession_TemaInvalidoUsaPorDefecto(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 20, 8, 0, 0, 0, wib)}
	s := session.New("s1", "dev", entity.Theme("sepia"), testOptions(c))
	assert.Equal(t, entity.ThemeLight, s.Theme())
	assert.Equal(t, entity.ThemeDark, s.ToggleTheme())
	assert.Equal(t, entity.ThemeDark, s.Theme())
}

func TestSession_GuardaDeVista(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 20, 8, 0, 0, 0, wib)}
	s := loggedIn(t, entity.RoleAdminPacking, c)

	v, err := s.SelectTab(entity.ViewInventory)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewOverview, v)
	assert.Equal(t, entity.ViewOverview, s.ActiveTab())

	v, err = s.SelectTab(entity.ViewPackingQueue)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewPackingQueue, v)

	// Seleccionar la misma vista dos veces equivale a una.
	v2, err := s.SelectTab(entity.ViewPackingQueue)
	require.NoError(t, err)
	assert.Equal(t, v, v2)
}

func TestSession_SelectTabSinIdentidad(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 20, 8, 0, 0, 0, wib)}
	s := session.New("s1", "dev", entity.ThemeLight, testOptions(c))
	_, err := s.SelectTab(entity.ViewAttendance)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, entity.DefaultView, s.ActiveTab())
}

func TestSession_RelojSoloEnAbsensi(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 20, 8, 0, 0, 0, wib)}
	s := loggedIn(t, entity.RoleAdminKonten, c)
	assert.False(t, s.ClockRunning())

	_, err := s.SelectTab(entity.ViewAttendance)
	require.NoError(t, err)
	assert.True(t, s.ClockRunning())

	_, err = s.SelectTab(entity.ViewContentAssets)
	require.NoError(t, err)
	assert.False(t, s.ClockRunning())

	_, err = s.SelectTab(entity.ViewAttendance)
	require.NoError(t, err)
	assert.True(t, s.ClockRunning(), "se puede reiniciar")

	s.Logout()
	assert.False(t, s.ClockRunning())
}

func TestSession_CheckInTardeYCheckOut(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 21, 8, 45, 0, 0, wib)}
	s := loggedIn(t, entity.RoleAdminPacking, c)

	snap, err := s.CheckIn()
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, snap.Status)
	assert.Equal(t, "08:45", *snap.CheckInTime)

	_, err = s.CheckIn()
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)

	c.Set(time.Date(2025, 5, 21, 17, 10, 0, 0, wib))
	snap, err = s.CheckOut()
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, snap.Status)
	assert.Equal(t, "17:10", *snap.CheckOutTime)

	hist, err := s.History()
	require.NoError(t, err)
	require.Len(t, hist, 2, "fila nueva más la fila de demostración propia")
	assert.Equal(t, "2025-05-21", hist[0].Date)
	require.NotNil(t, hist[0].ClockOut)
	assert.Equal(t, "17:10", *hist[0].ClockOut)
	assert.Equal(t, "Tim Operasional Packing", hist[0].UserName)
	assert.Equal(t, "2025-05-20", hist[1].Date)
}

func TestSession_CheckInLeeRelojActualNoElTick(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 21, 8, 30, 59, 0, wib)}
	opts := testOptions(c)
	opts.TickInterval = time.Hour
	s := session.New("s1", "dev-1", entity.ThemeLight, opts)
	t.Cleanup(s.Close)
	login(t, s, "budi", entity.RoleAdminKonten)

	_, err := s.SelectTab(entity.ViewAttendance)
	require.NoError(t, err)
	require.True(t, s.ClockRunning())

	c.Set(time.Date(2025, 5, 21, 8, 31, 0, 0, wib))
	snap, err := s.CheckIn()
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, snap.Status)
	assert.Equal(t, "08:31", *snap.CheckInTime)

	c.Set(time.Date(2025, 5, 21, 17, 0, 0, 0, wib))
	snap, err = s.CheckOut()
	require.NoError(t, err)
	assert.Equal(t, "17:00", *snap.CheckOutTime)
}

func TestSession_LoginConIdentidadActivaNoHeredaAsistencia(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 21, 9, 15, 0, 0, wib)}
	s := loggedIn(t, entity.RoleSuperAdmin, c)
	admin := s.User()
	_, err := s.SelectTab(entity.ViewAttendance)
	require.NoError(t, err)
	_, err = s.CheckIn()
	require.NoError(t, err)

	// Otro rol sin logout previo: se rechaza y nada cambia.
	_, err = s.Login(context.Background(), auth.LoginInput{Identifier: "siti", Secret: "rahasia", Role: entity.RoleAdminKonten})
	assert.ErrorIs(t, err, domain.ErrAlreadyLoggedIn)
	// Envío sin rol con identidad activa: tampoco borra la identidad.
	_, err = s.Login(context.Background(), auth.LoginInput{Identifier: "siti", Secret: "rahasia"})
	assert.ErrorIs(t, err, domain.ErrAlreadyLoggedIn)

	assert.Same(t, admin, s.User())
	assert.True(t, s.Auth().State().IsAuthenticated)
	assert.True(t, s.ClockRunning())
	assert.Equal(t, entity.AttendanceLate, s.Attendance().Status)

	s.Logout()
	login(t, s, "siti", entity.RoleAdminKonten)

	assert.Equal(t, entity.AttendanceNotCheckedIn, s.Attendance().Status)
	assert.False(t, s.ClockRunning())
	snap, err := s.CheckIn()
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, snap.Status)

	hist, err := s.History()
	require.NoError(t, err)
	for _, r := range hist {
		assert.NotEqual(t, admin.ID, r.UserID)
		assert.Equal(t, entity.RoleAdminKonten, r.Role)
	}
}

func TestSession_HistorialSuperadmin(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 21, 8, 0, 0, 0, wib)}
	s := loggedIn(t, entity.RoleSuperAdmin, c)

	hist, err := s.History()
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, "Super Admin Elite", hist[0].UserName)
	assert.Equal(t, "Siska Amelia", hist[1].UserName)
	assert.Equal(t, "Riko Pratama", hist[2].UserName)

	_, err = s.CheckIn()
	require.NoError(t, err)
	hist, err = s.History()
	require.NoError(t, err)
	assert.Len(t, hist, 4)
	assert.Equal(t, entity.AttendancePresent, hist[0].Status)
}

func TestSession_LogoutReinicia(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 21, 8, 0, 0, 0, wib)}
	s := loggedIn(t, entity.RoleSuperAdmin, c)
	_, err := s.SelectTab(entity.ViewAttendance)
	require.NoError(t, err)
	_, err = s.CheckIn()
	require.NoError(t, err)

	s.Logout()

	assert.Nil(t, s.User())
	assert.Equal(t, entity.Anonymous(), s.Auth().State())
	assert.Equal(t, entity.DefaultView, s.ActiveTab())
	assert.Equal(t, entity.AttendanceNotCheckedIn, s.Attendance().Status)
	assert.False(t, s.ClockRunning())

	_, err = s.History()
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTicker_StartStop(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 20, 9, 0, 0, 0, wib)}
	tk := session.NewTicker(5*time.Millisecond, c.Now)

	_, ok := tk.Last()
	assert.False(t, ok)

	tk.Start()
	tk.Start()
	last, ok := tk.Last()
	require.True(t, ok)
	assert.Equal(t, c.Now(), last)

	later := c.Now().Add(time.Second)
	c.Set(later)
	assert.Eventually(t, func() bool {
		l, _ := tk.Last()
		return l.Equal(later)
	}, time.Second, 5*time.Millisecond)

	tk.Stop()
	tk.Stop()
	assert.False(t, tk.Running())
}

func TestRegistry_AbrirObtenerCerrar(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 20, 9, 0, 0, 0, wib)}
	r := session.NewRegistry(testOptions(c), time.Hour, nil, nil)

	s := r.Open("dev-1", entity.ThemeDark)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, entity.ThemeDark, s.Theme())

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	other := r.Open("dev-1", entity.ThemeLight)
	assert.NotEqual(t, s.ID, other.ID, "cada cliente tiene su propia sesión")

	require.NoError(t, r.Close(s.ID))
	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, r.Close(s.ID), domain.ErrSessionNotFound)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SweepDescartaInactivas(t *testing.T) {
	c := &clock{t: time.Date(2025, 5, 20, 9, 0, 0, 0, wib)}
	r := session.NewRegistry(testOptions(c), 30*time.Minute, nil, nil)

	old := r.Open("dev-1", entity.ThemeLight)
	c.Set(c.Now().Add(20 * time.Minute))
	fresh := r.Open("dev-2", entity.ThemeLight)

	n := r.Sweep(c.Now().Add(15 * time.Minute))
	assert.Equal(t, 1, n)

	_, err := r.Get(old.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = r.Get(fresh.ID)
	assert.NoError(t, err)
}
