package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/attendance"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

var wib = time.FixedZone("WIB", 7*3600)

func at(h, m int) time.Time {
	return time.Date(2025, 5, 20, h, m, 0, 0, wib)
}

func TestIsLate_Frontera(t *testing.T) {
	cases := []struct {
		h, m int
		late bool
	}{
		{7, 59, false},
		{8, 0, false},
		{8, 30, false},
		{8, 31, true},
		{8, 59, true},
		{9, 0, true},
		{9, 15, true},
		{13, 0, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.late, attendance.IsLate(at(tc.h, tc.m)), "%02d:%02d", tc.h, tc.m)
	}
}

func TestIsLate_SegundosNoCuentan(t *testing.T) {
	assert.False(t, attendance.IsLate(time.Date(2025, 5, 20, 8, 30, 59, 0, wib)))
}

func TestTracker_CheckInPuntual(t *testing.T) {
	tr := attendance.NewTracker(wib)
	s, err := tr.CheckIn(at(8, 10))
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePresent, s.Status)
	require.NotNil(t, s.CheckInTime)
	assert.Equal(t, "08:10", *s.CheckInTime)
	assert.Nil(t, s.CheckOutTime)
	assert.Equal(t, "2025-05-20", s.Date)
}

func TestTracker_CheckInTarde(t *testing.T) {
	tr := attendance.NewTracker(wib)
	s, err := tr.CheckIn(at(9, 15))
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, s.Status)
	assert.Equal(t, "09:15", *s.CheckInTime)
}

func TestTracker_CheckInConvierteZonaHoraria(t *testing.T) {
	tr := attendance.NewTracker(wib)
	// 01:45 UTC == 08:45 WIB
	s, err := tr.CheckIn(time.Date(2025, 5, 20, 1, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, s.Status)
	assert.Equal(t, "08:45", *s.CheckInTime)
}

func TestTracker_SegundoCheckInRechazado(t *testing.T) {
	tr := attendance.NewTracker(wib)
	_, err := tr.CheckIn(at(8, 0))
	require.NoError(t, err)

	s, err := tr.CheckIn(at(9, 0))
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	assert.Equal(t, entity.AttendancePresent, s.Status)
	assert.Equal(t, "08:00", *s.CheckInTime)
}

func TestTracker_CheckOutConservaEstado(t *testing.T) {
	tr := attendance.NewTracker(wib)
	_, err := tr.CheckOut(at(17, 0))
	assert.ErrorIs(t, err, domain.ErrNotCheckedIn)

	_, err = tr.CheckIn(at(8, 45))
	require.NoError(t, err)

	s, err := tr.CheckOut(at(17, 5))
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, s.Status)
	require.NotNil(t, s.CheckOutTime)
	assert.Equal(t, "17:05", *s.CheckOutTime)

	_, err = tr.CheckOut(at(17, 30))
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut)
}

func TestTracker_CambioDeDiaReinicia(t *testing.T) {
	tr := attendance.NewTracker(wib)
	_, err := tr.CheckIn(at(8, 0))
	require.NoError(t, err)

	next := at(8, 0).AddDate(0, 0, 1)
	s := tr.Snapshot(next)
	assert.Equal(t, entity.AttendanceNotCheckedIn, s.Status)
	assert.Equal(t, "2025-05-21", s.Date)
	assert.False(t, s.CheckedIn())

	s, err = tr.CheckIn(next.Add(45 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, s.Status)
}

func TestTracker_Reset(t *testing.T) {
	tr := attendance.NewTracker(nil)
	_, err := tr.CheckIn(at(8, 0))
	require.NoError(t, err)
	tr.Reset()
	assert.Equal(t, entity.AttendanceNotCheckedIn, tr.Snapshot(at(10, 0)).Status)
}

func TestPresentacion_TotalSobreEstados(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range entity.AttendanceStatuses() {
		assert.NotEmpty(t, attendance.Label(s))
		c := attendance.Color(s)
		assert.NotEmpty(t, c)
		seen[c] = true
	}
	assert.Len(t, seen, 5, "cada estado tiene su color")
	assert.Equal(t, "Belum Absen", attendance.Label(entity.AttendanceNotCheckedIn))
	assert.Equal(t, "emerald", attendance.Color(entity.AttendancePresent))
	assert.Equal(t, "amber", attendance.Color(entity.AttendanceLate))
}

func historySeed() []entity.AttendanceRecord {
	out := "17:00"
	return []entity.AttendanceRecord{
		{ID: "1", UserID: "u1", UserName: "Super Admin Elite", Role: entity.RoleSuperAdmin, Date: "2025-05-20", ClockIn: "08:00", ClockOut: &out, Status: entity.AttendancePresent},
		{ID: "2", UserID: "u2", UserName: "Siska Amelia", Role: entity.RoleAdminKonten, Date: "2025-05-20", ClockIn: "08:45", Status: entity.AttendanceLate},
		{ID: "3", UserID: "u3", UserName: "Riko Pratama", Role: entity.RoleAdminMarketplace, Date: "2025-05-20", ClockIn: "08:05", Status: entity.AttendancePresent},
	}
}

func TestVisibleHistory_SuperadminVeTodo(t *testing.T) {
	got := attendance.VisibleHistory(historySeed(), entity.RoleSuperAdmin, "u1")
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestVisibleHistory_OtrosSoloPropios(t *testing.T) {
	got := attendance.VisibleHistory(historySeed(), entity.RoleAdminKonten, "u2")
	require.Len(t, got, 1)
	assert.Equal(t, "Siska Amelia", got[0].UserName)
}

func TestVisibleHistory_SinCoincidenciasVacioNoNil(t *testing.T) {
	got := attendance.VisibleHistory(historySeed(), entity.RoleAdminPacking, "u9")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = attendance.VisibleHistory(nil, entity.RoleSuperAdmin, "u1")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
