package panel

import (
	"time"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/domain/attendance"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// AttendanceView arma la respuesta de asistencia para el instante visible now.
func AttendanceView(s attendance.Snapshot, now time.Time) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		Status:       string(s.Status),
		Label:        attendance.Label(s.Status),
		Color:        attendance.Color(s.Status),
		Date:         s.Date,
		CheckedIn:    s.CheckedIn(),
		CheckInTime:  s.CheckInTime,
		CheckOutTime: s.CheckOutTime,
		Clock:        now.Format("15:04:05"),
		LateNow:      attendance.IsLate(now),
		Schedule:     attendance.ScheduleLabel,
		Tolerance:    attendance.ToleranceLabel,
	}
}

// Records convierte el historial visible a filas de respuesta. Nunca devuelve nil.
func Records(rs []entity.AttendanceRecord) []dto.AttendanceRecordResponse {
	out := make([]dto.AttendanceRecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.AttendanceRecordResponse{
			ID:       r.ID,
			UserID:   r.UserID,
			UserName: r.UserName,
			Role:     string(r.Role),
			Date:     r.Date,
			ClockIn:  r.ClockIn,
			ClockOut: r.ClockOut,
			Status:   string(r.Status),
			Label:    attendance.Label(r.Status),
			Color:    attendance.Color(r.Status),
			Note:     r.Note,
		})
	}
	return out
}

// User convierte la identidad; nil si no hay.
func User(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       string(u.Role),
		RoleLabel:  u.Role.Label(),
		FullName:   u.FullName,
		Department: u.Role.Department(),
	}
}

// AuthState convierte el estado de autenticación.
func AuthState(st entity.AuthState) dto.AuthStateResponse {
	return dto.AuthStateResponse{
		User:            User(st.User),
		IsAuthenticated: st.IsAuthenticated,
		IsLoading:       st.IsLoading,
		Error:           st.Error,
	}
}
