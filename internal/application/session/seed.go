package session

import (
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// seedDate fecha de las filas de demostración del historial.
const seedDate = "2025-05-20"

// seedHistory filas de demostración visibles junto a los registros propios de la sesión.
// La primera fila pertenece a la identidad autenticada; las otras dos a compañeros ficticios.
func seedHistory(u *entity.User) []entity.AttendanceRecord {
	out := func(s string) *string { return &s }
	return []entity.AttendanceRecord{
		{
			ID: "1", UserID: u.ID, UserName: u.FullName, Role: u.Role, Date: seedDate,
			ClockIn: "08:00", ClockOut: out("17:00"), Status: entity.AttendancePresent,
		},
		{
			ID: "2", UserID: "u2", UserName: "Siska Amelia", Role: entity.RoleAdminKonten, Date: seedDate,
			ClockIn: "08:45", ClockOut: out("17:15"), Status: entity.AttendanceLate,
		},
		{
			ID: "3", UserID: "u3", UserName: "Riko Pratama", Role: entity.RoleAdminMarketplace, Date: seedDate,
			ClockIn: "08:05", ClockOut: out("17:00"), Status: entity.AttendancePresent,
		},
	}
}
