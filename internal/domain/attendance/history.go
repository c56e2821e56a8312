package attendance

import "github.com/jhoicas/graha-hub/internal/domain/entity"

// VisibleHistory aplica la regla de acceso sobre datos: SUPERADMIN ve todo,
// el resto solo sus propios registros. Conserva el orden de entrada y
// nunca devuelve nil (sin registros = slice vacío).
func VisibleHistory(records []entity.AttendanceRecord, viewerRole entity.Role, viewerID string) []entity.AttendanceRecord {
	if viewerRole == entity.RoleSuperAdmin {
		out := make([]entity.AttendanceRecord, len(records))
		copy(out, records)
		return out
	}
	out := make([]entity.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.UserID == viewerID {
			out = append(out, r)
		}
	}
	return out
}
