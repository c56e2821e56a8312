package dto

// AttendanceResponse estado de asistencia del día para el header y la vista Absensi.
// Clock es la hora visible (HH:MM:SS); LateNow indica si un check-in en ese instante sería tardío.
type AttendanceResponse struct {
	Status       string  `json:"status"`
	Label        string  `json:"label"`
	Color        string  `json:"color"`
	Date         string  `json:"date"`
	CheckedIn    bool    `json:"checked_in"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Clock        string  `json:"clock"`
	LateNow      bool    `json:"late_now"`
	Schedule     string  `json:"schedule"`
	Tolerance    string  `json:"tolerance"`
}

// AttendanceRecordResponse fila del historial.
type AttendanceRecordResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name"`
	Role     string  `json:"role"`
	Date     string  `json:"date"`
	ClockIn  string  `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
	Status   string  `json:"status"`
	Label    string  `json:"label"`
	Color    string  `json:"color"`
	Note     *string `json:"note,omitempty"`
}

// HistoryResponse historial visible para la identidad.
type HistoryResponse struct {
	Records []AttendanceRecordResponse `json:"records"`
	Total   int                        `json:"total"`
}
