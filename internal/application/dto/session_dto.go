package dto

// OpenSessionRequest entrada opcional al abrir sesión. Sin device_id se genera uno.
type OpenSessionRequest struct {
	DeviceID string `json:"device_id"`
}

// LoginRequest formulario de login simulado.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse identidad autenticada.
type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	RoleLabel  string `json:"role_label"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

// AuthStateResponse estado de autenticación observable.
type AuthStateResponse struct {
	User            *UserResponse `json:"user"`
	IsAuthenticated bool          `json:"is_authenticated"`
	IsLoading       bool          `json:"is_loading"`
	Error           *string       `json:"error"`
}

// SessionResponse estado completo de la sesión. Token solo viaja cuando se emite uno nuevo.
type SessionResponse struct {
	Token      string              `json:"token,omitempty"`
	SessionID  string              `json:"session_id"`
	DeviceID   string              `json:"device_id"`
	Auth       AuthStateResponse   `json:"auth"`
	Theme      string              `json:"theme"`
	ActiveTab  string              `json:"active_tab"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

// RoleOption entrada del selector de rol en el login.
type RoleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
