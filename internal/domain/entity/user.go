package entity

import "fmt"

// EmailDomain dominio con el que se sintetiza el email de la identidad.
const EmailDomain = "grahaorganik.com"

// User identidad autenticada de la sesión actual.
// Se crea al completar el login y se descarta en el logout.
type User struct {
	ID       string
	Username string
	Email    string
	Role     Role
	FullName string
}

// NewUser construye la identidad a partir del identificador y el rol elegido.
// El nombre completo sale de la tabla fija del rol; el email se sintetiza del identificador.
func NewUser(id, username string, role Role) *User {
	return &User{
		ID:       id,
		Username: username,
		Email:    fmt.Sprintf("%s@%s", username, EmailDomain),
		Role:     role,
		FullName: role.DisplayName(),
	}
}

// AuthState estado de autenticación observable por la capa de presentación.
// Invariante: IsAuthenticated == (User != nil). Se reemplaza completo, nunca por partes.
type AuthState struct {
	User            *User
	IsAuthenticated bool
	IsLoading       bool
	Error           *string
}

// Anonymous estado inicial: sin identidad, sin carga, sin error.
func Anonymous() AuthState {
	return AuthState{}
}

// Loading estado mientras la verificación simulada está en curso.
func Loading() AuthState {
	return AuthState{IsLoading: true}
}

// Authenticated estado tras un login exitoso.
func Authenticated(u *User) AuthState {
	return AuthState{User: u, IsAuthenticated: true}
}

// Failed estado tras un login fallido (carga terminada y mensaje visible).
func Failed(msg string) AuthState {
	return AuthState{Error: &msg}
}
