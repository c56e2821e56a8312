package entity

import "strings"

// Role categoría de acceso asignada a una identidad en el login.
// Es inmutable una vez asignada.
type Role string

// Roles válidos.
const (
	RoleSuperAdmin       Role = "SUPERADMIN"
	RoleAdminPacking     Role = "ADMIN_PACKING"
	RoleAdminKonten      Role = "ADMIN_KONTEN"
	RoleAdminMarketplace Role = "ADMIN_MARKETPLACE"
	// RoleStaffGudang existe en el catálogo pero hoy no tiene vistas ni nombre propios:
	// se comporta igual que un rol sin mapeo específico.
	RoleStaffGudang Role = "STAFF_GUDANG"
)

// GenericDisplayName nombre usado cuando el rol no tiene uno propio.
const GenericDisplayName = "Petugas Graha"

// Roles devuelve el catálogo completo en orden estable.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdminPacking, RoleAdminKonten, RoleAdminMarketplace, RoleStaffGudang}
}

// ParseRole convierte el tag recibido en un Role. El string vacío significa "sin seleccionar"
// y se devuelve como ("", true) para que el caso de uso decida.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	for _, r := range Roles() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// DisplayName nombre completo determinista por rol (tabla fija del login simulado).
func (r Role) DisplayName() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin Elite"
	case RoleAdminPacking:
		return "Tim Operasional Packing"
	case RoleAdminKonten:
		return "Tim Kreatif Konten"
	case RoleAdminMarketplace:
		return "Admin Marketplace Specialist"
	default:
		return GenericDisplayName
	}
}

// Department sufijo después del primer "_" (ej. "PACKING"), o "MASTER" si no hay.
func (r Role) Department() string {
	if _, after, ok := strings.Cut(string(r), "_"); ok && after != "" {
		return after
	}
	return "MASTER"
}

// Label etiqueta del selector de login ("Admin Packing").
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdminPacking:
		return "Admin Packing"
	case RoleAdminKonten:
		return "Admin Konten"
	case RoleAdminMarketplace:
		return "Admin Marketplace"
	case RoleStaffGudang:
		return "Staff Gudang"
	default:
		return string(r)
	}
}
