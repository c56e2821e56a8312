package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes se muestran tal cual al usuario final del dashboard.
var (
	ErrNotFound        = errors.New("data tidak ditemukan")
	ErrInvalidInput    = errors.New("input tidak valid")
	ErrUnauthorized    = errors.New("sesi belum terautentikasi")
	ErrUnavailable     = errors.New("layanan sedang tidak tersedia")
	ErrSessionNotFound = errors.New("sesi tidak ditemukan atau sudah berakhir")

	// Login simulado.
	ErrRoleNotSelected    = errors.New("Silakan pilih Role terlebih dahulu.")
	ErrInvalidCredentials = errors.New("Kredensial tidak valid (Minimal 4 karakter).")
	ErrLoginInProgress    = errors.New("proses verifikasi masih berjalan")
	ErrLoginCancelled     = errors.New("proses verifikasi dibatalkan")
	ErrAlreadyLoggedIn    = errors.New("Anda sudah masuk. Silakan logout terlebih dahulu.")

	// Máquina de estados de asistencia.
	ErrAlreadyCheckedIn  = errors.New("Anda sudah melakukan Check-in hari ini")
	ErrNotCheckedIn      = errors.New("Anda belum melakukan Check-in hari ini")
	ErrAlreadyCheckedOut = errors.New("Anda sudah melakukan Absen Pulang hari ini")

	ErrInvalidView  = errors.New("modul tidak dikenal")
	ErrInvalidTheme = errors.New("tema harus 'light' atau 'dark'")
)
