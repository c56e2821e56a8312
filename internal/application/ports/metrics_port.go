package ports

// MetricsRecorder contadores de negocio expuestos en /metrics.
type MetricsRecorder interface {
	LoginCompleted(outcome string)
	AttendanceRecorded(kind, status string)
	SessionsOpen(n int)
}

// Resultados de login para LoginCompleted.
const (
	LoginOutcomeSuccess         = "success"
	LoginOutcomeInvalid         = "invalid_credentials"
	LoginOutcomeRoleNotSelected = "role_not_selected"
	LoginOutcomeCancelled       = "cancelled"
)

// NopMetrics implementación vacía para tests y arranques sin métricas.
type NopMetrics struct{}

func (NopMetrics) LoginCompleted(string)             {}
func (NopMetrics) AttendanceRecorded(string, string) {}
func (NopMetrics) SessionsOpen(int)                  {}
