package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sony/gobreaker"

	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
	"github.com/jhoicas/graha-hub/pkg/breaker"
)

// Asegura que PreferenceRepo implementa ports.PreferenceStore.
var _ ports.PreferenceStore = (*PreferenceRepo)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS theme_preferences (
		device_id  TEXT PRIMARY KEY,
		theme      TEXT NOT NULL CHECK (theme IN ('light', 'dark')),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// DB operaciones de pgx que usa el repositorio.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

var _ DB = (*pgxpool.Pool)(nil)

// PreferenceRepo implementación del puerto PreferenceStore sobre PostgreSQL.
type PreferenceRepo struct {
	pool DB
	cb   *gobreaker.CircuitBreaker
}

// NewPreferenceRepository construye el adaptador. cb puede ser nil (sin breaker).
func NewPreferenceRepository(pool DB, cb *gobreaker.CircuitBreaker) *PreferenceRepo {
	return &PreferenceRepo{pool: pool, cb: cb}
}

// EnsureSchema crea la tabla si no existe.
func (r *PreferenceRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear theme_preferences: %w", err)
	}
	return nil
}

type themeRow struct {
	theme string
	found bool
}

// GetTheme obtiene el tema guardado del dispositivo. Sin fila devuelve domain.ErrNotFound.
func (r *PreferenceRepo) GetTheme(ctx context.Context, deviceID string) (entity.Theme, error) {
	row, err := r.run(func() (themeRow, error) {
		var t string
		err := r.pool.QueryRow(ctx, `SELECT theme FROM theme_preferences WHERE device_id = $1`, deviceID).Scan(&t)
		if err != nil {
			if isNoRows(err) || isUndefinedTable(err) {
				return themeRow{}, nil
			}
			return themeRow{}, err
		}
		return themeRow{theme: t, found: true}, nil
	})
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	if !row.found {
		return "", domain.ErrNotFound
	}
	return entity.Theme(row.theme), nil
}

// SetTheme inserta o actualiza el tema del dispositivo.
func (r *PreferenceRepo) SetTheme(ctx context.Context, deviceID string, theme entity.Theme) error {
	query := `
		INSERT INTO theme_preferences (device_id, theme, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (device_id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = EXCLUDED.updated_at`
	_, err := r.run(func() (themeRow, error) {
		_, err := r.pool.Exec(ctx, query, deviceID, string(theme))
		return themeRow{}, err
	})
	if err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}

// Ping verifica la conexión.
func (r *PreferenceRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PreferenceRepo) run(fn func() (themeRow, error)) (themeRow, error) {
	if r.cb == nil {
		return fn()
	}
	return breaker.Execute(r.cb, fn)
}
