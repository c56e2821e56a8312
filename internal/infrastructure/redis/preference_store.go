// Package redis implementa el almacén de preferencias sobre Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
	"github.com/jhoicas/graha-hub/pkg/breaker"
	"github.com/jhoicas/graha-hub/pkg/config"
)

var _ ports.PreferenceStore = (*PreferenceStore)(nil)

const keyPrefix = "theme:"

// NewClient abre el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Client comandos de Redis que usa el almacén. *goredis.Client lo cumple.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Ping(ctx context.Context) *goredis.StatusCmd
}

// PreferenceStore guarda el tema en la clave theme:<device_id>, sin expiración.
type PreferenceStore struct {
	client Client
	cb     *gobreaker.CircuitBreaker
}

// NewPreferenceStore construye el adaptador. cb puede ser nil.
func NewPreferenceStore(client Client, cb *gobreaker.CircuitBreaker) *PreferenceStore {
	return &PreferenceStore{client: client, cb: cb}
}

// GetTheme devuelve domain.ErrNotFound si la clave no existe.
func (s *PreferenceStore) GetTheme(ctx context.Context, deviceID string) (entity.Theme, error) {
	val, err := s.run(func() (string, error) {
		v, err := s.client.Get(ctx, keyPrefix+deviceID).Result()
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return v, err
	})
	if err != nil {
		return "", fmt.Errorf("redis get theme: %w", err)
	}
	if val == "" {
		return "", domain.ErrNotFound
	}
	return entity.Theme(val), nil
}

// SetTheme guarda el tema del dispositivo.
func (s *PreferenceStore) SetTheme(ctx context.Context, deviceID string, theme entity.Theme) error {
	_, err := s.run(func() (string, error) {
		return "", s.client.Set(ctx, keyPrefix+deviceID, string(theme), 0).Err()
	})
	if err != nil {
		return fmt.Errorf("redis set theme: %w", err)
	}
	return nil
}

// Ping verifica la conexión.
func (s *PreferenceStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *PreferenceStore) run(fn func() (string, error)) (string, error) {
	if s.cb == nil {
		return fn()
	}
	return breaker.Execute(s.cb, fn)
}
