// Package auth implementa el login simulado de la sesión: validación diferida,
// cancelación del intento en curso y logout incondicional.
package auth

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// DefaultDelay latencia simulada de la verificación.
const DefaultDelay = 1500 * time.Millisecond

// MinSecretLength longitud mínima del secreto aceptado.
const MinSecretLength = 4

// LoginInput datos enviados desde el formulario de login.
type LoginInput struct {
	Identifier string
	Secret     string
	Role       entity.Role
}

// Config parámetros del controlador. After y NewID son inyectables para tests.
type Config struct {
	Delay time.Duration
	After func(time.Duration) <-chan time.Time
	NewID func() string
}

// Controller dueño del AuthState de una sesión. Seguro para uso concurrente.
type Controller struct {
	mu      sync.Mutex
	state   entity.AuthState
	prev    entity.AuthState
	gen     uint64
	pending *LoginTask

	delay time.Duration
	after func(time.Duration) <-chan time.Time
	newID func() string
}

// NewController construye el controlador en estado anónimo.
func NewController(cfg Config) *Controller {
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.After == nil {
		cfg.After = time.After
	}
	if cfg.NewID == nil {
		cfg.NewID = func() string { return uuid.New().String() }
	}
	return &Controller{
		state: entity.Anonymous(),
		delay: cfg.Delay,
		after: cfg.After,
		newID: cfg.NewID,
	}
}

// State copia del estado actual.
func (c *Controller) State() entity.AuthState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// User identidad autenticada, o nil.
func (c *Controller) User() *entity.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.User
}

// Pending intento de login en curso, o nil.
func (c *Controller) Pending() *LoginTask {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Login arranca la verificación diferida. Sin rol falla de inmediato sin programar
// ninguna espera. Si ctx termina antes de la verificación el intento se cancela.
// Con una identidad activa o un intento en curso se rechaza sin tocar el estado.
func (c *Controller) Login(ctx context.Context, in LoginInput) (*LoginTask, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsAuthenticated {
		return nil, domain.ErrAlreadyLoggedIn
	}
	if c.pending != nil {
		return nil, domain.ErrLoginInProgress
	}
	if in.Role == "" {
		c.state = entity.Failed(domain.ErrRoleNotSelected.Error())
		return nil, domain.ErrRoleNotSelected
	}

	c.prev = c.state
	c.prev.IsLoading = false
	c.state = entity.Loading()

	task := &LoginTask{
		ctrl:   c,
		gen:    c.gen,
		done:   make(chan struct{}),
		cancel: make(chan struct{}),
	}
	c.pending = task
	timer := c.after(c.delay)

	stop := context.AfterFunc(ctx, task.Cancel)
	go func() {
		defer stop()
		c.run(task, in, timer)
	}()
	return task, nil
}

func (c *Controller) run(task *LoginTask, in LoginInput, timer <-chan time.Time) {
	select {
	case <-timer:
	case <-task.cancel:
		task.finish(nil, domain.ErrLoginCancelled)
		return
	}

	user, err := c.verify(in)

	c.mu.Lock()
	if c.gen != task.gen || c.pending != task {
		c.mu.Unlock()
		task.finish(nil, domain.ErrLoginCancelled)
		return
	}
	c.pending = nil
	if err != nil {
		c.state = entity.Failed(err.Error())
	} else {
		c.state = entity.Authenticated(user)
	}
	c.mu.Unlock()
	task.finish(user, err)
}

func (c *Controller) verify(in LoginInput) (*entity.User, error) {
	if in.Identifier == "" || utf8.RuneCountInString(in.Secret) < MinSecretLength {
		return nil, domain.ErrInvalidCredentials
	}
	return entity.NewUser(c.newID(), in.Identifier, in.Role), nil
}

// cancelTask descarta el intento si sigue siendo el vigente y restaura el estado previo sin carga.
func (c *Controller) cancelTask(t *LoginTask) {
	c.mu.Lock()
	if c.pending == t {
		c.pending = nil
		c.gen++
		c.state = c.prev
	}
	c.mu.Unlock()
}

// Logout vuelve al estado anónimo y descarta cualquier verificación pendiente. Nunca falla.
func (c *Controller) Logout() {
	c.mu.Lock()
	t := c.pending
	c.pending = nil
	c.gen++
	c.state = entity.Anonymous()
	c.prev = entity.Anonymous()
	c.mu.Unlock()
	if t != nil {
		t.closeCancel()
	}
}
