package auth

import (
	"context"
	"sync"

	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// LoginTask intento de login en curso. Wait espera el resultado; Cancel lo descarta.
type LoginTask struct {
	ctrl *Controller
	gen  uint64

	done       chan struct{}
	cancel     chan struct{}
	cancelOnce sync.Once
	doneOnce   sync.Once

	user *entity.User
	err  error
}

// Wait bloquea hasta que el intento termine o ctx se cancele.
// Un intento descartado por Cancel o Logout devuelve domain.ErrLoginCancelled.
func (t *LoginTask) Wait(ctx context.Context) (*entity.User, error) {
	select {
	case <-t.done:
		return t.user, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done se cierra cuando el intento terminó.
func (t *LoginTask) Done() <-chan struct{} { return t.done }

// Cancel descarta la verificación (desmontaje de la vista de login). Idempotente.
func (t *LoginTask) Cancel() {
	t.ctrl.cancelTask(t)
	t.closeCancel()
}

func (t *LoginTask) closeCancel() {
	t.cancelOnce.Do(func() { close(t.cancel) })
}

func (t *LoginTask) finish(u *entity.User, err error) {
	t.doneOnce.Do(func() {
		t.user, t.err = u, err
		close(t.done)
	})
}
