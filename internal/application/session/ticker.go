package session

import (
	"sync"
	"time"
)

// DefaultTickInterval frecuencia del reloj visible en la vista de asistencia.
const DefaultTickInterval = time.Second

// Ticker reloj periódico que solo corre mientras la vista de asistencia está activa.
// Start y Stop son idempotentes y se puede reiniciar tras detenerlo.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	last     time.Time
	stop     chan struct{}
	done     chan struct{}
}

// NewTicker construye un ticker detenido.
func NewTicker(interval time.Duration, now func() time.Time) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Ticker{interval: interval, now: now}
}

// Start arranca el reloj si no estaba corriendo. El primer valor se toma de inmediato.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	t.last = t.now()
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.loop(t.stop, t.done)
}

func (t *Ticker) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			t.mu.Lock()
			t.last = t.now()
			t.mu.Unlock()
		}
	}
}

// Stop detiene el reloj y espera a que la goroutine termine.
func (t *Ticker) Stop() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running informa si el reloj está activo.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Last último instante registrado; ok=false si el reloj está detenido.
func (t *Ticker) Last() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return time.Time{}, false
	}
	return t.last, true
}
