package access

import "github.com/jhoicas/graha-hub/internal/domain/entity"

// TabController guarda la pestaña activa de una sesión autenticada.
//
// La selección no se valida al momento de llamar Select: la guarda corre en cada
// lectura (Active) y devuelve la vista por defecto si el valor quedó fuera del
// conjunto autorizado del rol. No es seguro para uso concurrente; lo protege la sesión.
type TabController struct {
	current entity.ViewID
}

// NewTabController arranca en la vista compartida por defecto.
func NewTabController() *TabController {
	return &TabController{current: entity.DefaultView}
}

// Select fija la pestaña sin condiciones.
func (t *TabController) Select(v entity.ViewID) {
	t.current = v
}

// Active aplica la guarda para el rol y devuelve la pestaña vigente.
// El segundo valor indica si hubo que corregir la selección.
func (t *TabController) Active(role entity.Role) (entity.ViewID, bool) {
	if !IsAuthorized(role, t.current) {
		t.current = entity.DefaultView
		return t.current, true
	}
	return t.current, false
}

// Reset vuelve a la vista por defecto (logout o cambio de identidad).
func (t *TabController) Reset() {
	t.current = entity.DefaultView
}
