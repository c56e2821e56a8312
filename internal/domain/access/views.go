// Package access contiene el mapa de autorización rol → vistas y el controlador
// de la pestaña activa que lo hace cumplir.
package access

import "github.com/jhoicas/graha-hub/internal/domain/entity"

// sharedViews vistas que todo rol puede abrir, siempre al inicio del menú.
var sharedViews = []entity.ViewID{entity.ViewOverview, entity.ViewAttendance}

// roleViews vistas adicionales por rol administrativo, en orden de menú.
var roleViews = map[entity.Role][]entity.ViewID{
	entity.RoleSuperAdmin: {
		entity.ViewInventory, entity.ViewOrders, entity.ViewTeam, entity.ViewReports, entity.ViewSettings,
	},
	entity.RoleAdminPacking:     {entity.ViewPackingQueue, entity.ViewPackagingStock},
	entity.RoleAdminKonten:      {entity.ViewContentAssets, entity.ViewSocialMedia},
	entity.RoleAdminMarketplace: {entity.ViewStore, entity.ViewCustomerChat},
}

// AuthorizedViews devuelve, en orden, las vistas que el rol puede abrir.
// Es pura y total: roles sin mapeo (incluido STAFF_GUDANG) reciben solo las compartidas.
// Cada llamada devuelve un slice nuevo; el llamador puede modificarlo.
func AuthorizedViews(role entity.Role) []entity.ViewID {
	extra := roleViews[role]
	out := make([]entity.ViewID, 0, len(sharedViews)+len(extra))
	out = append(out, sharedViews...)
	return append(out, extra...)
}

// IsAuthorized informa si la vista pertenece al conjunto autorizado del rol.
func IsAuthorized(role entity.Role, view entity.ViewID) bool {
	for _, v := range AuthorizedViews(role) {
		if v == view {
			return true
		}
	}
	return false
}
