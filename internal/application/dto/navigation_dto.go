package dto

// ViewResponse entrada del menú lateral.
type ViewResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ViewsResponse vistas autorizadas del rol y la pestaña activa ya guardada.
type ViewsResponse struct {
	Views  []ViewResponse `json:"views"`
	Active string         `json:"active"`
}

// SelectTabRequest selección de pestaña.
type SelectTabRequest struct {
	View string `json:"view"`
}

// TabResponse pestaña vigente. Redirected indica que la selección pedida no estaba autorizada.
type TabResponse struct {
	Active     string `json:"active"`
	Label      string `json:"label"`
	Redirected bool   `json:"redirected"`
}
