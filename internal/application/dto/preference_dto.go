package dto

// ThemeRequest cambio explícito de tema.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse tema vigente de la sesión.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// ThemeUnavailableResponse fallo al persistir. El tema de la sesión ya cambió.
type ThemeUnavailableResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Theme   string `json:"theme"`
}
