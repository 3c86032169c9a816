package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EntityRefDTO referencia polimórfica serializada (kind + id).
type EntityRefDTO struct {
	Kind string `json:"kind,omitempty"`
	ID   string `json:"id,omitempty"`
}
