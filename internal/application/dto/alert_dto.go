package dto

import "time"

// AlertResponse alerta serializada para las vistas.
type AlertResponse struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Severity    string       `json:"severity"`
	Entity      EntityRefDTO `json:"related_entity"`
	CreatedAt   time.Time    `json:"created_at"`
	Resolved    bool         `json:"resolved"`
}

// AlertListResponse listado de alertas con totales rápidos para las tarjetas.
type AlertListResponse struct {
	Items      []AlertResponse `json:"items"`
	Total      int             `json:"total"`
	Unresolved int             `json:"unresolved"`
	Critical   int             `json:"critical"` // no resueltas con severidad critical
	High       int             `json:"high"`     // no resueltas con severidad high
}

// AlertFilter filtros de listado (query params). Cadena vacía = sin filtro.
type AlertFilter struct {
	Type         string `query:"type"`
	Severity     string `query:"severity"`
	ShowResolved bool   `query:"show_resolved"`
}

// RaiseAlertRequest alta manual de una alerta.
type RaiseAlertRequest struct {
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Severity    string       `json:"severity"`
	Entity      EntityRefDTO `json:"related_entity"`
}
