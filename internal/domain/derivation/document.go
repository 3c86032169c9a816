package derivation

import "time"

// DocumentStatus vigencia de un documento con fecha de vencimiento.
type DocumentStatus string

const (
	DocumentExpired  DocumentStatus = "expired"
	DocumentExpiring DocumentStatus = "expiring"
	DocumentValid    DocumentStatus = "valid"
	DocumentUnknown  DocumentStatus = "unknown"
)

// ClassifyDocument clasifica una fecha de vencimiento contra now:
//
//	expiration < now                    → expired
//	0 <= días restantes <= windowDays   → expiring
//	resto                               → valid
//
// Los días restantes se redondean hacia arriba (vence mañana a cualquier hora
// cuenta como 1 día). Una fecha en cero significa dato ausente y clasifica
// como unknown: un documento sin fecha no se asume vigente.
//
// SOAT y revisión técnica usan esta misma regla, evaluada por separado.
func ClassifyDocument(expiration, now time.Time, windowDays int) DocumentStatus {
	if expiration.IsZero() {
		return DocumentUnknown
	}
	if expiration.Before(now) {
		return DocumentExpired
	}
	if daysUntil(expiration, now) <= windowDays {
		return DocumentExpiring
	}
	return DocumentValid
}
