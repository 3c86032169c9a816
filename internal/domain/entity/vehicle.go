package entity

import "time"

// Tipos de documento vehicular.
const (
	DocumentoSOAT             = "soat"
	DocumentoRevisionTecnica  = "revision_tecnica"
	DocumentoTarjetaPropiedad = "tarjeta_propiedad"
	DocumentoOtros            = "otros"
)

// Vehicle representa un vehículo de la flota (camioneta, camión ligero).
// SoatExpiration y TechnicalReviewExpiration son dos vencimientos de
// cumplimiento independientes; una fecha en cero significa "sin dato" y la
// clasificación debe tratarla como desconocida, nunca como vigente.
type Vehicle struct {
	ID                        string
	Plate                     string // placa, clave de negocio única
	Brand                     string
	Model                     string
	Year                      int
	Mileage                   int
	Status                    string
	SoatExpiration            time.Time
	TechnicalReviewExpiration time.Time
	WarehouseID               string
	Documents                 []VehicleDocument
	CreatedAt                 time.Time
}

// VehicleDocument documento digitalizado asociado a un vehículo.
type VehicleDocument struct {
	ID             string
	Type           string
	Name           string
	URL            string
	ExpirationDate *time.Time
	UploadedAt     time.Time
}
