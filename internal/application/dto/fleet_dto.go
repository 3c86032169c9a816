package dto

import "time"

// CreateWarehouseRequest alta de almacén.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// WarehouseResponse almacén serializado.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMachineryRequest alta de maquinaria. Fechas en formato 2006-01-02.
type CreateMachineryRequest struct {
	Name                     string `json:"name"`
	Category                 string `json:"category"`
	Brand                    string `json:"brand"`
	Model                    string `json:"model"`
	SerialNumber             string `json:"serial_number"`
	Year                     int    `json:"year"`
	Hourmeter                int    `json:"hourmeter"`
	Condition                string `json:"condition"`
	WarehouseID              string `json:"warehouse_id"`
	LastMaintenance          string `json:"last_maintenance,omitempty"`
	NextMaintenance          string `json:"next_maintenance,omitempty"`
	MaintenanceIntervalHours int    `json:"maintenance_interval_hours,omitempty"`
	MaintenanceIntervalDays  int    `json:"maintenance_interval_days,omitempty"`
}

// MachineryResponse maquinaria serializada, con su estado de mantenimiento derivado.
type MachineryResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Brand             string     `json:"brand"`
	Model             string     `json:"model"`
	SerialNumber      string     `json:"serial_number"`
	Year              int        `json:"year"`
	Hourmeter         int        `json:"hourmeter"`
	Condition         string     `json:"condition"`
	Status            string     `json:"status"`
	WarehouseID       string     `json:"warehouse_id"`
	LastMaintenance   *time.Time `json:"last_maintenance,omitempty"`
	NextMaintenance   *time.Time `json:"next_maintenance,omitempty"`
	MaintenanceStatus string     `json:"maintenance_status"` // due | upcoming | ok | unknown
	CreatedAt         time.Time  `json:"created_at"`
}

// CreateVehicleRequest alta de vehículo. Fechas en formato 2006-01-02.
type CreateVehicleRequest struct {
	Plate                     string `json:"plate"`
	Brand                     string `json:"brand"`
	Model                     string `json:"model"`
	Year                      int    `json:"year"`
	Mileage                   int    `json:"mileage"`
	SoatExpiration            string `json:"soat_expiration"`
	TechnicalReviewExpiration string `json:"technical_review_expiration"`
	WarehouseID               string `json:"warehouse_id"`
}

// VehicleResponse vehículo serializado, con la vigencia derivada de cada documento.
type VehicleResponse struct {
	ID                        string    `json:"id"`
	Plate                     string    `json:"plate"`
	Brand                     string    `json:"brand"`
	Model                     string    `json:"model"`
	Year                      int       `json:"year"`
	Mileage                   int       `json:"mileage"`
	Status                    string    `json:"status"`
	SoatExpiration            time.Time `json:"soat_expiration"`
	SoatStatus                string    `json:"soat_status"` // expired | expiring | valid | unknown
	TechnicalReviewExpiration time.Time `json:"technical_review_expiration"`
	TechnicalReviewStatus     string    `json:"technical_review_status"`
	WarehouseID               string    `json:"warehouse_id"`
	CreatedAt                 time.Time `json:"created_at"`
}

// CreateToolRequest alta de herramienta.
type CreateToolRequest struct {
	Name         string `json:"name"`
	InternalCode string `json:"internal_code"`
	Observations string `json:"observations"`
	WarehouseID  string `json:"warehouse_id"`
}

// ToolResponse herramienta serializada.
type ToolResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	InternalCode string    `json:"internal_code"`
	Status       string    `json:"status"`
	Observations string    `json:"observations"`
	WarehouseID  string    `json:"warehouse_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateStatusRequest cambio de estado operativo de maquinaria/vehículo/herramienta.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
