package entity

// EntityKind discrimina el tipo de entidad al que apunta una referencia débil
// (alertas, registros financieros, combustible). Tipado para que el switch en
// los agregadores sea exhaustivo en vez de comparar strings sueltos.
type EntityKind string

const (
	KindMachinery EntityKind = "machinery"
	KindVehicle   EntityKind = "vehicle"
	KindTool      EntityKind = "tool"
	KindSparePart EntityKind = "sparepart"
)

// EntityRef referencia débil polimórfica a una entidad del inventario.
// Se resuelve por lookup; no implica propiedad ni integridad referencial fuerte.
type EntityRef struct {
	Kind EntityKind
	ID   string
}

// IsZero indica si la referencia está vacía (registro sin entidad asociada).
func (r EntityRef) IsZero() bool {
	return r.Kind == "" && r.ID == ""
}
