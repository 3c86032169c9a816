package usecase

import (
	"time"

	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// parseDate convierte "2006-01-02" a time.Time (UTC). Cadena vacía → cero.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

// parseDatePtr como parseDate pero devuelve nil para cadena vacía.
func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func refToDTO(r entity.EntityRef) dto.EntityRefDTO {
	return dto.EntityRefDTO{Kind: string(r.Kind), ID: r.ID}
}

func refFromDTO(r dto.EntityRefDTO) entity.EntityRef {
	return entity.EntityRef{Kind: entity.EntityKind(r.Kind), ID: r.ID}
}

// validEntityKind indica si el kind es uno de los discriminadores conocidos.
func validEntityKind(k entity.EntityKind) bool {
	switch k {
	case entity.KindMachinery, entity.KindVehicle, entity.KindTool, entity.KindSparePart:
		return true
	}
	return false
}
