package ports

import (
	"context"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// ProductExporter serializa una lista de productos a un documento binario
// descargable. Hay un adaptador por formato (PDF, planilla); todos reciben la
// lista ya filtrada por el caso de uso.
type ProductExporter interface {
	ExportProducts(ctx context.Context, products []entity.Product) ([]byte, error)
}
