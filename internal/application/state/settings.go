package state

import (
	"fmt"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// UpdateSettings reemplaza los parámetros globales. El umbral de stock bajo
// rige las evaluaciones futuras: las notificaciones ya emitidas no se recalculan.
func (m *Manager) UpdateSettings(s entity.Settings) error {
	if s.LowStockThreshold < 0 || s.DefaultReorderQuantity < 0 {
		return fmt.Errorf("los parámetros deben ser no negativos: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = s
	m.persistSettings()
	return nil
}
