package state

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// AddSupplier registra un proveedor nuevo.
func (m *Manager) AddSupplier(actor string, s entity.Supplier) (entity.Supplier, error) {
	if strings.TrimSpace(s.Name) == "" {
		return entity.Supplier{}, fmt.Errorf("proveedor sin nombre: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = m.newID()
	}
	m.suppliers = append(m.suppliers, s)
	m.logActivity(actor, entity.ActionAddSupplier, s.Name, "", "")
	m.persistSuppliers()
	m.persistActivityLogs()
	return s, nil
}

// UpdateSupplier reemplaza los datos de un proveedor existente.
func (m *Manager) UpdateSupplier(actor string, s entity.Supplier) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("proveedor sin nombre: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.suppliers {
		if m.suppliers[i].ID == s.ID {
			m.suppliers[i] = s
			m.logActivity(actor, entity.ActionUpdateSupplier, s.Name, "", "")
			m.persistSuppliers()
			m.persistActivityLogs()
			return nil
		}
	}
	return fmt.Errorf("proveedor %q: %w", s.ID, domain.ErrNotFound)
}

// DeleteSupplier elimina un proveedor. Guard de uso: falla mientras algún
// producto lo tenga en su lista de proveedores (pertenencia por identidad,
// no por nombre).
func (m *Manager) DeleteSupplier(actor, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		for _, sid := range p.SupplierIDs {
			if sid == id {
				return fmt.Errorf("proveedor %q: %w", id, domain.ErrInUse)
			}
		}
	}
	for i, s := range m.suppliers {
		if s.ID == id {
			m.suppliers = append(m.suppliers[:i], m.suppliers[i+1:]...)
			m.logActivity(actor, entity.ActionDeleteSupplier, s.Name, "", "")
			m.persistSuppliers()
			m.persistActivityLogs()
			return nil
		}
	}
	return fmt.Errorf("proveedor %q: %w", id, domain.ErrNotFound)
}
