package state

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// Las localizaciones siguen el mismo patrón que las categorías: etiquetas
// internadas con unicidad case-insensitive, renombre en cascada y guard de
// uso al eliminar.

// AddLocation interna una localización nueva.
func (m *Manager) AddLocation(actor, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("localización vacía: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if containsFold(m.locations, name) {
		return fmt.Errorf("localización %q: %w", name, domain.ErrDuplicate)
	}
	m.locations = append(m.locations, name)
	ptBR.SortStrings(m.locations)
	m.logActivity(actor, entity.ActionAddLocation, name, "", "")
	m.persistLocations()
	m.persistActivityLogs()
	return nil
}

// UpdateLocation renombra una localización y cascadea a los productos.
func (m *Manager) UpdateLocation(actor, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("localización vacía: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := indexOf(m.locations, oldName)
	if idx < 0 {
		return fmt.Errorf("localización %q: %w", oldName, domain.ErrNotFound)
	}
	if oldName == newName {
		return nil
	}
	if containsFold(m.locations, newName) {
		return fmt.Errorf("localización %q: %w", newName, domain.ErrDuplicate)
	}

	m.locations[idx] = newName
	ptBR.SortStrings(m.locations)
	cascaded := false
	for i := range m.products {
		if m.products[i].Location == oldName {
			m.products[i].Location = newName
			cascaded = true
		}
	}
	m.logActivity(actor, entity.ActionUpdateLocation,
		fmt.Sprintf("de %q para %q", oldName, newName), "", "")

	m.persistLocations()
	if cascaded {
		m.persistProducts()
	}
	m.persistActivityLogs()
	return nil
}

// DeleteLocation elimina una localización no referenciada por productos.
func (m *Manager) DeleteLocation(actor, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := indexOf(m.locations, name)
	if idx < 0 {
		return fmt.Errorf("localización %q: %w", name, domain.ErrNotFound)
	}
	for _, p := range m.products {
		if p.Location == name {
			return fmt.Errorf("localización %q: %w", name, domain.ErrInUse)
		}
	}
	m.locations = append(m.locations[:idx], m.locations[idx+1:]...)
	m.logActivity(actor, entity.ActionDeleteLocation, name, "", "")
	m.persistLocations()
	m.persistActivityLogs()
	return nil
}
