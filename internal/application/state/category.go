package state

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// AddCategory interna una categoría nueva. La unicidad es case-insensitive.
func (m *Manager) AddCategory(actor, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("categoría vacía: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if containsFold(m.categories, name) {
		return fmt.Errorf("categoría %q: %w", name, domain.ErrDuplicate)
	}
	m.categories = append(m.categories, name)
	ptBR.SortStrings(m.categories)
	m.logActivity(actor, entity.ActionAddCategory, name, "", "")
	m.persistCategories()
	m.persistActivityLogs()
	return nil
}

// UpdateCategory renombra una categoría y cascadea el nuevo nombre a todos
// los productos que referenciaban el anterior.
func (m *Manager) UpdateCategory(actor, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("categoría vacía: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := indexOf(m.categories, oldName)
	if idx < 0 {
		return fmt.Errorf("categoría %q: %w", oldName, domain.ErrNotFound)
	}
	if oldName == newName {
		return nil
	}
	if containsFold(m.categories, newName) {
		return fmt.Errorf("categoría %q: %w", newName, domain.ErrDuplicate)
	}

	m.categories[idx] = newName
	ptBR.SortStrings(m.categories)
	cascaded := false
	for i := range m.products {
		if m.products[i].Category == oldName {
			m.products[i].Category = newName
			cascaded = true
		}
	}
	m.logActivity(actor, entity.ActionUpdateCategory,
		fmt.Sprintf("de %q para %q", oldName, newName), "", "")

	m.persistCategories()
	if cascaded {
		m.persistProducts()
	}
	m.persistActivityLogs()
	return nil
}

// DeleteCategory elimina una categoría. Guard de uso: falla mientras algún
// producto la referencie.
func (m *Manager) DeleteCategory(actor, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := indexOf(m.categories, name)
	if idx < 0 {
		return fmt.Errorf("categoría %q: %w", name, domain.ErrNotFound)
	}
	for _, p := range m.products {
		if p.Category == name {
			return fmt.Errorf("categoría %q: %w", name, domain.ErrInUse)
		}
	}
	m.categories = append(m.categories[:idx], m.categories[idx+1:]...)
	m.logActivity(actor, entity.ActionDeleteCategory, name, "", "")
	m.persistCategories()
	m.persistActivityLogs()
	return nil
}

func indexOf(tags []string, s string) int {
	for i, t := range tags {
		if t == s {
			return i
		}
	}
	return -1
}
