package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// SaveProduct hace upsert de un producto.
//
// En un update: si cambió el precio de costo, appende una entrada a
// PriceHistory (nunca reescribe las anteriores) y lo refleja en el detalle
// del log; si cambió la cantidad, emite una entrada UPDATE_PRODUCT_QUANTITY
// adicional con old/new — una edición compuesta produce dos entradas de log,
// en ese orden de invocación. El cruce de umbral de stock bajo se evalúa
// contra la cantidad previa y dispara la política de notificaciones.
func (m *Manager) SaveProduct(actor string, p entity.Product) (entity.Product, error) {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Category) == "" {
		return entity.Product{}, fmt.Errorf("producto sin nombre o categoría: %w", domain.ErrInvalidInput)
	}
	if p.Quantity < 0 || p.ReorderQuantity < 0 || p.CostPrice.IsNegative() {
		return entity.Product{}, fmt.Errorf("cantidad, costo y reposición deben ser no negativos: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	idx := -1
	for i := range m.products {
		if m.products[i].ID == p.ID {
			idx = i
			break
		}
	}

	if idx < 0 {
		// Alta: el producto entra al frente con su primer punto de precio.
		if p.ID == "" {
			p.ID = m.newID()
		}
		p.LastUpdated = now
		if len(p.PriceHistory) == 0 {
			p.PriceHistory = []entity.PricePoint{{CostPrice: p.CostPrice, Date: now}}
		}
		m.products = append([]entity.Product{p}, m.products...)
		m.logActivity(actor, entity.ActionCreateProduct, p.Name, "", "")
		m.persistProducts()
		m.persistActivityLogs()
		return p, nil
	}

	old := m.products[idx]
	var changes []string
	if !old.CostPrice.Equal(p.CostPrice) {
		changes = append(changes, fmt.Sprintf("Preço de Custo: R$ %s -> R$ %s",
			old.CostPrice.StringFixed(2), p.CostPrice.StringFixed(2)))
		p.PriceHistory = append(old.PriceHistory, entity.PricePoint{CostPrice: p.CostPrice, Date: now})
	} else {
		p.PriceHistory = old.PriceHistory
	}
	if old.Location != p.Location {
		changes = append(changes, fmt.Sprintf("Localização: %s -> %s", old.Location, p.Location))
	}

	notified := false
	if old.Quantity != p.Quantity {
		m.logActivity(actor, entity.ActionUpdateProductQuantity, p.Name,
			strconv.Itoa(old.Quantity), strconv.Itoa(p.Quantity))
		notified = m.evaluateLowStock(old.Quantity, p)
	}

	p.LastUpdated = now
	m.products[idx] = p

	details := p.Name
	if len(changes) > 0 {
		details += " (" + strings.Join(changes, ", ") + ")"
	}
	m.logActivity(actor, entity.ActionUpdateProduct, details, "", "")

	m.persistProducts()
	m.persistActivityLogs()
	if notified {
		m.persistNotifications()
	}
	return p, nil
}

// DeleteProduct elimina un producto. La entrada DELETE_PRODUCT del log guarda
// el nombre y, como oldValue, la cantidad existente al momento de eliminar:
// la reconciliación la computa después como salida completa.
func (m *Manager) DeleteProduct(actor, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			m.logActivity(actor, entity.ActionDeleteProduct, p.Name, strconv.Itoa(p.Quantity), "")
			m.products = append(m.products[:i], m.products[i+1:]...)
			m.persistProducts()
			m.persistActivityLogs()
			return nil
		}
	}
	return fmt.Errorf("producto %q: %w", id, domain.ErrNotFound)
}

// UpdateQuantity ajusta la cantidad de un producto. Una cantidad negativa es
// un no-op silencioso (contrato del origen: el ajuste se ignora, sin error).
func (m *Manager) UpdateQuantity(actor, id string, newQuantity, oldQuantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.products {
		if m.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("producto %q: %w", id, domain.ErrNotFound)
	}
	if newQuantity < 0 {
		return nil
	}

	p := &m.products[idx]
	p.Quantity = newQuantity
	p.LastUpdated = m.now()
	m.logActivity(actor, entity.ActionUpdateProductQuantity, p.Name,
		strconv.Itoa(oldQuantity), strconv.Itoa(newQuantity))
	notified := m.evaluateLowStock(oldQuantity, *p)

	m.persistProducts()
	m.persistActivityLogs()
	if notified {
		m.persistNotifications()
	}
	return nil
}

// evaluateLowStock dispara la política de notificaciones sólo en el cruce
// estricto de arriba-del-umbral a en-o-bajo-el-umbral. El umbral se lee de
// los settings vigentes en este momento, no se captura al crear el producto.
// Requiere el lock tomado.
func (m *Manager) evaluateLowStock(oldQuantity int, p entity.Product) bool {
	threshold := m.settings.LowStockThreshold
	if p.Quantity > threshold || oldQuantity <= threshold {
		return false
	}
	msg := fmt.Sprintf("Estoque baixo para %q. Quantidade atual: %d.", p.Name, p.Quantity)
	return m.notifyLowStock(p.ID, msg)
}
