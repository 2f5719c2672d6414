// Package state implementa el Domain State Manager: el dueño único de todas
// las colecciones del inventario. Ninguna otra capa muta productos, usuarios,
// categorías, localizaciones, proveedores, log de actividades, notificaciones
// o settings directamente.
//
// Contrato de toda mutación: validar → mutar en memoria → apuntar la(s)
// entrada(s) de actividad con el actor explícito → evaluar la política de
// notificaciones cuando aplica → persistir síncronamente las colecciones
// afectadas. Los fallos de persistencia los traga el adaptador de storage
// (el estado en memoria sigue siendo autoritativo para la sesión).
package state

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/pkg/logger"
)

// KeyValueStore es el puerto de persistencia: un sustrato durable de pares
// clave-valor con serialización JSON. Get devuelve false si la clave no
// existe o el valor guardado no deserializa (el caller usa su default);
// Set nunca falla hacia el caller: los errores se loguean y se tragan.
type KeyValueStore interface {
	Get(key string, out interface{}) bool
	Set(key string, value interface{})
}

// Claves bajo las que se persiste cada colección.
const (
	keyProducts      = "inventory_products"
	keyUsers         = "inventory_users"
	keyCategories    = "inventory_categories"
	keyLocations     = "inventory_locations"
	keySuppliers     = "inventory_suppliers"
	keyActivityLogs  = "inventory_activityLogs"
	keyNotifications = "inventory_notifications"
	keySettings      = "inventory_settings"
)

// ptBR ordena etiquetas con colación portuguesa (acentos bien ubicados).
var ptBR = collate.New(language.BrazilianPortuguese)

// Manager mantiene las colecciones en memoria y las persiste tras cada
// mutación. El mutex serializa las mutaciones: el dominio asume un solo flujo
// de eventos, y la sección crítica garantiza además el orden de las entradas
// del log cuando una acción compuesta produce varias.
type Manager struct {
	mu    sync.Mutex
	store KeyValueStore
	log   *logger.Logger
	now   func() time.Time
	newID func() string

	products      []entity.Product
	users         []entity.User
	categories    []string
	locations     []string
	suppliers     []entity.Supplier
	activityLogs  []entity.ActivityLog
	notifications []entity.Notification
	settings      entity.Settings
}

// Option ajusta el Manager en construcción.
type Option func(*Manager)

// WithClock inyecta el reloj; para tests deterministas.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator inyecta el generador de IDs; para tests deterministas.
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// New construye el Manager y carga cada colección desde el store, sembrando
// los defaults de primera ejecución cuando no hay nada persistido.
func New(store KeyValueStore, log *logger.Logger, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(m)
	}

	if !store.Get(keyProducts, &m.products) {
		m.products = []entity.Product{}
	}
	if !store.Get(keyUsers, &m.users) {
		m.users = seedUsers()
	}
	if !store.Get(keyCategories, &m.categories) {
		m.categories = seedCategories()
	}
	if !store.Get(keyLocations, &m.locations) {
		m.locations = seedLocations()
	}
	if !store.Get(keySuppliers, &m.suppliers) {
		m.suppliers = seedSuppliers()
	}
	if !store.Get(keyActivityLogs, &m.activityLogs) {
		m.activityLogs = []entity.ActivityLog{}
	}
	if !store.Get(keyNotifications, &m.notifications) {
		m.notifications = []entity.Notification{}
	}
	if !store.Get(keySettings, &m.settings) {
		m.settings = entity.Settings{LowStockThreshold: 10, DefaultReorderQuantity: 10}
	}
	return m
}

// ── Lecturas (copias defensivas) ──────────────────────────────────────────────

// Products devuelve una copia del catálogo.
func (m *Manager) Products() []entity.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Product, len(m.products))
	copy(out, m.products)
	return out
}

// ProductByID busca un producto por identidad.
func (m *Manager) ProductByID(id string) (entity.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Users devuelve una copia de las cuentas.
func (m *Manager) Users() []entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.User, len(m.users))
	copy(out, m.users)
	return out
}

// Categories devuelve una copia de las categorías.
func (m *Manager) Categories() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// Locations devuelve una copia de las localizaciones.
func (m *Manager) Locations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.locations))
	copy(out, m.locations)
	return out
}

// Suppliers devuelve una copia de los proveedores.
func (m *Manager) Suppliers() []entity.Supplier {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Supplier, len(m.suppliers))
	copy(out, m.suppliers)
	return out
}

// ActivityLogs devuelve una copia del log, más-reciente-primero.
func (m *Manager) ActivityLogs() []entity.ActivityLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.ActivityLog, len(m.activityLogs))
	copy(out, m.activityLogs)
	return out
}

// Notifications devuelve una copia de las notificaciones, más-reciente-primero.
func (m *Manager) Notifications() []entity.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Notification, len(m.notifications))
	copy(out, m.notifications)
	return out
}

// Settings devuelve los parámetros vigentes.
func (m *Manager) Settings() entity.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// ── Log de actividades ────────────────────────────────────────────────────────

// logActivity appende una entrada al frente del log (orden de reposo
// más-reciente-primero). Requiere el lock tomado. oldValue/newValue vacíos
// significan ausentes.
func (m *Manager) logActivity(actor string, action entity.Action, details, oldValue, newValue string) {
	entry := entity.ActivityLog{
		ID:        m.newID(),
		User:      actor,
		Action:    action,
		Details:   details,
		Timestamp: m.now(),
		OldValue:  oldValue,
		NewValue:  newValue,
	}
	m.activityLogs = append([]entity.ActivityLog{entry}, m.activityLogs...)
}

// ── Persistencia ──────────────────────────────────────────────────────────────

func (m *Manager) persistProducts()      { m.store.Set(keyProducts, m.products) }
func (m *Manager) persistUsers()         { m.store.Set(keyUsers, m.users) }
func (m *Manager) persistCategories()    { m.store.Set(keyCategories, m.categories) }
func (m *Manager) persistLocations()     { m.store.Set(keyLocations, m.locations) }
func (m *Manager) persistSuppliers()     { m.store.Set(keySuppliers, m.suppliers) }
func (m *Manager) persistActivityLogs()  { m.store.Set(keyActivityLogs, m.activityLogs) }
func (m *Manager) persistNotifications() { m.store.Set(keyNotifications, m.notifications) }
func (m *Manager) persistSettings()      { m.store.Set(keySettings, m.settings) }

// ── helpers ───────────────────────────────────────────────────────────────────

// containsFold reporta si tags contiene s sin distinguir mayúsculas.
func containsFold(tags []string, s string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, s) {
			return true
		}
	}
	return false
}
