package state

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

const minPasswordLen = 6

// Authenticate valida credenciales. El username se compara con trim y sin
// distinguir mayúsculas; la contraseña, exacta. Un login exitoso se apunta
// con la identidad autenticada como actor (no hay sesión ambiente previa);
// un login fallido no deja rastro en el log.
func (m *Manager) Authenticate(username, password string) (entity.User, error) {
	username = strings.TrimSpace(username)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) && u.Password == password {
			m.logActivity(u.Username, entity.ActionLogin,
				fmt.Sprintf("User %s logged in.", u.Username), "", "")
			m.persistActivityLogs()
			return u, nil
		}
	}
	return entity.User{}, domain.ErrUnauthorized
}

// Logout apunta el cierre de sesión del actor.
func (m *Manager) Logout(actor string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logActivity(actor, entity.ActionLogout,
		fmt.Sprintf("User %s logged out.", actor), "", "")
	m.persistActivityLogs()
}

// AddUser registra una cuenta nueva. El username es único sin distinguir
// mayúsculas; la contraseña debe tener al menos seis caracteres.
func (m *Manager) AddUser(actor string, u entity.User) (entity.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return entity.User{}, fmt.Errorf("usuario sin nombre: %w", domain.ErrInvalidInput)
	}
	if len(u.Password) < minPasswordLen {
		return entity.User{}, domain.ErrWeakPassword
	}
	if u.Role != entity.RoleAdmin && u.Role != entity.RoleCommon {
		return entity.User{}, fmt.Errorf("rol %q: %w", u.Role, domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return entity.User{}, fmt.Errorf("usuario %q: %w", u.Username, domain.ErrDuplicate)
		}
	}

	if u.ID == "" {
		u.ID = m.newID()
	}
	m.users = append(m.users, u)
	m.logActivity(actor, entity.ActionAddUser, u.Username, "", "")
	m.persistUsers()
	m.persistActivityLogs()
	return u, nil
}

// DeleteUser elimina una cuenta. Guard de último admin: la operación falla si
// dejaría el sistema sin ningún administrador.
func (m *Manager) DeleteUser(actor, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.users {
		if m.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("usuario %q: %w", id, domain.ErrNotFound)
	}

	if m.users[idx].IsAdmin() {
		admins := 0
		for _, u := range m.users {
			if u.IsAdmin() {
				admins++
			}
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	removed := m.users[idx]
	m.users = append(m.users[:idx], m.users[idx+1:]...)
	m.logActivity(actor, entity.ActionDeleteUser, removed.Username, "", "")
	m.persistUsers()
	m.persistActivityLogs()
	return nil
}

// UpdateUserPassword cambia la contraseña de una cuenta.
func (m *Manager) UpdateUserPassword(actor, id, password string) error {
	if len(password) < minPasswordLen {
		return domain.ErrWeakPassword
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Password = password
			m.logActivity(actor, entity.ActionUpdateUserPassword, m.users[i].Username, "", "")
			m.persistUsers()
			m.persistActivityLogs()
			return nil
		}
	}
	return fmt.Errorf("usuario %q: %w", id, domain.ErrNotFound)
}
