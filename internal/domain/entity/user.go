package entity

// Roles de usuario.
const (
	RoleAdmin  = "admin"
	RoleCommon = "common"
)

// User es una cuenta de la aplicación. Username es único sin distinguir
// mayúsculas. Password se guarda y compara en texto plano: endurecer la
// autenticación está explícitamente fuera del alcance del producto.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // RoleAdmin | RoleCommon
}

// IsAdmin indica si la cuenta tiene rol de administrador.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
