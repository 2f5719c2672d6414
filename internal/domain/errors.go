package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrInUse bloquea la eliminación de una categoría/localización/proveedor
	// referenciado por algún producto.
	ErrInUse = errors.New("recurso en uso por productos")
	// ErrLastAdmin bloquea la eliminación del único administrador del sistema.
	ErrLastAdmin = errors.New("no se puede eliminar el único administrador")
	// ErrWeakPassword: la contraseña no cumple el largo mínimo (6 caracteres).
	ErrWeakPassword = errors.New("la contraseña debe tener al menos 6 caracteres")
)
