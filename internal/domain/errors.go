package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso devuelven
// estos centinelas y la capa HTTP los traduce a códigos de estado.
var (
	ErrMissingFields      = errors.New("faltan campos obligatorios")
	ErrInvalidID          = errors.New("identificador inválido")
	ErrInvalidPassword    = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrUserExists         = errors.New("el email ya está registrado")
	ErrCategoryExists     = errors.New("la categoría ya existe")
	ErrProductExists      = errors.New("el producto ya existe en esa categoría")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAccessDenied       = errors.New("acceso denegado")
	ErrAdminOnly          = errors.New("solo ADMIN puede cambiar rol o estado")
	ErrSelfDelete         = errors.New("no puede eliminar su propia cuenta")
	ErrInvalidCredentials = errors.New("email o contraseña inválidos")
	ErrInvalidInput       = errors.New("entrada inválida")
)
