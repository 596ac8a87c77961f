package dto

import "time"

// CreateUserRequest entrada para registrar un usuario.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"` // opcional; por defecto CLIENT
}

// AuthRequest entrada para autenticación.
type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest entrada para actualizar un usuario (merge parcial).
// Role y Active solo pueden venir de un actor ADMIN.
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

// UpdatePasswordRequest entrada para cambiar la contraseña.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// ListUsersRequest filtros del listado.
type ListUsersRequest struct {
	PageRequest
	Role   string `query:"role"`   // solo surte efecto para actores ADMIN
	Search string `query:"search"` // coincide con name o email
}

// UserResponse salida de un usuario. Nunca incluye el hash de contraseña.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// AuthResponse usuario autenticado + token firmado.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
