package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UserFilter describe el alcance de un listado de usuarios.
// ScopeID/ScopeRole implementan la visibilidad por rol del actor:
// si ScopeID no es vacío, el listado se restringe a (id = ScopeID) o,
// cuando ScopeRole también está presente, a (id = ScopeID OR role = ScopeRole).
type UserFilter struct {
	Role      string // filtro exacto por rol (solo listados de ADMIN)
	Search    string // coincide con name o email, sin distinguir mayúsculas
	ScopeID   string
	ScopeRole string
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(filter UserFilter, limit, offset int) ([]*entity.User, error)
	Count(filter UserFilter) (int, error)
	Delete(id string) error
}
