package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/policy"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// UserUseCase aplica las reglas de negocio y de acceso sobre usuarios.
// El registro y el login viven en el paquete auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios según la visibilidad del actor:
// ADMIN ve todos (y puede filtrar por rol); DEALER se ve a sí mismo y a todos
// los CLIENT; cualquier otro actor solo se ve a sí mismo.
func (uc *UserUseCase) List(actor policy.Actor, in dto.ListUsersRequest) (*dto.UserListResponse, error) {
	in.DefaultPage()

	filter := repository.UserFilter{Search: in.Search}
	switch actor.Role {
	case entity.RoleAdmin:
		filter.Role = in.Role
	case entity.RoleDealer:
		filter.ScopeID = actor.ID
		filter.ScopeRole = entity.RoleClient
	default:
		filter.ScopeID = actor.ID
	}

	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	users, err := uc.repo.List(filter, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Total: total,
		Page:  in.Page,
		Pages: (total + in.Limit - 1) / in.Limit,
	}, nil
}

// GetByID obtiene un usuario aplicando la política de acceso.
func (uc *UserUseCase) GetByID(actor policy.Actor, id string) (*dto.UserResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrInvalidID
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanAccessUser(actor, user) {
		return nil, domain.ErrAccessDenied
	}
	return toUserResponse(user), nil
}

// Me devuelve el usuario del propio actor (sin chequeo de política: siempre self).
func (uc *UserUseCase) Me(actorID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update aplica un merge parcial sobre name/email/role/active.
// Cambiar role o active exige actor ADMIN.
func (uc *UserUseCase) Update(actor policy.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrInvalidID
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanAccessUser(actor, user) {
		return nil, domain.ErrAccessDenied
	}
	if actor.Role != entity.RoleAdmin && (in.Role != nil || in.Active != nil) {
		return nil, domain.ErrAdminOnly
	}
	if in.Role != nil && !entity.ValidRole(*in.Role) {
		return nil, domain.ErrInvalidInput
	}

	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdatePassword rehashea y persiste la nueva contraseña (mínimo 6 caracteres).
func (uc *UserUseCase) UpdatePassword(actor policy.Actor, id, password string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrInvalidID
	}
	if len(password) < 6 {
		return domain.ErrInvalidPassword
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if !policy.CanAccessUser(actor, user) {
		return domain.ErrAccessDenied
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// Delete elimina un usuario. Nadie elimina su propia cuenta; la regla de
// acceso es la estricta de eliminación (CanDeleteUser), no la general.
func (uc *UserUseCase) Delete(actor policy.Actor, id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrInvalidID
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if actor.ID == user.ID {
		return domain.ErrSelfDelete
	}
	if !policy.CanDeleteUser(actor, user) {
		return domain.ErrAccessDenied
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
