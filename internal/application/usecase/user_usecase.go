package usecase

import (
	"time"

	"github.com/jstringer1212/plant-review-api/internal/application/auth"
	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/authz"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

// UserUseCase listado/consulta de usuarios y gestión administrativa de rol y estado.
type UserUseCase struct {
	repo  repository.UserRepository
	guard *authz.Guard
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, guard *authz.Guard) *UserUseCase {
	return &UserUseCase{repo: repo, guard: guard}
}

// GetByID obtiene un usuario por ID (representación pública, sin hash).
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateRole cambia el rol de un usuario. Solo admin, y nunca sobre la cuenta
// de administrador principal.
func (uc *UserUseCase) UpdateRole(actor authz.Actor, targetID, role string) (*dto.UserResponse, error) {
	if err := uc.guard.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := uc.guard.CheckLeadAdmin(targetID); err != nil {
		return nil, err
	}
	if authz.ParseRole(role) == authz.RoleUnknown {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateStatus activa o desactiva una cuenta. Mismas reglas que UpdateRole.
func (uc *UserUseCase) UpdateStatus(actor authz.Actor, targetID, status string) (*dto.UserResponse, error) {
	if err := uc.guard.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := uc.guard.CheckLeadAdmin(targetID); err != nil {
		return nil, err
	}
	if status != entity.StatusActive && status != entity.StatusInactive {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Status = status
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
