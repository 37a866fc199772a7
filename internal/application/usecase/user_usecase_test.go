package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstringer1212/plant-review-api/internal/application/usecase"
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/authz"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
)

const (
	leadID   = "00000000-0000-0000-0000-0000000000aa"
	memberID = "00000000-0000-0000-0000-000000000003"
)

func userSetup() (*usecase.UserUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo(
		&entity.User{ID: leadID, Email: "lead@example.com", Role: entity.RoleAdmin, Status: entity.StatusActive},
		&entity.User{ID: memberID, Email: "member@example.com", Role: entity.RoleUser, Status: entity.StatusActive},
	)
	return usecase.NewUserUseCase(repo, authz.NewGuard(leadID)), repo
}

func leadActor() authz.Actor { return authz.Actor{UserID: leadID, Role: authz.RoleAdmin} }

// ── UpdateRole ───────────────────────────────────────────────────────────────

func TestUpdateRole_AdminPromueveUsuario(t *testing.T) {
	uc, repo := userSetup()

	resp, err := uc.UpdateRole(leadActor(), memberID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)

	stored, _ := repo.GetByID(memberID)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
}

func TestUpdateRole_NoAdminRechazado(t *testing.T) {
	uc, _ := userSetup()
	actor := authz.Actor{UserID: memberID, Role: authz.RoleUser}

	_, err := uc.UpdateRole(actor, memberID, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// La cuenta de administrador principal es intocable, incluso para sí misma.
func TestUpdateRole_LeadAdminProtegido(t *testing.T) {
	uc, repo := userSetup()

	_, err := uc.UpdateRole(leadActor(), leadID, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := repo.GetByID(leadID)
	assert.Equal(t, entity.RoleAdmin, stored.Role, "el rol del lead admin no debe cambiar")
}

func TestUpdateRole_RolFueraDelEnum(t *testing.T) {
	uc, _ := userSetup()

	_, err := uc.UpdateRole(leadActor(), memberID, "superadmin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateRole_UsuarioInexistente(t *testing.T) {
	uc, _ := userSetup()

	_, err := uc.UpdateRole(leadActor(), "no-existe", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ── UpdateStatus ─────────────────────────────────────────────────────────────

func TestUpdateStatus_AdminDesactivaUsuario(t *testing.T) {
	uc, repo := userSetup()

	resp, err := uc.UpdateStatus(leadActor(), memberID, entity.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, resp.Status)

	stored, _ := repo.GetByID(memberID)
	assert.Equal(t, entity.StatusInactive, stored.Status)
}

func TestUpdateStatus_LeadAdminProtegido(t *testing.T) {
	uc, _ := userSetup()

	_, err := uc.UpdateStatus(leadActor(), leadID, entity.StatusInactive)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _ := userSetup()

	_, err := uc.UpdateStatus(leadActor(), memberID, "suspendido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Lecturas públicas ────────────────────────────────────────────────────────

// GetByID devuelve la representación pública, nunca el hash del password.
func TestUserGetByID_SinHash(t *testing.T) {
	uc, repo := userSetup()
	stored, _ := repo.GetByID(memberID)
	stored.PasswordHash = "$2a$10$hash-que-no-debe-salir"

	resp, err := uc.GetByID(memberID)
	require.NoError(t, err)
	assert.Equal(t, memberID, resp.ID)
	assert.Equal(t, "member@example.com", resp.Email)
}

func TestUserGetByID_Inexistente(t *testing.T) {
	uc, _ := userSetup()

	resp, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
