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
	favUserID  = "00000000-0000-0000-0000-000000000001"
	favPlantID = "00000000-0000-0000-0000-0000000000b1"
)

func favSetup() (*usecase.FavoriteUseCase, *fakeFavoriteRepo) {
	plant := &entity.Plant{
		ID:    favPlantID,
		CName: "Monstera",
		SName: "Monstera deliciosa",
	}
	favRepo := newFakeFavoriteRepo()
	return usecase.NewFavoriteUseCase(favRepo, newFakePlantRepo(plant)), favRepo
}

func favActor() authz.Actor {
	return authz.Actor{UserID: favUserID, Role: authz.RoleUser}
}

// Round-trip completo del toggle: marcar, conflicto al repetir, desmarcar,
// conflicto al desmarcar de nuevo.
func TestToggle_RoundTrip(t *testing.T) {
	uc, _ := favSetup()
	actor := favActor()

	// Marcar: crea la fila y responde el favorito.
	resp, err := uc.Toggle(actor, favPlantID, true)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, favUserID, resp.UserID)
	assert.Equal(t, favPlantID, resp.PlantID)
	assert.True(t, resp.IsFavorite)

	// Marcar de nuevo: conflicto, el cliente revierte su update optimista.
	_, err = uc.Toggle(actor, favPlantID, true)
	assert.ErrorIs(t, err, domain.ErrAlreadyFavorited)

	// Desmarcar: elimina la fila, sin cuerpo de respuesta.
	resp, err = uc.Toggle(actor, favPlantID, false)
	require.NoError(t, err)
	assert.Nil(t, resp)

	// Desmarcar de nuevo: no había fila.
	_, err = uc.Toggle(actor, favPlantID, false)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}

// Planta inexistente → ErrNotFound antes de tocar favoritos.
func TestToggle_PlantaInexistente(t *testing.T) {
	uc, favRepo := favSetup()

	_, err := uc.Toggle(favActor(), "no-existe", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, favRepo.favs, "no debe quedar fila de favorito")
}

// Los favoritos de un usuario no se mezclan con los de otro.
func TestToggle_AisladoPorUsuario(t *testing.T) {
	uc, _ := favSetup()
	otro := authz.Actor{UserID: "00000000-0000-0000-0000-000000000002", Role: authz.RoleUser}

	_, err := uc.Toggle(favActor(), favPlantID, true)
	require.NoError(t, err)

	// El otro usuario puede marcar la misma planta.
	_, err = uc.Toggle(otro, favPlantID, true)
	require.NoError(t, err)

	// Y desmarcarla sin afectar al primero.
	_, err = uc.Toggle(otro, favPlantID, false)
	require.NoError(t, err)

	list, err := uc.ListByUser(favActor())
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, favUserID, list.Items[0].UserID)
}

func TestRemove_SinFila(t *testing.T) {
	uc, _ := favSetup()
	err := uc.Remove(favActor(), favPlantID)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}

func TestListByUser_Vacio(t *testing.T) {
	uc, _ := favSetup()
	list, err := uc.ListByUser(favActor())
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
