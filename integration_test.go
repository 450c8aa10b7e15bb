//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare-br/service-shelter/internal/application"
	"github.com/petcare-br/service-shelter/internal/domain"
	"github.com/petcare-br/service-shelter/internal/repository"
)

func seedPetAndTutor(t *testing.T, stack *shelterStack) (*application.PetDTO, *application.TutorDTO) {
	t.Helper()
	ctx := context.Background()

	pet, err := stack.Pets.Create(ctx, application.CreatePetRequest{
		Nome:        "Rex",
		Especie:     "Cachorro",
		Raca:        "SRD",
		Idade:       3,
		DataEntrada: domain.Today(),
	})
	require.NoError(t, err)

	tutor, err := stack.Tutores.Create(ctx, application.TutorRequest{
		Nome:  "Ana",
		Email: "ana@mail.com",
	})
	require.NoError(t, err)
	return pet, tutor
}

// TestAdoptReturnRoundTrip drives the full lifecycle against a real database:
// adopt links pet and tutor and opens an ATIVA record; return closes it and
// frees the pet; a second adoption appends to the history.
func TestAdoptReturnRoundTrip(t *testing.T) {
	stack := setupShelterStack(t)
	defer stack.Cleanup()
	ctx := context.Background()

	pet, tutor := seedPetAndTutor(t, stack)

	adopted, err := stack.Pets.Adopt(ctx, pet.ID, tutor.ID)
	require.NoError(t, err)
	assert.Equal(t, "ADOTADO", adopted.Status)
	require.NotNil(t, adopted.IDTutor)
	assert.Equal(t, tutor.ID, *adopted.IDTutor)

	// Double adoption is rejected.
	_, err = stack.Pets.Adopt(ctx, pet.ID, tutor.ID)
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRule(err))

	returned, err := stack.Pets.Return(ctx, pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "DISPONIVEL", returned.Status)
	assert.Nil(t, returned.IDTutor)

	// History keeps the closed record and grows on re-adoption.
	_, err = stack.Pets.Adopt(ctx, pet.ID, tutor.ID)
	require.NoError(t, err)

	history, err := stack.Adocoes.ListByPet(ctx, pet.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "ATIVA", history[0].Status)
	assert.Equal(t, "ENCERRADA", history[1].Status)
	require.NotNil(t, history[1].DataDevolucao)
}

// TestDeleteCascade verifies the guarded transactional delete: blocked while
// an adoption is ATIVA, then removes cuidados and adocoes with the pet.
func TestDeleteCascade(t *testing.T) {
	stack := setupShelterStack(t)
	defer stack.Cleanup()
	ctx := context.Background()

	pet, tutor := seedPetAndTutor(t, stack)

	_, err := stack.Cuidados.Create(ctx, application.CareRequest{
		IDPet: pet.ID,
		Tipo:  "banho",
		Data:  domain.Today(),
		Custo: 40,
	})
	require.NoError(t, err)

	_, err = stack.Pets.Adopt(ctx, pet.ID, tutor.ID)
	require.NoError(t, err)

	err = stack.Pets.Delete(ctx, pet.ID)
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRule(err))

	_, err = stack.Pets.Return(ctx, pet.ID)
	require.NoError(t, err)

	require.NoError(t, stack.Pets.Delete(ctx, pet.ID))

	_, err = stack.Pets.Get(ctx, pet.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	var adocoes, cuidados int64
	require.NoError(t, stack.DB.Table("adocoes").Where("pet_id = ?", pet.ID).Count(&adocoes).Error)
	require.NoError(t, stack.DB.Table("cuidados").Where("pet_id = ?", pet.ID).Count(&cuidados).Error)
	assert.Zero(t, adocoes)
	assert.Zero(t, cuidados)
}

// TestTutorGuards exercises the unique-email conflict and the linked-pet
// delete guard against real constraints.
func TestTutorGuards(t *testing.T) {
	stack := setupShelterStack(t)
	defer stack.Cleanup()
	ctx := context.Background()

	pet, tutor := seedPetAndTutor(t, stack)

	_, err := stack.Tutores.Create(ctx, application.TutorRequest{
		Nome:  "Outra Ana",
		Email: "ANA@mail.com",
	})
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRule(err))

	_, err = stack.Pets.Adopt(ctx, pet.ID, tutor.ID)
	require.NoError(t, err)

	err = stack.Tutores.Delete(ctx, tutor.ID)
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRule(err))

	_, err = stack.Pets.Return(ctx, pet.ID)
	require.NoError(t, err)
	require.NoError(t, stack.Pets.Delete(ctx, pet.ID))
	require.NoError(t, stack.Tutores.Delete(ctx, tutor.ID))
}

// TestCareHistoryFilters checks the care log against the database-backed
// filters, including normalized tipo lookups.
func TestCareHistoryFilters(t *testing.T) {
	stack := setupShelterStack(t)
	defer stack.Cleanup()
	ctx := context.Background()

	pet, _ := seedPetAndTutor(t, stack)

	_, err := stack.Cuidados.Create(ctx, application.CareRequest{
		IDPet: pet.ID, Tipo: "banho", Data: domain.Today(), Custo: 40,
	})
	require.NoError(t, err)
	_, err = stack.Cuidados.Create(ctx, application.CareRequest{
		IDPet: pet.ID, Tipo: "remédio", Descricao: "Antipulgas", Data: domain.Today(), Custo: 35,
	})
	require.NoError(t, err)

	doPet, err := stack.Cuidados.ListByPet(ctx, pet.ID)
	require.NoError(t, err)
	assert.Len(t, doPet, 2)

	medicacoes, err := stack.Cuidados.ListByPetAndTipo(ctx, pet.ID, "medicação")
	require.NoError(t, err)
	require.Len(t, medicacoes, 1)
	assert.Equal(t, "MEDICACAO", medicacoes[0].Tipo)
}

// TestHistoriesOrderedByDateDescending seeds records on distinct dates, with
// insertion order and created_at deliberately disagreeing with the dates, so
// only date-descending ordering produces the expected result.
func TestHistoriesOrderedByDateDescending(t *testing.T) {
	stack := setupShelterStack(t)
	defer stack.Cleanup()
	ctx := context.Background()

	pet, tutor := seedPetAndTutor(t, stack)

	// Care log: today's record inserted first, yesterday's second.
	hoje := domain.Today()
	ontem := domain.DateOf(time.Now().UTC().AddDate(0, 0, -1))
	_, err := stack.Cuidados.Create(ctx, application.CareRequest{
		IDPet: pet.ID, Tipo: "tosa", Data: hoje, Custo: 60,
	})
	require.NoError(t, err)
	_, err = stack.Cuidados.Create(ctx, application.CareRequest{
		IDPet: pet.ID, Tipo: "banho", Data: ontem, Custo: 40,
	})
	require.NoError(t, err)

	cuidados, err := stack.Cuidados.ListByPet(ctx, pet.ID)
	require.NoError(t, err)
	require.Len(t, cuidados, 2)
	assert.Equal(t, "TOSA", cuidados[0].Tipo)
	assert.Equal(t, "BANHO", cuidados[1].Tipo)

	// Adoption history: two closed intervals, the older adoption date carrying
	// the newer created_at.
	now := time.Now().UTC()
	haUmMes := now.AddDate(0, 0, -30)
	haUmaSemana := now.AddDate(0, 0, -7)
	devolucao := now.AddDate(0, 0, -2)
	require.NoError(t, stack.DB.Create(&repository.AdocaoModel{
		ID: uuid.New(), PetID: pet.ID, TutorID: tutor.ID,
		DataAdocao: haUmaSemana, DataDevolucao: &devolucao,
		Status: "ENCERRADA", CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now,
	}).Error)
	require.NoError(t, stack.DB.Create(&repository.AdocaoModel{
		ID: uuid.New(), PetID: pet.ID, TutorID: tutor.ID,
		DataAdocao: haUmMes, DataDevolucao: &devolucao,
		Status: "ENCERRADA", CreatedAt: now, UpdatedAt: now,
	}).Error)

	history, err := stack.Adocoes.ListByPet(ctx, pet.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, domain.DateOf(haUmaSemana).Equal(history[0].DataAdocao))
	assert.True(t, domain.DateOf(haUmMes).Equal(history[1].DataAdocao))

	porTutor, err := stack.Adocoes.ListByTutor(ctx, tutor.ID)
	require.NoError(t, err)
	require.Len(t, porTutor, 2)
	assert.True(t, domain.DateOf(haUmaSemana).Equal(porTutor[0].DataAdocao))
}
