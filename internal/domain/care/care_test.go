package care

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare-br/service-shelter/internal/domain"
)

func ontem() domain.Date {
	return domain.DateOf(time.Now().UTC().AddDate(0, 0, -1))
}

func TestNewCare_Valid(t *testing.T) {
	c, err := NewCare(uuid.New(), TypeVaccine, "  V10, primeira dose  ", ontem(), 120.50)
	require.NoError(t, err)

	assert.Equal(t, TypeVaccine, c.Tipo())
	assert.Equal(t, "V10, primeira dose", c.Descricao())
	assert.Equal(t, 120.50, c.Custo())
}

func TestNewCare_FutureDate(t *testing.T) {
	amanha := domain.DateOf(time.Now().UTC().AddDate(0, 0, 1))
	_, err := NewCare(uuid.New(), TypeBath, "", amanha, 0)
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRule(err))
}

func TestNewCare_TodayAllowed(t *testing.T) {
	_, err := NewCare(uuid.New(), TypeBath, "", domain.Today(), 0)
	require.NoError(t, err)
}

func TestNewCare_NegativeCost(t *testing.T) {
	_, err := NewCare(uuid.New(), TypeBath, "", ontem(), -1)
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRule(err))
}

func TestNewCare_DescriptionRequiredByType(t *testing.T) {
	// Bath: no description needed.
	_, err := NewCare(uuid.New(), TypeBath, "", ontem(), 0)
	require.NoError(t, err)

	// Medication without description fails; whitespace-only counts as empty.
	_, err = NewCare(uuid.New(), TypeMedication, "   ", ontem(), 0)
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRule(err))

	_, err = NewCare(uuid.New(), TypeMedication, "Antipulgas mensal", ontem(), 35)
	require.NoError(t, err)
}

func TestUpdate_Revalidates(t *testing.T) {
	c, err := NewCare(uuid.New(), TypeBath, "", ontem(), 40)
	require.NoError(t, err)

	err = c.Update(c.PetID(), TypeVaccine, "", ontem(), 40)
	require.Error(t, err)
	assert.True(t, domain.IsBusinessRule(err))

	require.NoError(t, c.Update(c.PetID(), TypeVaccine, "Antirrábica", ontem(), 80))
	assert.Equal(t, TypeVaccine, c.Tipo())
	assert.Equal(t, "Antirrábica", c.Descricao())
}
