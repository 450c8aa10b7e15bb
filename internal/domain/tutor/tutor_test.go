package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare-br/service-shelter/internal/domain"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@mail.com", NormalizeEmail("  Ana@Mail.COM "))
}

func TestNewTutor_StoresNormalizedEmail(t *testing.T) {
	tut, err := NewTutor("Ana", "11 99999-0000", " Ana@Mail.com ", "Rua A, 1")
	require.NoError(t, err)
	assert.Equal(t, "ana@mail.com", tut.Email())
}

func TestNewTutor_Validation(t *testing.T) {
	_, err := NewTutor("", "", "", "")
	require.Error(t, err)

	var domErr *domain.DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, domain.KindValidation, domErr.Kind)
	assert.Contains(t, domErr.FieldErrors, "nome")
	assert.Contains(t, domErr.FieldErrors, "email")

	_, err = NewTutor("Ana", "", "sem-arroba", "")
	require.ErrorAs(t, err, &domErr)
	assert.Contains(t, domErr.FieldErrors, "email")
}

func TestUpdate_RenormalizesEmail(t *testing.T) {
	tut, err := NewTutor("Ana", "", "ana@mail.com", "")
	require.NoError(t, err)

	require.NoError(t, tut.Update("Ana Souza", "11 98888-0000", "ANA.SOUZA@mail.com", "Rua B, 2"))
	assert.Equal(t, "ana.souza@mail.com", tut.Email())
	assert.Equal(t, "Ana Souza", tut.Nome())
}
