package service

import (
	"context"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/talentpulse/eval360-api/internal/dto"
)

func newEmployeeService(repo *memoryEmployeeRepo) EmployeeService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewEmployeeService(repo, validate, zerolog.New(io.Discard))
}

func TestEmployeeServiceCreateAndList(t *testing.T) {
	svc := newEmployeeService(newMemoryEmployeeRepo())

	created, err := svc.Create(context.Background(), dto.EmployeeCreateRequest{
		Name:       "Ana Torres",
		Position:   "Engineer",
		Department: "Platform",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "Ana Torres", listed[0].Name)
}

func TestEmployeeServiceCreateRequiresFields(t *testing.T) {
	svc := newEmployeeService(newMemoryEmployeeRepo())

	_, err := svc.Create(context.Background(), dto.EmployeeCreateRequest{Name: "Ana Torres"})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestEmployeeServiceUpdatePartial(t *testing.T) {
	svc := newEmployeeService(newMemoryEmployeeRepo())

	created, err := svc.Create(context.Background(), dto.EmployeeCreateRequest{
		Name:       "Ana Torres",
		Position:   "Engineer",
		Department: "Platform",
	})
	require.NoError(t, err)

	position := "Senior Engineer"
	updated, err := svc.Update(context.Background(), created.ID, dto.EmployeeUpdateRequest{
		Position: &position,
	})
	require.NoError(t, err)
	require.Equal(t, "Senior Engineer", updated.Position)
	require.Equal(t, "Ana Torres", updated.Name)
	require.Equal(t, "Platform", updated.Department)
}

func TestEmployeeServiceGetUnknownID(t *testing.T) {
	svc := newEmployeeService(newMemoryEmployeeRepo())

	_, err := svc.Get(context.Background(), 404)
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}
