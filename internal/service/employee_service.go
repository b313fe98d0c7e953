package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/talentpulse/eval360-api/internal/dto"
	"github.com/talentpulse/eval360-api/internal/models"
	"github.com/talentpulse/eval360-api/internal/repository"
)

// ErrEmployeeNotFound indicates the requested employee does not exist.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeService exposes employee catalog use cases.
type EmployeeService interface {
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Get(ctx context.Context, id uint) (dto.EmployeeResponse, error)
	Create(ctx context.Context, payload dto.EmployeeCreateRequest) (dto.EmployeeResponse, error)
	Update(ctx context.Context, id uint, payload dto.EmployeeUpdateRequest) (dto.EmployeeResponse, error)
}

type employeeService struct {
	repo      repository.EmployeeRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewEmployeeService builds a new employee service.
func NewEmployeeService(repo repository.EmployeeRepository, validate *validator.Validate, logger zerolog.Logger) EmployeeService {
	return &employeeService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "employee_service").Logger(),
	}
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewEmployeeResponseSlice(employees), nil
}

func (s *employeeService) Get(ctx context.Context, id uint) (dto.EmployeeResponse, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EmployeeResponse{}, ErrEmployeeNotFound
		}
		return dto.EmployeeResponse{}, err
	}

	return dto.NewEmployeeResponse(employee), nil
}

func (s *employeeService) Create(ctx context.Context, payload dto.EmployeeCreateRequest) (dto.EmployeeResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EmployeeResponse{}, err
	}

	employee := models.Employee{
		Name:       payload.Name,
		Position:   payload.Position,
		Department: payload.Department,
		ManagerID:  payload.ManagerID,
	}

	if err := s.repo.Create(ctx, &employee); err != nil {
		return dto.EmployeeResponse{}, err
	}

	s.logger.Info().Uint("employee_id", employee.ID).Msg("employee created")

	return dto.NewEmployeeResponse(employee), nil
}

func (s *employeeService) Update(ctx context.Context, id uint, payload dto.EmployeeUpdateRequest) (dto.EmployeeResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EmployeeResponse{}, err
	}

	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EmployeeResponse{}, ErrEmployeeNotFound
		}
		return dto.EmployeeResponse{}, err
	}

	if payload.Name != nil {
		employee.Name = *payload.Name
	}

	if payload.Position != nil {
		employee.Position = *payload.Position
	}

	if payload.Department != nil {
		employee.Department = *payload.Department
	}

	if payload.ManagerID != nil {
		employee.ManagerID = payload.ManagerID
	}

	if err := s.repo.Update(ctx, &employee); err != nil {
		return dto.EmployeeResponse{}, err
	}

	s.logger.Info().Uint("employee_id", employee.ID).Msg("employee updated")

	return dto.NewEmployeeResponse(employee), nil
}
