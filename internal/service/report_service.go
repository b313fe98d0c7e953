package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/talentpulse/eval360-api/internal/dto"
	"github.com/talentpulse/eval360-api/internal/repository"
)

// ReportService produces the read-only per-employee evaluation projection.
type ReportService interface {
	EmployeeReport(ctx context.Context, employeeID uint) (dto.EmployeeReportResponse, error)
}

type reportService struct {
	assignments repository.AssignmentRepository
	employees   repository.EmployeeRepository
	questions   repository.QuestionRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
}

// NewReportService builds the report reader.
func NewReportService(assignments repository.AssignmentRepository, employees repository.EmployeeRepository, questions repository.QuestionRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) ReportService {
	return &reportService{
		assignments: assignments,
		employees:   employees,
		questions:   questions,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "report_service").Logger(),
	}
}

// EmployeeReport returns every assignment for the employee with questions
// populated. Results are cached; cache failures are logged and the report is
// rebuilt from the store.
func (s *reportService) EmployeeReport(ctx context.Context, employeeID uint) (dto.EmployeeReportResponse, error) {
	cacheKey := fmt.Sprintf("report:employee:%d", employeeID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.EmployeeReportResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Uint("employee_id", employeeID).Msg("report cache hit")
				return response, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("failed to read report cache")
		}
	}

	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EmployeeReportResponse{}, ErrEmployeeNotFound
		}
		return dto.EmployeeReportResponse{}, err
	}

	assignments, err := s.assignments.ListByEmployee(ctx, employeeID)
	if err != nil {
		return dto.EmployeeReportResponse{}, err
	}

	entries := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		questions, err := orderedQuestions(ctx, s.questions, assignment.QuestionIDs)
		if err != nil {
			return dto.EmployeeReportResponse{}, err
		}
		entries = append(entries, dto.NewAssignmentResponseWithQuestions(assignment, questions))
	}

	response := dto.EmployeeReportResponse{
		EmployeeID:  employeeID,
		Assignments: entries,
	}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store report cache")
			}
		}
	}

	return response, nil
}
