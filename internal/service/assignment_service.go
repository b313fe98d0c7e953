package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/talentpulse/eval360-api/internal/dto"
	"github.com/talentpulse/eval360-api/internal/models"
	"github.com/talentpulse/eval360-api/internal/repository"
)

// ErrAssignmentNotFound indicates the requested evaluation assignment does not exist.
var ErrAssignmentNotFound = errors.New("evaluation assignment not found")

// AssignmentService exposes the evaluation assignment use cases: creating an
// assignment, closing it, and scoring submitted response batches.
type AssignmentService interface {
	Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
	Get(ctx context.Context, id uint) (dto.AssignmentResponse, error)
	Complete(ctx context.Context, id uint) (dto.AssignmentResponse, error)
	SubmitResponses(ctx context.Context, id uint, payload dto.SubmitResponsesRequest) (dto.AssignmentResponse, error)
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	employees   repository.EmployeeRepository
	evaluations repository.EvaluationRepository
	questions   repository.QuestionRepository
	answerKeys  repository.AnswerKeyRepository
	validator   *validator.Validate
	events      EventPublisher
	logger      zerolog.Logger
	tracer      trace.Tracer
}

// NewAssignmentService builds a new assignment service.
func NewAssignmentService(
	assignments repository.AssignmentRepository,
	employees repository.EmployeeRepository,
	evaluations repository.EvaluationRepository,
	questions repository.QuestionRepository,
	answerKeys repository.AnswerKeyRepository,
	validate *validator.Validate,
	events EventPublisher,
	logger zerolog.Logger,
) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		employees:   employees,
		evaluations: evaluations,
		questions:   questions,
		answerKeys:  answerKeys,
		validator:   validate,
		events:      events,
		logger:      logger.With().Str("component", "assignment_service").Logger(),
		tracer:      otel.Tracer("github.com/talentpulse/eval360-api/internal/service/assignment"),
	}
}

func (s *assignmentService) Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, payload.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrEmployeeNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	if _, err := s.evaluations.GetByID(ctx, payload.EvaluationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrEvaluationNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	assignment := models.EvaluationAssignment{
		EmployeeID:   payload.EmployeeID,
		EvaluationID: payload.EvaluationID,
		QuestionIDs:  payload.QuestionIDs,
		State:        models.AssignmentStatePending,
		Answers:      []models.SubmittedAnswer{},
		Score:        0,
	}

	if err := s.assignments.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().
		Uint("assignment_id", assignment.ID).
		Uint("employee_id", assignment.EmployeeID).
		Int("question_count", len(assignment.QuestionIDs)).
		Msg("evaluation assignment created")

	response := dto.NewAssignmentResponse(assignment)
	s.publish(EventAssignmentCreated, response)

	return response, nil
}

func (s *assignmentService) Get(ctx context.Context, id uint) (dto.AssignmentResponse, error) {
	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	questions, err := orderedQuestions(ctx, s.questions, assignment.QuestionIDs)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	return dto.NewAssignmentResponseWithQuestions(assignment, questions), nil
}

// Complete closes the assignment. It is idempotent: completing an already
// completed assignment re-applies the same state without error, and it never
// touches the score or the stored answers.
func (s *assignmentService) Complete(ctx context.Context, id uint) (dto.AssignmentResponse, error) {
	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	assignment.State = models.AssignmentStateCompleted

	if err := s.assignments.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().Uint("assignment_id", assignment.ID).Msg("evaluation assignment completed")

	response := dto.NewAssignmentResponse(assignment)
	s.publish(EventAssignmentCompleted, response)

	return response, nil
}

// SubmitResponses scores a response batch against the stored answer keys.
// The batch replaces any previously stored answers wholesale and the score is
// recomputed from scratch; an unmatched question simply contributes zero.
func (s *assignmentService) SubmitResponses(ctx context.Context, id uint, payload dto.SubmitResponsesRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	ctx, span := s.tracer.Start(ctx, "assignment.score",
		trace.WithAttributes(
			attribute.Int("assignment.id", int(id)),
			attribute.Int("responses.count", len(payload.Responses)),
		))
	defer span.End()

	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	submitted := make([]models.SubmittedAnswer, 0, len(payload.Responses))
	questionIDs := make([]uint, 0, len(payload.Responses))
	for _, item := range payload.Responses {
		submitted = append(submitted, models.SubmittedAnswer{
			QuestionID: item.QuestionID,
			Response:   item.Response,
		})
		questionIDs = append(questionIDs, item.QuestionID)
	}

	keys, err := s.answerKeys.ListByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	assignment.Answers = submitted
	assignment.Score = scoreBatch(submitted, keys, assignment.QuestionIDs)

	if err := s.assignments.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	span.SetAttributes(attribute.Float64("assignment.score", assignment.Score))
	s.logger.Info().
		Uint("assignment_id", assignment.ID).
		Float64("score", assignment.Score).
		Int("answers", len(submitted)).
		Msg("evaluation assignment scored")

	questions, err := orderedQuestions(ctx, s.questions, assignment.QuestionIDs)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	response := dto.NewAssignmentResponseWithQuestions(assignment, questions)
	s.publish(EventAssignmentScored, response)

	return response, nil
}

// scoreBatch compares submitted responses against the answer keys with exact,
// case-sensitive equality and converts the result to a percentage of the
// assigned question set. Only assigned questions are scorable and each counts
// at most once, so duplicate responses or responses for unassigned questions
// can never push the score past 100. The first key encountered per question
// wins; with the uniqueness index on answer keys duplicates cannot occur in
// practice. A zero-question assignment scores zero rather than dividing by
// zero.
func scoreBatch(submitted []models.SubmittedAnswer, keys []models.AnswerKey, questionIDs []uint) float64 {
	if len(questionIDs) == 0 {
		return 0
	}

	assigned := make(map[uint]struct{}, len(questionIDs))
	for _, id := range questionIDs {
		assigned[id] = struct{}{}
	}

	expected := make(map[uint]string, len(keys))
	for _, key := range keys {
		if _, exists := expected[key.QuestionID]; !exists {
			expected[key.QuestionID] = key.Response
		}
	}

	correct := make(map[uint]struct{}, len(questionIDs))
	for _, answer := range submitted {
		if _, ok := assigned[answer.QuestionID]; !ok {
			continue
		}
		if response, ok := expected[answer.QuestionID]; ok && response == answer.Response {
			correct[answer.QuestionID] = struct{}{}
		}
	}

	return float64(len(correct)*100) / float64(len(questionIDs))
}

// orderedQuestions loads the full question records for the assigned IDs,
// preserving the assignment order. IDs that no longer resolve are skipped.
func orderedQuestions(ctx context.Context, repo repository.QuestionRepository, ids []uint) ([]models.Question, error) {
	questions, err := repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	ordered := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if question, ok := byID[id]; ok {
			ordered = append(ordered, question)
		}
	}

	return ordered, nil
}

func (s *assignmentService) publish(event string, payload interface{}) {
	if s.events != nil {
		s.events.Publish(event, payload)
	}
}
