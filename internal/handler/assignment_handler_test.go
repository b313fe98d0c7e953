package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/talentpulse/eval360-api/internal/config"
	"github.com/talentpulse/eval360-api/internal/dto"
	"github.com/talentpulse/eval360-api/internal/handler"
	"github.com/talentpulse/eval360-api/internal/models"
	"github.com/talentpulse/eval360-api/internal/repository"
	"github.com/talentpulse/eval360-api/internal/router"
	"github.com/talentpulse/eval360-api/internal/service"
)

// testIdentity is injected in place of the JWT middleware so each request can
// impersonate a role without minting tokens.
type testIdentity struct {
	userID uint
	role   string
}

func setupTestApp(t *testing.T, identity *testIdentity) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Evaluation{},
		&models.Question{},
		&models.AnswerKey{},
		&models.EvaluationAssignment{},
	))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerKeyRepo := repository.NewAnswerKeyRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	authService := service.NewAuthService(userRepo, validate, "test-secret", time.Hour, logger)
	employeeService := service.NewEmployeeService(employeeRepo, validate, logger)
	evaluationService := service.NewEvaluationService(evaluationRepo, validate, logger)
	questionService := service.NewQuestionService(questionRepo, validate, logger)
	answerKeyService := service.NewAnswerKeyService(answerKeyRepo, questionRepo, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, employeeRepo, evaluationRepo, questionRepo, answerKeyRepo, validate, nil, logger)
	reportService := service.NewReportService(assignmentRepo, employeeRepo, questionRepo, nil, time.Minute, logger)

	app := fiber.New()

	router.Register(app, config.Config{
		AppName:        "eval360-test",
		JWTSecret:      "test-secret",
		AuthRateLimit:  100,
		AuthRateWindow: time.Minute,
	}, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authService, logger),
		EmployeeHandler:   handler.NewEmployeeHandler(employeeService, logger),
		EvaluationHandler: handler.NewEvaluationHandler(evaluationService, logger),
		QuestionHandler:   handler.NewQuestionHandler(questionService, logger),
		AnswerKeyHandler:  handler.NewAnswerKeyHandler(answerKeyService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		ReportHandler:     handler.NewReportHandler(reportService, logger),
		JWTMiddleware: func(c *fiber.Ctx) error {
			c.Locals("user_id", identity.userID)
			c.Locals("user_role", identity.role)
			return c.Next()
		},
	})

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}

type assignmentEnvelope struct {
	Success bool                   `json:"success"`
	Data    dto.AssignmentResponse `json:"data"`
	Message string                 `json:"message"`
}

func seedEvaluationSetup(t *testing.T, app *fiber.App) (employeeID, evaluationID, questionID uint) {
	t.Helper()

	var employeeResp struct {
		Data dto.EmployeeResponse `json:"data"`
	}
	resp := doJSON(t, app, "POST", "/api/v1/employees", dto.EmployeeCreateRequest{
		Name:       "Ana Torres",
		Position:   "Engineer",
		Department: "Platform",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decodeResponse(t, resp, &employeeResp)

	var evaluationResp struct {
		Data dto.EvaluationResponse `json:"data"`
	}
	resp = doJSON(t, app, "POST", "/api/v1/evaluations", dto.EvaluationCreateRequest{
		Period: "Q1 2026",
		Type:   "annual",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decodeResponse(t, resp, &evaluationResp)

	var questionResp struct {
		Data dto.QuestionResponse `json:"data"`
	}
	resp = doJSON(t, app, "POST", "/api/v1/questions", dto.QuestionCreateRequest{
		Text: "What is the capital of France?",
		Kind: "open",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decodeResponse(t, resp, &questionResp)

	resp = doJSON(t, app, "POST", "/api/v1/answers", dto.AnswerKeyCreateRequest{
		QuestionID: questionResp.Data.ID,
		Response:   "Paris",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	return employeeResp.Data.ID, evaluationResp.Data.ID, questionResp.Data.ID
}

func TestAssignmentLifecycle(t *testing.T) {
	identity := &testIdentity{userID: 1, role: models.RoleAdmin}
	app := setupTestApp(t, identity)
	employeeID, evaluationID, questionID := seedEvaluationSetup(t, app)

	resp := doJSON(t, app, "POST", "/api/v1/evaluation-assignments", dto.AssignmentCreateRequest{
		EmployeeID:   employeeID,
		EvaluationID: evaluationID,
		QuestionIDs:  []uint{questionID},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created assignmentEnvelope
	decodeResponse(t, resp, &created)
	require.True(t, created.Success)
	require.Equal(t, "evaluation assignment created", created.Message)
	require.Equal(t, "pending", created.Data.State)
	require.Zero(t, created.Data.Score)

	assignmentPath := "/api/v1/evaluation-assignments/" + itoa(created.Data.ID)

	resp = doJSON(t, app, "GET", assignmentPath, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched assignmentEnvelope
	decodeResponse(t, resp, &fetched)
	require.Len(t, fetched.Data.Questions, 1)
	require.Equal(t, "What is the capital of France?", fetched.Data.Questions[0].Text)

	resp = doJSON(t, app, "POST", assignmentPath+"/respond", dto.SubmitResponsesRequest{
		Responses: []dto.ResponseItem{{QuestionID: questionID, Response: "Paris"}},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var scored assignmentEnvelope
	decodeResponse(t, resp, &scored)
	require.Equal(t, "evaluation responses scored", scored.Message)
	require.Equal(t, float64(100), scored.Data.Score)

	resp = doJSON(t, app, "POST", assignmentPath+"/submit", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var completed assignmentEnvelope
	decodeResponse(t, resp, &completed)
	require.Equal(t, "completed", completed.Data.State)
	require.Equal(t, float64(100), completed.Data.Score, "completing must not reset the score")
}

func TestAssignmentCreateForbiddenForEmployees(t *testing.T) {
	identity := &testIdentity{userID: 1, role: models.RoleEmployee}
	app := setupTestApp(t, identity)

	resp := doJSON(t, app, "POST", "/api/v1/evaluation-assignments", dto.AssignmentCreateRequest{
		EmployeeID:   1,
		EvaluationID: 1,
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &envelope)
	require.False(t, envelope.Success)
	require.Equal(t, "insufficient permissions", envelope.Message)
}

func TestAssignmentCreateUnknownEmployee(t *testing.T) {
	identity := &testIdentity{userID: 1, role: models.RoleAdmin}
	app := setupTestApp(t, identity)

	resp := doJSON(t, app, "POST", "/api/v1/evaluation-assignments", dto.AssignmentCreateRequest{
		EmployeeID:   987654,
		EvaluationID: 987654,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAssignmentGetInvalidID(t *testing.T) {
	identity := &testIdentity{userID: 1, role: models.RoleAdmin}
	app := setupTestApp(t, identity)

	resp := doJSON(t, app, "GET", "/api/v1/evaluation-assignments/not-a-number", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAssignmentRespondUnknownID(t *testing.T) {
	identity := &testIdentity{userID: 1, role: models.RoleAdmin}
	app := setupTestApp(t, identity)

	resp := doJSON(t, app, "POST", "/api/v1/evaluation-assignments/987654/respond", dto.SubmitResponsesRequest{
		Responses: []dto.ResponseItem{{QuestionID: 1, Response: "Paris"}},
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEmployeeReportEndpoint(t *testing.T) {
	identity := &testIdentity{userID: 1, role: models.RoleAdmin}
	app := setupTestApp(t, identity)
	employeeID, evaluationID, questionID := seedEvaluationSetup(t, app)

	resp := doJSON(t, app, "POST", "/api/v1/evaluation-assignments", dto.AssignmentCreateRequest{
		EmployeeID:   employeeID,
		EvaluationID: evaluationID,
		QuestionIDs:  []uint{questionID},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = doJSON(t, app, "GET", "/api/v1/reports/evaluation/employee/"+itoa(employeeID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report struct {
		Success bool                       `json:"success"`
		Data    dto.EmployeeReportResponse `json:"data"`
	}
	decodeResponse(t, resp, &report)
	require.True(t, report.Success)
	require.Equal(t, employeeID, report.Data.EmployeeID)
	require.Len(t, report.Data.Assignments, 1)
	require.Len(t, report.Data.Assignments[0].Questions, 1)
}

func TestAnswerKeyDuplicateConflict(t *testing.T) {
	identity := &testIdentity{userID: 1, role: models.RoleAdmin}
	app := setupTestApp(t, identity)
	_, _, questionID := seedEvaluationSetup(t, app)

	resp := doJSON(t, app, "POST", "/api/v1/answers", dto.AnswerKeyCreateRequest{
		QuestionID: questionID,
		Response:   "Lyon",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
