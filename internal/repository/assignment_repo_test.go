package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/talentpulse/eval360-api/internal/models"
)

func setupAssignmentTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedAssignmentRefs(t *testing.T, db *gorm.DB) (models.Employee, models.Evaluation) {
	t.Helper()
	employee := models.Employee{Name: "Ana Torres", Position: "Engineer", Department: "Platform"}
	require.NoError(t, db.Create(&employee).Error)
	evaluation := models.Evaluation{Period: "Q1 2026", Type: "annual"}
	require.NoError(t, db.Create(&evaluation).Error)
	return employee, evaluation
}

func TestAssignmentRepositoryRoundTripsJSONColumns(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := NewAssignmentRepository(db)
	employee, evaluation := seedAssignmentRefs(t, db)

	assignment := models.EvaluationAssignment{
		EmployeeID:   employee.ID,
		EvaluationID: evaluation.ID,
		QuestionIDs:  []uint{3, 1, 2},
		State:        models.AssignmentStatePending,
		Answers: []models.SubmittedAnswer{
			{QuestionID: 3, Response: "Paris"},
		},
		Score: 33.5,
	}
	require.NoError(t, repo.Create(context.Background(), &assignment))

	fetched, err := repo.GetByID(context.Background(), assignment.ID)
	require.NoError(t, err)
	require.Equal(t, []uint{3, 1, 2}, []uint(fetched.QuestionIDs))
	require.Len(t, fetched.Answers, 1)
	require.Equal(t, "Paris", fetched.Answers[0].Response)
	require.Equal(t, 33.5, fetched.Score)
	require.Equal(t, "Ana Torres", fetched.Employee.Name, "expected employee preloaded")
	require.Equal(t, "Q1 2026", fetched.Evaluation.Period, "expected evaluation preloaded")
}

func TestAssignmentRepositoryGetByIDMissing(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := NewAssignmentRepository(db)

	_, err := repo.GetByID(context.Background(), 999999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAssignmentRepositoryListByEmployeeNewestFirst(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := NewAssignmentRepository(db)
	employee, evaluation := seedAssignmentRefs(t, db)
	other := models.Employee{Name: "Bo Chen", Position: "Designer", Department: "Product"}
	require.NoError(t, db.Create(&other).Error)

	older := models.EvaluationAssignment{
		EmployeeID:   employee.ID,
		EvaluationID: evaluation.ID,
		State:        models.AssignmentStateCompleted,
		CreatedAt:    time.Now().Add(-2 * time.Hour),
	}
	newer := models.EvaluationAssignment{
		EmployeeID:   employee.ID,
		EvaluationID: evaluation.ID,
		State:        models.AssignmentStatePending,
		CreatedAt:    time.Now().Add(-1 * time.Hour),
	}
	unrelated := models.EvaluationAssignment{
		EmployeeID:   other.ID,
		EvaluationID: evaluation.ID,
		State:        models.AssignmentStatePending,
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&unrelated).Error)

	assignments, err := repo.ListByEmployee(context.Background(), employee.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	require.Equal(t, newer.ID, assignments[0].ID, "expected newest assignment first")
	require.Equal(t, older.ID, assignments[1].ID)
}

func TestAssignmentRepositoryUpdatePersistsScore(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := NewAssignmentRepository(db)
	employee, evaluation := seedAssignmentRefs(t, db)

	assignment := models.EvaluationAssignment{
		EmployeeID:   employee.ID,
		EvaluationID: evaluation.ID,
		State:        models.AssignmentStatePending,
	}
	require.NoError(t, repo.Create(context.Background(), &assignment))

	assignment.State = models.AssignmentStateCompleted
	assignment.Score = 75
	assignment.Answers = []models.SubmittedAnswer{{QuestionID: 1, Response: "Paris"}}
	require.NoError(t, repo.Update(context.Background(), &assignment))

	fetched, err := repo.GetByID(context.Background(), assignment.ID)
	require.NoError(t, err)
	require.Equal(t, models.AssignmentStateCompleted, fetched.State)
	require.Equal(t, float64(75), fetched.Score)
	require.Len(t, fetched.Answers, 1)
}
