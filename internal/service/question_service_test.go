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

func newQuestionService(repo *memoryQuestionRepo) QuestionService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewQuestionService(repo, validate, zerolog.New(io.Discard))
}

func TestQuestionServiceCreateSanitizesText(t *testing.T) {
	svc := newQuestionService(newMemoryQuestionRepo())

	created, err := svc.Create(context.Background(), dto.QuestionCreateRequest{
		Text: "  <script>alert(1)</script>How do you rate communication?  ",
		Kind: "open",
	})
	require.NoError(t, err)
	require.Equal(t, "How do you rate communication?", created.Text)
}

func TestQuestionServiceCreateRejectsUnknownKind(t *testing.T) {
	svc := newQuestionService(newMemoryQuestionRepo())

	_, err := svc.Create(context.Background(), dto.QuestionCreateRequest{
		Text: "How do you rate communication?",
		Kind: "essay",
	})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestQuestionServiceUpdateLeavesNilFieldsUnchanged(t *testing.T) {
	repo := newMemoryQuestionRepo()
	svc := newQuestionService(repo)

	created, err := svc.Create(context.Background(), dto.QuestionCreateRequest{
		Text:    "Pick a strength",
		Kind:    "multiple-choice",
		Options: []string{"communication", "delivery"},
	})
	require.NoError(t, err)

	newText := "Pick your strongest area"
	updated, err := svc.Update(context.Background(), created.ID, dto.QuestionUpdateRequest{
		Text: &newText,
	})
	require.NoError(t, err)
	require.Equal(t, newText, updated.Text)
	require.Equal(t, "multiple-choice", updated.Kind)
	require.Equal(t, []string{"communication", "delivery"}, updated.Options)
}

func TestQuestionServiceUpdateUnknownID(t *testing.T) {
	svc := newQuestionService(newMemoryQuestionRepo())

	text := "anything"
	_, err := svc.Update(context.Background(), 404, dto.QuestionUpdateRequest{Text: &text})
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionServiceGetUnknownID(t *testing.T) {
	svc := newQuestionService(newMemoryQuestionRepo())

	_, err := svc.Get(context.Background(), 404)
	require.ErrorIs(t, err, ErrQuestionNotFound)
}
