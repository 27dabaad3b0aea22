package game

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"quizmaster/models"
	"quizmaster/repository"
	"quizmaster/store"
)

func newTestManager(t *testing.T, questions []models.Question) (*Manager, *repository.Repository) {
	t.Helper()
	repo := repository.New(store.NewMemory())
	if err := repo.SaveQuestions(questions); err != nil {
		t.Fatalf("save questions: %v", err)
	}
	return NewManager(repo), repo
}

func phaseQuestions(phase, count int) []models.Question {
	questions := make([]models.Question, count)
	for i := range questions {
		questions[i] = models.Question{
			ID:           fmt.Sprintf("p%d-q%d", phase, i+1),
			Text:         fmt.Sprintf("Pergunta %d", i+1),
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: 0,
			Phase:        phase,
			Difficulty:   "Fácil",
		}
	}
	return questions
}

func TestStartFailsWhenPhaseIncomplete(t *testing.T) {
	m, _ := newTestManager(t, phaseQuestions(1, 14))

	_, err := m.Start("u1", 1)
	if !errors.Is(err, ErrContentIncomplete) {
		t.Fatalf("expected ErrContentIncomplete, got %v", err)
	}

	view := m.State("u1")
	if view.State != StateNotStarted {
		t.Fatalf("failed start must leave the session untouched, got state %s", view.State)
	}
}

func TestStartSelectsExactlyFifteen(t *testing.T) {
	// 20 questions persisted; the session draws the first 15 in store order.
	m, _ := newTestManager(t, phaseQuestions(1, 20))

	view, err := m.Start("u1", 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if view.State != StateInProgress {
		t.Fatalf("expected in_progress, got %s", view.State)
	}
	if view.TotalQuestions != QuestionsPerPhase {
		t.Fatalf("expected %d questions, got %d", QuestionsPerPhase, view.TotalQuestions)
	}
	if view.Question == nil || view.Question.ID != "p1-q1" {
		t.Fatalf("expected first question in store order, got %+v", view.Question)
	}
}

func TestStartIgnoresOtherPhases(t *testing.T) {
	bank := append(phaseQuestions(2, 30), phaseQuestions(1, 10)...)
	m, _ := newTestManager(t, bank)

	if _, err := m.Start("u1", 1); !errors.Is(err, ErrContentIncomplete) {
		t.Fatalf("questions of other phases must not count, got %v", err)
	}
}

// playPhase runs a full 15-question session, answering correctCount
// questions right, and returns the final view.
func playPhase(t *testing.T, m *Manager, userID string, correctCount int) View {
	t.Helper()

	current := time.Unix(1_000_000, 0)
	m.SetClock(func() time.Time { return current })

	view, err := m.Start(userID, 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < QuestionsPerPhase; i++ {
		option := 0
		if i >= correctCount {
			option = 1
		}
		view, err = m.Submit(userID, option)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if view.State != StateAnswerRevealed {
			t.Fatalf("submit %d: expected answer_revealed, got %s", i, view.State)
		}
		current = current.Add(2 * time.Second)
		view = m.State(userID)
	}
	return view
}

func TestScoringDeterminism(t *testing.T) {
	cases := []struct {
		correct        int
		expectedResult string
	}{
		{15, "APROVADO"},
		{12, "APROVADO"},
		{11, "EM REVISÃO"},
		{0, "EM REVISÃO"},
	}

	for _, tc := range cases {
		m, _ := newTestManager(t, phaseQuestions(1, 15))
		view := playPhase(t, m, "u1", tc.correct)

		if view.State != StateFinished {
			t.Fatalf("correct=%d: expected finished, got %s", tc.correct, view.State)
		}
		if view.Score != tc.correct {
			t.Fatalf("correct=%d: expected score %d, got %d", tc.correct, tc.correct, view.Score)
		}
		if view.Result != tc.expectedResult {
			t.Fatalf("correct=%d: expected result %q, got %q", tc.correct, tc.expectedResult, view.Result)
		}
	}
}

func TestSubmitDuringRevealIsIgnored(t *testing.T) {
	m, repo := newTestManager(t, phaseQuestions(1, 15))

	current := time.Unix(1_000_000, 0)
	m.SetClock(func() time.Time { return current })

	if _, err := m.Start("u1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}

	view, err := m.Submit("u1", 0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if view.Feedback == nil || !view.Feedback.IsCorrect {
		t.Fatalf("expected correct feedback, got %+v", view.Feedback)
	}

	// Second click while feedback is showing: no-op, nothing persisted.
	view, err = m.Submit("u1", 1)
	if err != nil {
		t.Fatalf("submit during reveal: %v", err)
	}
	if view.Score != 1 || view.QuestionIndex != 0 {
		t.Fatalf("submit during reveal must not change the session, got %+v", view)
	}

	answers, err := repo.Answers()
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("expected 1 persisted answer, got %d", len(answers))
	}
}

func TestRevealAdvancesAfterInterval(t *testing.T) {
	m, _ := newTestManager(t, phaseQuestions(1, 15))

	current := time.Unix(1_000_000, 0)
	m.SetClock(func() time.Time { return current })

	if _, err := m.Start("u1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := m.Submit("u1", 0); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Within the reveal interval the feedback stays up.
	current = current.Add(DefaultRevealInterval / 2)
	view := m.State("u1")
	if view.State != StateAnswerRevealed {
		t.Fatalf("expected answer_revealed before the interval elapses, got %s", view.State)
	}

	current = current.Add(DefaultRevealInterval)
	view = m.State("u1")
	if view.State != StateInProgress || view.QuestionIndex != 1 {
		t.Fatalf("expected advance to question 2, got state=%s index=%d", view.State, view.QuestionIndex)
	}
	if view.Feedback != nil {
		t.Fatalf("feedback must be cleared after advancing")
	}
}

func TestWrongAnswerFeedbackNamesCorrectOption(t *testing.T) {
	m, _ := newTestManager(t, phaseQuestions(1, 15))

	if _, err := m.Start("u1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	view, err := m.Submit("u1", 2)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if view.Feedback == nil || view.Feedback.IsCorrect {
		t.Fatalf("expected wrong-answer feedback, got %+v", view.Feedback)
	}
	if view.Feedback.Message != "Ops! O correto é: A" {
		t.Fatalf("unexpected feedback message %q", view.Feedback.Message)
	}
}

func TestAnswerLogIsAppendOnly(t *testing.T) {
	m, repo := newTestManager(t, phaseQuestions(1, 15))

	playPhase(t, m, "u1", 10)
	playPhase(t, m, "u1", 15) // replay accumulates, nothing is rewritten

	answers, err := repo.Answers()
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 2*QuestionsPerPhase {
		t.Fatalf("expected %d log records, got %d", 2*QuestionsPerPhase, len(answers))
	}
	for i, a := range answers {
		if a.UserID != "u1" || a.QuestionID == "" {
			t.Fatalf("record %d incomplete: %+v", i, a)
		}
	}
}

func TestRestartAllowedFromFinished(t *testing.T) {
	m, _ := newTestManager(t, append(phaseQuestions(1, 15), phaseQuestions(2, 15)...))

	view := playPhase(t, m, "u1", 15)
	if view.State != StateFinished {
		t.Fatalf("expected finished, got %s", view.State)
	}

	view, err := m.Start("u1", 2)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if view.State != StateInProgress || view.Score != 0 || view.QuestionIndex != 0 || view.Phase != 2 {
		t.Fatalf("restart must reset the session, got %+v", view)
	}
}

func TestSubmitWithoutSession(t *testing.T) {
	m, _ := newTestManager(t, phaseQuestions(1, 15))
	if _, err := m.Submit("ghost", 0); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}
