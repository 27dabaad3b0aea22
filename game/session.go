// game/session.go - Quiz session state machine
package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"quizmaster/models"
	"quizmaster/repository"
)

const (
	// QuestionsPerPhase is how many questions a session draws; a phase
	// with fewer persisted questions is not playable.
	QuestionsPerPhase = 15

	// PassingScore is the approval threshold out of QuestionsPerPhase.
	PassingScore = 12

	// DefaultRevealInterval is how long the answer feedback stays on
	// screen before the session advances. A UX parameter, not a rule.
	DefaultRevealInterval = 1500 * time.Millisecond
)

const (
	feedbackCorrect = "Excelente! Padrão Ouro mantido."
	feedbackWrong   = "Ops! O correto é: %s"

	resultApproved = "APROVADO"
	resultInReview = "EM REVISÃO"
)

var (
	ErrContentIncomplete = errors.New("fase com conteúdo incompleto")
	ErrNoActiveSession   = errors.New("nenhuma avaliação em andamento")
)

type SessionState string

const (
	StateNotStarted     SessionState = "not_started"
	StateInProgress     SessionState = "in_progress"
	StateAnswerRevealed SessionState = "answer_revealed"
	StateFinished       SessionState = "finished"
)

type Feedback struct {
	IsCorrect bool   `json:"is_correct"`
	Message   string `json:"message"`
}

// QuestionView is the question as shown to the player: the correct index
// never leaves the server.
type QuestionView struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
}

// View is a snapshot of a session handed to the HTTP layer.
type View struct {
	State          SessionState  `json:"state"`
	Phase          int           `json:"phase,omitempty"`
	QuestionIndex  int           `json:"question_index"`
	TotalQuestions int           `json:"total_questions"`
	Question       *QuestionView `json:"question,omitempty"`
	Feedback       *Feedback     `json:"feedback,omitempty"`
	Score          int           `json:"score"`
	Result         string        `json:"result,omitempty"`
}

type session struct {
	userID    string
	phase     int
	questions []models.Question
	index     int
	score     int
	state     SessionState

	feedback    *Feedback
	revealUntil time.Time
}

// Manager drives one session per user. The reveal interval is modelled as
// a deadline checked on every access instead of a background timer, so the
// automatic advance is deterministic and needs no goroutine.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	repo     *repository.Repository

	revealInterval time.Duration
	now            func() time.Time
}

func NewManager(repo *repository.Repository) *Manager {
	return &Manager{
		sessions:       make(map[string]*session),
		repo:           repo,
		revealInterval: DefaultRevealInterval,
		now:            time.Now,
	}
}

// SetRevealInterval overrides the feedback duration. Zero advances the
// session as soon as the next call observes it.
func (m *Manager) SetRevealInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revealInterval = d
}

// SetClock overrides the time source, used by tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Start begins a session on the given phase. The phase must have at least
// QuestionsPerPhase questions persisted; otherwise the call fails with
// ErrContentIncomplete and any previous finished session is kept as is.
// Starting over from a finished or abandoned session is always allowed.
func (m *Manager) Start(userID string, phase int) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.repo.Questions()
	if err != nil {
		return View{}, err
	}
	selected := make([]models.Question, 0, QuestionsPerPhase)
	for _, q := range all {
		if q.Phase == phase {
			selected = append(selected, q)
		}
		if len(selected) == QuestionsPerPhase {
			break
		}
	}
	if len(selected) < QuestionsPerPhase {
		return View{}, fmt.Errorf("%w: a fase %d possui apenas %d perguntas, contate o Master",
			ErrContentIncomplete, phase, len(selected))
	}

	s := &session{
		userID:    userID,
		phase:     phase,
		questions: selected,
		state:     StateInProgress,
	}
	m.sessions[userID] = s
	return m.view(s), nil
}

// Submit records the answer for the current question. While feedback from
// the previous answer is still showing, the call is a silent no-op.
func (m *Manager) Submit(userID string, option int) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return View{}, ErrNoActiveSession
	}
	now := m.now()
	m.advanceIfDue(s, now)

	switch s.state {
	case StateAnswerRevealed:
		// Double click during feedback: ignored.
		return m.view(s), nil
	case StateInProgress:
	default:
		return View{}, ErrNoActiveSession
	}

	q := s.questions[s.index]
	correct := option == q.CorrectIndex

	answer := models.UserAnswer{
		UserID:         userID,
		QuestionID:     q.ID,
		SelectedOption: option,
		IsCorrect:      correct,
		Timestamp:      now,
		Phase:          q.Phase,
	}
	if err := m.repo.AppendAnswer(answer); err != nil {
		return View{}, err
	}

	if correct {
		s.score++
		s.feedback = &Feedback{IsCorrect: true, Message: feedbackCorrect}
	} else {
		s.feedback = &Feedback{IsCorrect: false, Message: fmt.Sprintf(feedbackWrong, q.Options[q.CorrectIndex])}
	}
	s.state = StateAnswerRevealed
	s.revealUntil = now.Add(m.revealInterval)
	return m.view(s), nil
}

// State returns the current session snapshot, advancing past an elapsed
// feedback interval first. A user without a session is NotStarted.
func (m *Manager) State(userID string) View {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return View{State: StateNotStarted, TotalQuestions: QuestionsPerPhase}
	}
	m.advanceIfDue(s, m.now())
	return m.view(s)
}

// Abandon drops a user's in-memory session, e.g. on logout. Answers
// already persisted stay in the log.
func (m *Manager) Abandon(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

func (m *Manager) advanceIfDue(s *session, now time.Time) {
	if s.state != StateAnswerRevealed || now.Before(s.revealUntil) {
		return
	}
	s.feedback = nil
	if s.index+1 < len(s.questions) {
		s.index++
		s.state = StateInProgress
	} else {
		s.state = StateFinished
	}
}

func (m *Manager) view(s *session) View {
	v := View{
		State:          s.state,
		Phase:          s.phase,
		QuestionIndex:  s.index,
		TotalQuestions: len(s.questions),
		Score:          s.score,
		Feedback:       s.feedback,
	}
	switch s.state {
	case StateInProgress, StateAnswerRevealed:
		q := s.questions[s.index]
		v.Question = &QuestionView{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		}
	case StateFinished:
		v.Result = ResultLabel(s.score)
	}
	return v
}

// ResultLabel maps a final score to its pass/fail label.
func ResultLabel(score int) string {
	if score >= PassingScore {
		return resultApproved
	}
	return resultInReview
}
