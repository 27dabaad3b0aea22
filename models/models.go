// models/models.go - Core quiz entities (User lives in user.go)
package models

import (
	"errors"
	"strings"
	"time"
)

// PhaseStatus is the global gate for one training phase. Seeded once,
// mutated only by the master toggling IsUnlocked.
type PhaseStatus struct {
	PhaseNumber int    `json:"phase_number"`
	IsUnlocked  bool   `json:"is_unlocked"`
	Difficulty  string `json:"difficulty"`
}

// Question is a multiple-choice question with exactly 4 options.
// CorrectIndex points into Options.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Phase        int      `json:"phase"`
	Difficulty   string   `json:"difficulty"`
}

// KnowledgeBase is a reference entry shown to the master. Derived from the
// canonical questions at seed time, independently editable afterwards.
type KnowledgeBase struct {
	ID         string `json:"id"`
	Theme      string `json:"theme"`
	Content    string `json:"content"`
	Phase      int    `json:"phase"`
	Difficulty string `json:"difficulty"`
}

// UserAnswer is one record of the append-only answer log. IsCorrect is
// computed at answer time and never recomputed.
type UserAnswer struct {
	UserID         string    `json:"user_id"`
	QuestionID     string    `json:"question_id"`
	SelectedOption int       `json:"selected_option"`
	IsCorrect      bool      `json:"is_correct"`
	Timestamp      time.Time `json:"timestamp"`
	Phase          int       `json:"phase"`
}

// QuestionDraft carries the editable fields of a question form. An empty ID
// means "create". Validate runs before the draft becomes a persisted record.
type QuestionDraft struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Phase        int      `json:"phase"`
	Difficulty   string   `json:"difficulty"`
}

func (d *QuestionDraft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return errors.New("o enunciado da pergunta é obrigatório")
	}
	if len(d.Options) != 4 {
		return errors.New("a pergunta deve ter exatamente 4 opções")
	}
	seen := make(map[string]bool, 4)
	for _, opt := range d.Options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return errors.New("todas as opções devem ser preenchidas")
		}
		if seen[opt] {
			return errors.New("as opções devem ser distintas")
		}
		seen[opt] = true
	}
	if d.CorrectIndex < 0 || d.CorrectIndex > 3 {
		return errors.New("o índice da resposta correta deve estar entre 0 e 3")
	}
	if d.Phase <= 0 {
		return errors.New("a fase da pergunta é obrigatória")
	}
	return nil
}

// Build turns a validated draft into a Question. The repository assigns an
// id when the draft has none.
func (d *QuestionDraft) Build() Question {
	return Question{
		ID:           d.ID,
		Text:         strings.TrimSpace(d.Text),
		Options:      d.Options,
		CorrectIndex: d.CorrectIndex,
		Phase:        d.Phase,
		Difficulty:   d.Difficulty,
	}
}

// KnowledgeDraft mirrors QuestionDraft for knowledge-base entries.
type KnowledgeDraft struct {
	ID         string `json:"id"`
	Theme      string `json:"theme"`
	Content    string `json:"content"`
	Phase      int    `json:"phase"`
	Difficulty string `json:"difficulty"`
}

func (d *KnowledgeDraft) Validate() error {
	if strings.TrimSpace(d.Theme) == "" {
		return errors.New("o tema do registro é obrigatório")
	}
	if strings.TrimSpace(d.Content) == "" {
		return errors.New("o conteúdo do registro é obrigatório")
	}
	if d.Phase <= 0 {
		return errors.New("a fase do registro é obrigatória")
	}
	return nil
}

func (d *KnowledgeDraft) Build() KnowledgeBase {
	return KnowledgeBase{
		ID:         d.ID,
		Theme:      strings.TrimSpace(d.Theme),
		Content:    strings.TrimSpace(d.Content),
		Phase:      d.Phase,
		Difficulty: d.Difficulty,
	}
}
