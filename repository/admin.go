// repository/admin.go - Master administration transforms
//
// Each operation loads one collection, applies a direct transform and
// persists the result, with the guards the master panel relies on.
package repository

import (
	"slices"
	"sort"

	"quizmaster/models"

	"github.com/google/uuid"
)

// ToggleUserActive flips a user's active flag. The master account cannot
// be deactivated.
func (r *Repository) ToggleUserActive(id string) (*models.User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if users[i].Role == models.RoleMaster {
			return nil, ErrMasterImmutable
		}
		users[i].IsActive = !users[i].IsActive
		if err := r.SaveUsers(users); err != nil {
			return nil, err
		}
		return &users[i], nil
	}
	return nil, ErrNotFound
}

// DeleteUser removes a user permanently. The master account cannot be
// deleted. Historical answers of the user stay in the log.
func (r *Repository) DeleteUser(id string) error {
	users, err := r.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if users[i].Role == models.RoleMaster {
			return ErrMasterImmutable
		}
		users = append(users[:i], users[i+1:]...)
		return r.SaveUsers(users)
	}
	return ErrNotFound
}

// ToggleUserPhase grants the phase if absent and revokes it if present,
// keeping the set sorted ascending.
func (r *Repository) ToggleUserPhase(id string, phase int) (*models.User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		current := users[i].UnlockedPhases
		if idx := slices.Index(current, phase); idx >= 0 {
			current = append(current[:idx], current[idx+1:]...)
		} else {
			current = append(current, phase)
			sort.Ints(current)
		}
		users[i].UnlockedPhases = current
		if err := r.SaveUsers(users); err != nil {
			return nil, err
		}
		return &users[i], nil
	}
	return nil, ErrNotFound
}

// UnlockAllPhases grants the full phase set to a user.
func (r *Repository) UnlockAllPhases(id string) (*models.User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		users[i].UnlockedPhases = slices.Clone(PhaseNumbers)
		if err := r.SaveUsers(users); err != nil {
			return nil, err
		}
		return &users[i], nil
	}
	return nil, ErrNotFound
}

// UpsertQuestion appends the question when it has no id, otherwise
// replaces the matching record in place.
func (r *Repository) UpsertQuestion(q models.Question) (*models.Question, error) {
	questions, err := r.Questions()
	if err != nil {
		return nil, err
	}
	if q.ID == "" {
		q.ID = "q-" + uuid.New().String()
		questions = append(questions, q)
	} else {
		idx := slices.IndexFunc(questions, func(existing models.Question) bool {
			return existing.ID == q.ID
		})
		if idx < 0 {
			return nil, ErrNotFound
		}
		questions[idx] = q
	}
	if err := r.SaveQuestions(questions); err != nil {
		return nil, err
	}
	return &q, nil
}

// DeleteQuestion removes a question by id. Answers referring to it are
// kept in the log.
func (r *Repository) DeleteQuestion(id string) error {
	questions, err := r.Questions()
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(questions, func(q models.Question) bool { return q.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	questions = append(questions[:idx], questions[idx+1:]...)
	return r.SaveQuestions(questions)
}

// UpsertKnowledge follows the same create-or-replace pattern as questions.
func (r *Repository) UpsertKnowledge(entry models.KnowledgeBase) (*models.KnowledgeBase, error) {
	entries, err := r.Knowledge()
	if err != nil {
		return nil, err
	}
	if entry.ID == "" {
		entry.ID = "k-" + uuid.New().String()
		entries = append(entries, entry)
	} else {
		idx := slices.IndexFunc(entries, func(existing models.KnowledgeBase) bool {
			return existing.ID == entry.ID
		})
		if idx < 0 {
			return nil, ErrNotFound
		}
		entries[idx] = entry
	}
	if err := r.SaveKnowledge(entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) DeleteKnowledge(id string) error {
	entries, err := r.Knowledge()
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(entries, func(e models.KnowledgeBase) bool { return e.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	entries = append(entries[:idx], entries[idx+1:]...)
	return r.SaveKnowledge(entries)
}

// TogglePhase flips the global gate of one phase. Individual unlock sets
// are untouched.
func (r *Repository) TogglePhase(phaseNumber int) (*models.PhaseStatus, error) {
	phases, err := r.Phases()
	if err != nil {
		return nil, err
	}
	for i := range phases {
		if phases[i].PhaseNumber != phaseNumber {
			continue
		}
		phases[i].IsUnlocked = !phases[i].IsUnlocked
		if err := r.SavePhases(phases); err != nil {
			return nil, err
		}
		return &phases[i], nil
	}
	return nil, ErrNotFound
}
