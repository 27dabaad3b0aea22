// repository/seed.go - Startup seeding and migration
package repository

import (
	"fmt"
	"log"
	"slices"

	"quizmaster/models"
	"quizmaster/store"

	"golang.org/x/crypto/bcrypt"
)

// PhaseNumbers is the fixed set of training phases.
var PhaseNumbers = []int{1, 2, 3, 4}

const (
	masterID       = "master-0"
	masterName     = "Master Admin"
	masterEmail    = "master@admin.com"
	masterPassword = "master@123"
	masterMother   = "Admin Mother"
	masterColor    = "Blue"
)

var initialPhases = []models.PhaseStatus{
	{PhaseNumber: 1, IsUnlocked: true, Difficulty: "Fácil"},
	{PhaseNumber: 2, IsUnlocked: true, Difficulty: "Médio"},
	{PhaseNumber: 3, IsUnlocked: true, Difficulty: "Difícil"},
	{PhaseNumber: 4, IsUnlocked: true, Difficulty: "Muito difícil"},
}

// Init prepares the store for use. Baseline entities (users, phases,
// answer log) are created only when missing; the curated question bank and
// the knowledge base derived from it are rewritten on every startup so
// content updates always reach the store. Master edits to questions
// therefore do not survive a restart.
func (r *Repository) Init() error {
	if err := r.EnsureBaselineEntities(); err != nil {
		return fmt.Errorf("seed baseline entities: %w", err)
	}
	if err := r.ReseedCanonicalContent(); err != nil {
		return fmt.Errorf("reseed canonical content: %w", err)
	}
	return nil
}

// EnsureBaselineEntities is the idempotent half of startup: it seeds the
// master account, the phase table and the answer log when absent, and
// backfills unlock sets on users created before individual unlocks existed.
func (r *Repository) EnsureBaselineEntities() error {
	_, usersExist, err := r.store.Get(store.KeyUsers)
	if err != nil {
		return err
	}
	if !usersExist {
		hash, err := bcrypt.GenerateFromPassword([]byte(masterPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		master := models.User{
			ID:             masterID,
			Name:           masterName,
			Email:          masterEmail,
			PasswordHash:   string(hash),
			MotherName:     masterMother,
			FavoriteColor:  masterColor,
			Role:           models.RoleMaster,
			IsActive:       true,
			CreatedAt:      nowUTC(),
			UnlockedPhases: slices.Clone(PhaseNumbers),
		}
		if err := r.SaveUsers([]models.User{master}); err != nil {
			return err
		}
		log.Println("🔑 Seeded master account", masterEmail)
	} else {
		users, err := r.Users()
		if err != nil {
			return err
		}
		changed := false
		for i := range users {
			if users[i].UnlockedPhases != nil {
				continue
			}
			if users[i].Role == models.RoleMaster {
				users[i].UnlockedPhases = slices.Clone(PhaseNumbers)
			} else {
				users[i].UnlockedPhases = []int{}
			}
			changed = true
		}
		if changed {
			if err := r.SaveUsers(users); err != nil {
				return err
			}
		}
	}

	_, phasesExist, err := r.store.Get(store.KeyPhases)
	if err != nil {
		return err
	}
	if !phasesExist {
		if err := r.SavePhases(initialPhases); err != nil {
			return err
		}
	}

	_, answersExist, err := r.store.Get(store.KeyAnswers)
	if err != nil {
		return err
	}
	if !answersExist {
		if err := r.save(store.KeyAnswers, []models.UserAnswer{}); err != nil {
			return err
		}
	}
	return nil
}

// ReseedCanonicalContent unconditionally overwrites the question bank with
// the curated set and regenerates one knowledge entry per question.
func (r *Repository) ReseedCanonicalContent() error {
	if err := r.SaveQuestions(canonicalQuestions()); err != nil {
		return err
	}
	return r.SaveKnowledge(deriveKnowledge(canonicalQuestions()))
}

// deriveKnowledge builds the reference base the master browses: one entry
// per question, themed by difficulty.
func deriveKnowledge(questions []models.Question) []models.KnowledgeBase {
	entries := make([]models.KnowledgeBase, 0, len(questions))
	for i, q := range questions {
		theme := "Técnico Avançado"
		switch q.Difficulty {
		case "Fácil":
			theme = "Operação Básica"
		case "Médio":
			theme = "Armazenamento"
		}
		entries = append(entries, models.KnowledgeBase{
			ID:         fmt.Sprintf("k-%d", i),
			Theme:      theme,
			Content:    fmt.Sprintf("Padrão Ouro: %s -> RESPOSTA: %s", q.Text, q.Options[q.CorrectIndex]),
			Phase:      q.Phase,
			Difficulty: q.Difficulty,
		})
	}
	return entries
}
