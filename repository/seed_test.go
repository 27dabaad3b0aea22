package repository

import (
	"testing"

	"quizmaster/models"
	"quizmaster/store"

	"golang.org/x/crypto/bcrypt"
)

func TestInitSeedsMasterAndPhases(t *testing.T) {
	repo := New(store.NewMemory())
	if err := repo.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	users, err := repo.Users()
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected only the master account, got %d users", len(users))
	}
	master := users[0]
	if master.ID != masterID || master.Role != models.RoleMaster || !master.IsActive {
		t.Fatalf("unexpected master record: %+v", master)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(master.PasswordHash), []byte(masterPassword)); err != nil {
		t.Fatalf("master password must be stored hashed: %v", err)
	}
	if len(master.UnlockedPhases) != len(PhaseNumbers) {
		t.Fatalf("master should hold every phase, got %v", master.UnlockedPhases)
	}

	phases, err := repo.Phases()
	if err != nil {
		t.Fatalf("phases: %v", err)
	}
	if len(phases) != 4 {
		t.Fatalf("expected 4 phases, got %d", len(phases))
	}
	for i, p := range phases {
		if p.PhaseNumber != i+1 || !p.IsUnlocked {
			t.Fatalf("phase %d seeded wrong: %+v", i+1, p)
		}
	}

	answers, err := repo.Answers()
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 0 {
		t.Fatalf("answer log must start empty, got %d", len(answers))
	}
}

func TestInitSeedsCuratedContent(t *testing.T) {
	repo := New(store.NewMemory())
	if err := repo.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	questions, err := repo.Questions()
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 60 {
		t.Fatalf("expected 60 curated questions, got %d", len(questions))
	}
	perPhase := map[int]int{}
	for _, q := range questions {
		perPhase[q.Phase]++
		if len(q.Options) != 4 || q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			t.Fatalf("malformed question %s: %+v", q.ID, q)
		}
	}
	for _, n := range PhaseNumbers {
		if perPhase[n] != 15 {
			t.Fatalf("phase %d has %d questions, want 15", n, perPhase[n])
		}
	}

	knowledge, err := repo.Knowledge()
	if err != nil {
		t.Fatalf("knowledge: %v", err)
	}
	if len(knowledge) != len(questions) {
		t.Fatalf("expected one knowledge entry per question, got %d", len(knowledge))
	}
}

func TestInitIsIdempotentForBaselineEntities(t *testing.T) {
	repo := New(store.NewMemory())
	if err := repo.Init(); err != nil {
		t.Fatalf("first init: %v", err)
	}

	// Mutate everything a running deployment would have touched.
	extra := models.User{
		ID:             "u1",
		Name:           "Ana",
		Email:          "ana@example.com",
		PasswordHash:   "x",
		Role:           models.RoleUser,
		IsActive:       true,
		CreatedAt:      nowUTC(),
		UnlockedPhases: []int{1},
	}
	if err := repo.CreateUser(extra); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := repo.TogglePhase(3); err != nil {
		t.Fatalf("toggle phase: %v", err)
	}
	if err := repo.AppendAnswer(models.UserAnswer{UserID: "u1", QuestionID: "q", Phase: 1}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	if err := repo.Init(); err != nil {
		t.Fatalf("second init: %v", err)
	}

	users, _ := repo.Users()
	if len(users) != 2 {
		t.Fatalf("restart must not touch users, got %d", len(users))
	}
	phases, _ := repo.Phases()
	for _, p := range phases {
		if p.PhaseNumber == 3 && p.IsUnlocked {
			t.Fatalf("restart must not reopen a closed phase")
		}
	}
	answers, _ := repo.Answers()
	if len(answers) != 1 {
		t.Fatalf("restart must keep the answer log, got %d records", len(answers))
	}
}

func TestInitRewritesCuratedContent(t *testing.T) {
	repo := New(store.NewMemory())
	if err := repo.Init(); err != nil {
		t.Fatalf("first init: %v", err)
	}

	questions, _ := repo.Questions()
	if err := repo.DeleteQuestion(questions[0].ID); err != nil {
		t.Fatalf("delete question: %v", err)
	}
	if _, err := repo.UpsertKnowledge(models.KnowledgeBase{
		Theme: "Extra", Content: "x", Phase: 1, Difficulty: "Fácil",
	}); err != nil {
		t.Fatalf("upsert knowledge: %v", err)
	}

	if err := repo.Init(); err != nil {
		t.Fatalf("second init: %v", err)
	}

	questions, _ = repo.Questions()
	if len(questions) != 60 {
		t.Fatalf("restart must restore the curated bank, got %d questions", len(questions))
	}
	knowledge, _ := repo.Knowledge()
	if len(knowledge) != 60 {
		t.Fatalf("restart must regenerate the knowledge base, got %d entries", len(knowledge))
	}
}

func TestEnsureBaselineEntitiesBackfillsUnlockSets(t *testing.T) {
	repo := New(store.NewMemory())

	legacy := []models.User{
		{ID: masterID, Name: masterName, Email: masterEmail, Role: models.RoleMaster, IsActive: true},
		{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: models.RoleUser, IsActive: true},
	}
	if err := repo.SaveUsers(legacy); err != nil {
		t.Fatalf("save users: %v", err)
	}

	if err := repo.EnsureBaselineEntities(); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	users, _ := repo.Users()
	for _, u := range users {
		if u.UnlockedPhases == nil {
			t.Fatalf("user %s still has a nil unlock set", u.ID)
		}
		if u.Role == models.RoleMaster && len(u.UnlockedPhases) != len(PhaseNumbers) {
			t.Fatalf("master backfill should grant every phase, got %v", u.UnlockedPhases)
		}
		if u.Role == models.RoleUser && len(u.UnlockedPhases) != 0 {
			t.Fatalf("collaborator backfill should be empty, got %v", u.UnlockedPhases)
		}
	}
}
