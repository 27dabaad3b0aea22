// repository/repository.go - Typed accessors over the blob store
package repository

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"quizmaster/models"
	"quizmaster/store"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

var (
	ErrNotFound        = errors.New("registro não encontrado")
	ErrMasterImmutable = errors.New("não é possível excluir ou bloquear o usuário master")
	ErrEmailTaken      = errors.New("e-mail já cadastrado")
)

// Repository reads and writes whole entity collections. Every accessor
// returns an empty slice for a collection that was never written.
type Repository struct {
	store store.Store
}

func New(s store.Store) *Repository {
	return &Repository{store: s}
}

var defaultRepo *Repository

// Init wires the process-wide repository used by the HTTP handlers.
func Init(s store.Store) *Repository {
	defaultRepo = New(s)
	return defaultRepo
}

// Get returns the process-wide repository.
func Get() *Repository {
	if defaultRepo == nil {
		log.Fatal("Repository not initialized. Call repository.Init() first.")
	}
	return defaultRepo
}

func (r *Repository) load(key string, out any) error {
	raw, ok, err := r.store.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (r *Repository) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.store.Put(key, raw)
}

func (r *Repository) Users() ([]models.User, error) {
	users := []models.User{}
	err := r.load(store.KeyUsers, &users)
	return users, err
}

func (r *Repository) SaveUsers(users []models.User) error {
	return r.save(store.KeyUsers, users)
}

func (r *Repository) Phases() ([]models.PhaseStatus, error) {
	phases := []models.PhaseStatus{}
	err := r.load(store.KeyPhases, &phases)
	return phases, err
}

func (r *Repository) SavePhases(phases []models.PhaseStatus) error {
	return r.save(store.KeyPhases, phases)
}

func (r *Repository) Questions() ([]models.Question, error) {
	questions := []models.Question{}
	err := r.load(store.KeyQuestions, &questions)
	return questions, err
}

func (r *Repository) SaveQuestions(questions []models.Question) error {
	return r.save(store.KeyQuestions, questions)
}

func (r *Repository) Knowledge() ([]models.KnowledgeBase, error) {
	entries := []models.KnowledgeBase{}
	err := r.load(store.KeyKnowledge, &entries)
	return entries, err
}

func (r *Repository) SaveKnowledge(entries []models.KnowledgeBase) error {
	return r.save(store.KeyKnowledge, entries)
}

func (r *Repository) Answers() ([]models.UserAnswer, error) {
	answers := []models.UserAnswer{}
	err := r.load(store.KeyAnswers, &answers)
	return answers, err
}

// AppendAnswer reads the current log, appends and writes the whole log
// back. Not a true atomic append; each user drives a single session, so
// concurrent appenders for the same log are not a concern here.
func (r *Repository) AppendAnswer(answer models.UserAnswer) error {
	answers, err := r.Answers()
	if err != nil {
		return err
	}
	answers = append(answers, answer)
	return r.save(store.KeyAnswers, answers)
}

func (r *Repository) FindUserByID(id string) (*models.User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser appends a new user after checking email uniqueness.
func (r *Repository) CreateUser(user models.User) error {
	users, err := r.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == user.Email {
			return ErrEmailTaken
		}
	}
	users = append(users, user)
	return r.SaveUsers(users)
}

// UpdateUser replaces the stored record matching user.ID.
func (r *Repository) UpdateUser(user models.User) error {
	users, err := r.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return r.SaveUsers(users)
		}
	}
	return ErrNotFound
}
