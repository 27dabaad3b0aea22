// store/store.go - Flat key-value blob store
//
// Each collection is persisted as a single JSON blob under a fixed key,
// the same layout the quiz has always used. Writes replace the whole value.
package store

// Storage keys for the five entity collections.
const (
	KeyUsers     = "quiz_users"
	KeyKnowledge = "quiz_knowledge"
	KeyQuestions = "quiz_questions"
	KeyAnswers   = "quiz_answers"
	KeyPhases    = "quiz_phases"
)

type Store interface {
	// Get returns the raw blob for key. The bool reports whether the key
	// has ever been written; an unwritten key is not an error.
	Get(key string) ([]byte, bool, error)

	// Put replaces the blob stored under key.
	Put(key string, value []byte) error
}
