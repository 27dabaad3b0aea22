// game/ranking.go - Leaderboard aggregation
package game

import (
	"sort"
	"time"

	"quizmaster/models"
)

type RankingEntry struct {
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Points       int             `json:"points"`
	LastActivity time.Time       `json:"last_activity"`
	Role         models.UserRole `json:"role"`
}

// ComputeRanking aggregates the answer log into a sorted leaderboard.
// Points count correct answers, not distinct questions, so replaying a
// phase keeps accumulating points. The master is excluded. Order is
// points descending, ties broken by most recent activity; a user without
// answers falls back to their registration time.
func ComputeRanking(users []models.User, answers []models.UserAnswer) []RankingEntry {
	entries := make([]RankingEntry, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleMaster {
			continue
		}
		points := 0
		lastActivity := u.CreatedAt
		hasAnswers := false
		for _, a := range answers {
			if a.UserID != u.ID {
				continue
			}
			if a.IsCorrect {
				points++
			}
			if !hasAnswers || a.Timestamp.After(lastActivity) {
				lastActivity = a.Timestamp
			}
			hasAnswers = true
		}
		entries = append(entries, RankingEntry{
			UserID:       u.ID,
			Name:         u.Name,
			Points:       points,
			LastActivity: lastActivity,
			Role:         u.Role,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].LastActivity.After(entries[j].LastActivity)
	})
	return entries
}
