// handlers/admin/stats.go - Aggregate statistics for the master panel
package admin

import (
	"fmt"

	"quizmaster/models"
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

type phaseProgress struct {
	Name  string `json:"name"`
	Users int    `json:"users"`
}

// GetStats aggregates the answer log for the master dashboard: distinct
// participants per phase plus the overall correct/wrong split.
func GetStats(c *fiber.Ctx) error {
	repo := repository.Get()

	users, err := repo.Users()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar usuários")
	}
	phases, err := repo.Phases()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar as fases")
	}
	answers, err := repo.Answers()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar respostas")
	}

	progress := make([]phaseProgress, 0, len(phases))
	for _, p := range phases {
		participants := make(map[string]bool)
		for _, a := range answers {
			if a.Phase == p.PhaseNumber {
				participants[a.UserID] = true
			}
		}
		progress = append(progress, phaseProgress{
			Name:  fmt.Sprintf("Fase %d", p.PhaseNumber),
			Users: len(participants),
		})
	}

	correct, wrong := 0, 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		} else {
			wrong++
		}
	}

	collaborators := 0
	for i := range users {
		if users[i].Role != models.RoleMaster {
			collaborators++
		}
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"collaborators":     collaborators,
		"progress_by_phase": progress,
		"correct_answers":   correct,
		"wrong_answers":     wrong,
		"total_answers":     correct + wrong,
	})
}
