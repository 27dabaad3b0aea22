// handlers/ranking.go
package handlers

import (
	"quizmaster/game"
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

// GetRanking returns the leaderboard, computed from the current users and
// answer-log snapshots on every request.
func GetRanking(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	repo := repository.Get()
	users, err := repo.Users()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar usuários")
	}
	answers, err := repo.Answers()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar respostas")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"ranking": game.ComputeRanking(users, answers),
	})
}
