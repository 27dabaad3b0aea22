// handlers/knowledge.go
package handlers

import (
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

// GetKnowledge lists the knowledge-base entries, optionally filtered by
// phase (?phase=N).
func GetKnowledge(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	entries, err := repository.Get().Knowledge()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar a base de conhecimento")
	}

	if phase := c.QueryInt("phase", 0); phase > 0 {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Phase == phase {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	return c.JSON(fiber.Map{"success": true, "knowledge": entries})
}
