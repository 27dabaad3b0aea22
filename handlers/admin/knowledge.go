// handlers/admin/knowledge.go - Knowledge-base administration
package admin

import (
	"quizmaster/models"
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

// GetKnowledge lists the knowledge-base entries.
func GetKnowledge(c *fiber.Ctx) error {
	entries, err := repository.Get().Knowledge()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar a base de conhecimento")
	}
	return c.JSON(fiber.Map{"knowledge": entries, "total": len(entries)})
}

// SaveKnowledge creates or replaces a knowledge-base entry, same pattern
// as questions.
func SaveKnowledge(c *fiber.Ctx) error {
	var draft models.KnowledgeDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(400, "Requisição inválida")
	}
	if err := draft.Validate(); err != nil {
		return fiber.NewError(400, err.Error())
	}

	entry, err := repository.Get().UpsertKnowledge(draft.Build())
	if err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{"success": true, "entry": entry})
}

// DeleteKnowledge removes an entry by id.
func DeleteKnowledge(c *fiber.Ctx) error {
	if err := repository.Get().DeleteKnowledge(c.Params("id")); err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Registro excluído com sucesso"})
}
