// handlers/admin/questions.go - Question bank administration
package admin

import (
	"quizmaster/models"
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

// GetQuestions lists the question bank, optionally filtered by phase.
func GetQuestions(c *fiber.Ctx) error {
	questions, err := repository.Get().Questions()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar perguntas")
	}

	if phase := c.QueryInt("phase", 0); phase > 0 {
		filtered := questions[:0]
		for _, q := range questions {
			if q.Phase == phase {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}

	return c.JSON(fiber.Map{"questions": questions, "total": len(questions)})
}

// SaveQuestion creates a question when the draft has no id, otherwise
// replaces the stored record. The draft is validated before anything is
// persisted.
func SaveQuestion(c *fiber.Ctx) error {
	var draft models.QuestionDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(400, "Requisição inválida")
	}
	if err := draft.Validate(); err != nil {
		return fiber.NewError(400, err.Error())
	}

	question, err := repository.Get().UpsertQuestion(draft.Build())
	if err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{"success": true, "question": question})
}

// DeleteQuestion removes a question. Logged answers that reference it are
// kept.
func DeleteQuestion(c *fiber.Ctx) error {
	if err := repository.Get().DeleteQuestion(c.Params("id")); err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Pergunta excluída com sucesso"})
}
