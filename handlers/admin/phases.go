// handlers/admin/phases.go - Global phase gates
package admin

import (
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

// GetPhases lists the phase table with its global gates.
func GetPhases(c *fiber.Ctx) error {
	phases, err := repository.Get().Phases()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar as fases")
	}
	return c.JSON(fiber.Map{"phases": phases})
}

// TogglePhase flips the global gate of one phase. Individual unlock sets
// are untouched.
func TogglePhase(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return fiber.NewError(400, "Número de fase inválido")
	}

	phase, err := repository.Get().TogglePhase(number)
	if err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{"success": true, "phase": phase})
}
