// handlers/admin/users.go - Collaborator administration
package admin

import (
	"errors"
	"strings"

	"quizmaster/models"
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists collaborators, optionally filtered by name or e-mail.
// The master account is never part of the listing.
func GetUsers(c *fiber.Ctx) error {
	users, err := repository.Get().Users()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar usuários")
	}

	search := strings.ToLower(c.Query("search", ""))
	infos := make([]models.UserInfo, 0, len(users))
	for i := range users {
		u := &users[i]
		if u.Role == models.RoleMaster {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		infos = append(infos, u.Info())
	}

	return c.JSON(fiber.Map{
		"users": infos,
		"total": len(infos),
	})
}

// ToggleUserActive blocks or unblocks a collaborator account.
func ToggleUserActive(c *fiber.Ctx) error {
	user, err := repository.Get().ToggleUserActive(c.Params("id"))
	if err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{"success": true, "user": user.Info()})
}

// DeleteUser removes a collaborator permanently. The answer history of
// the deleted user stays in the log.
func DeleteUser(c *fiber.Ctx) error {
	if err := repository.Get().DeleteUser(c.Params("id")); err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Usuário excluído com sucesso",
	})
}

type togglePhaseRequest struct {
	Phase int `json:"phase"`
}

// ToggleUserPhase grants or revokes one phase for a collaborator.
func ToggleUserPhase(c *fiber.Ctx) error {
	var req togglePhaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Requisição inválida")
	}

	user, err := repository.Get().ToggleUserPhase(c.Params("id"), req.Phase)
	if err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{"success": true, "user": user.Info()})
}

// UnlockAllPhases grants the full phase set to a collaborator.
func UnlockAllPhases(c *fiber.Ctx) error {
	user, err := repository.Get().UnlockAllPhases(c.Params("id"))
	if err != nil {
		return adminError(err)
	}
	return c.JSON(fiber.Map{"success": true, "user": user.Info()})
}

func adminError(err error) error {
	switch {
	case errors.Is(err, repository.ErrMasterImmutable):
		return fiber.NewError(403, "Não é possível excluir ou bloquear o usuário master.")
	case errors.Is(err, repository.ErrNotFound):
		return fiber.NewError(404, "Registro não encontrado")
	default:
		return fiber.NewError(500, "Falha ao salvar as alterações")
	}
}
