// handlers/helpers.go
package handlers

import (
	"quizmaster/middleware"
	"quizmaster/models"
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

// currentUser loads the authenticated caller from the store. Sessions of
// users deleted or blocked since the token was issued are rejected here.
// Errors are fiber errors; the app error handler turns them into JSON.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return nil, err
	}

	user, err := repository.Get().FindUserByID(userID)
	if err != nil {
		return nil, fiber.NewError(401, "Conta não encontrada")
	}
	if !user.IsActive {
		return nil, fiber.NewError(403, "Esta conta está bloqueada.")
	}
	return user, nil
}
