// handlers/quiz.go - Training quiz endpoints
package handlers

import (
	"errors"
	"log"

	"quizmaster/game"
	"quizmaster/models"
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
)

var sessions *game.Manager

// InitQuizHandlers wires the session manager. Must run after the
// repository is initialized.
func InitQuizHandlers() {
	sessions = game.NewManager(repository.Get())
	log.Println("✅ Quiz session manager ready")
}

// PhaseView is a phase as seen by one collaborator.
type PhaseView struct {
	PhaseNumber          int    `json:"phase_number"`
	Difficulty           string `json:"difficulty"`
	IsUnlocked           bool   `json:"is_unlocked"`
	IndividuallyUnlocked bool   `json:"individually_unlocked"`
	CanAccess            bool   `json:"can_access"`
}

// GetPhases lists the phases with the caller's access decision per phase.
// Recomputed from current store state on every request, so unlocks granted
// by the master apply without a new login.
func GetPhases(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	phases, err := repository.Get().Phases()
	if err != nil {
		return fiber.NewError(500, "Falha ao carregar as fases")
	}

	views := make([]PhaseView, 0, len(phases))
	for _, p := range phases {
		views = append(views, PhaseView{
			PhaseNumber:          p.PhaseNumber,
			Difficulty:           p.Difficulty,
			IsUnlocked:           p.IsUnlocked,
			IndividuallyUnlocked: user.IndividuallyUnlocked(p.PhaseNumber),
			CanAccess:            game.CanAccess(user, p),
		})
	}

	return c.JSON(fiber.Map{"success": true, "phases": views})
}

type StartPhaseRequest struct {
	Phase int `json:"phase"`
}

// StartPhase begins a quiz session on a phase the caller can access.
func StartPhase(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req StartPhaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Requisição inválida")
	}

	phase, ok := findPhase(req.Phase)
	if !ok {
		return fiber.NewError(404, "Fase não encontrada")
	}
	if !game.CanAccess(user, phase) {
		return fiber.NewError(403, "Aguardando liberação do Master para esta fase.")
	}

	view, err := sessions.Start(user.ID, phase.PhaseNumber)
	if err != nil {
		if errors.Is(err, game.ErrContentIncomplete) {
			return fiber.NewError(409, "Erro técnico: "+err.Error())
		}
		return fiber.NewError(500, "Falha ao iniciar a avaliação")
	}

	return c.JSON(fiber.Map{"success": true, "session": view})
}

type SubmitAnswerRequest struct {
	Option int `json:"option"`
}

// SubmitAnswer records the caller's answer for the current question and
// returns the feedback payload. Answers sent while feedback is showing
// are ignored.
func SubmitAnswer(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Requisição inválida")
	}

	view, err := sessions.Submit(user.ID, req.Option)
	if err != nil {
		if errors.Is(err, game.ErrNoActiveSession) {
			return fiber.NewError(409, "Nenhuma avaliação em andamento.")
		}
		return fiber.NewError(500, "Falha ao registrar a resposta")
	}

	return c.JSON(fiber.Map{"success": true, "session": view})
}

// GetSession returns the caller's current session snapshot.
func GetSession(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "session": sessions.State(user.ID)})
}

func findPhase(number int) (models.PhaseStatus, bool) {
	phases, err := repository.Get().Phases()
	if err != nil {
		return models.PhaseStatus{}, false
	}
	for _, p := range phases {
		if p.PhaseNumber == number {
			return p, true
		}
	}
	return models.PhaseStatus{}, false
}
