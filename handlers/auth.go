// handlers/auth.go
package handlers

import (
	"errors"
	"os"
	"time"

	"quizmaster/models"
	"quizmaster/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	MotherName    string `json:"mother_name"`
	FavoriteColor string `json:"favorite_color"`
}

type RecoverRequest struct {
	Email         string `json:"email"`
	MotherName    string `json:"mother_name"`
	FavoriteColor string `json:"favorite_color"`
	NewPassword   string `json:"new_password"`
}

type AuthResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Token   string           `json:"token,omitempty"`
	User    *models.UserInfo `json:"user,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Login authenticates a collaborator by e-mail and password.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Requisição inválida"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "E-mail e senha são obrigatórios"})
	}

	repo := repository.Get()
	user, err := repo.FindUserByEmail(req.Email)
	if err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "E-mail ou senha inválidos."})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "E-mail ou senha inválidos."})
	}

	if !user.IsActive {
		return c.Status(403).JSON(AuthResponse{Success: false, Error: "Esta conta está bloqueada."})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Falha ao gerar token"})
	}

	info := user.Info()
	return c.JSON(AuthResponse{Success: true, Token: token, User: &info})
}

// Register creates a new collaborator account. New accounts start with
// phase 1 individually unlocked.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Requisição inválida"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.MotherName == "" || req.FavoriteColor == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Todos os campos são obrigatórios"})
	}
	if len(req.Password) < 6 {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "A senha deve ter pelo menos 6 caracteres"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Falha ao processar a senha"})
	}

	user := models.User{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   string(hash),
		MotherName:     req.MotherName,
		FavoriteColor:  req.FavoriteColor,
		Role:           models.RoleUser,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
		UnlockedPhases: []int{1},
	}

	if err := repository.Get().CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.Status(400).JSON(AuthResponse{Success: false, Error: "E-mail já cadastrado."})
		}
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Falha ao criar a conta"})
	}

	return c.JSON(AuthResponse{Success: true, Message: "Cadastro realizado com sucesso! Faça login."})
}

// Recover resets a password after the challenge answers match. Passwords
// are stored hashed, so the old one cannot be shown back; the collaborator
// chooses a new one instead.
func Recover(c *fiber.Ctx) error {
	var req RecoverRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Requisição inválida"})
	}

	if len(req.NewPassword) < 6 {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "A nova senha deve ter pelo menos 6 caracteres"})
	}

	repo := repository.Get()
	user, err := repo.FindUserByEmail(req.Email)
	if err != nil || user.MotherName != req.MotherName || user.FavoriteColor != req.FavoriteColor {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Informações de recuperação incorretas."})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Falha ao processar a senha"})
	}

	user.PasswordHash = string(hash)
	if err := repo.UpdateUser(*user); err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Falha ao atualizar a senha"})
	}

	return c.JSON(AuthResponse{Success: true, Message: "Usuário validado. Defina sua nova senha e faça login."})
}

// Me returns the authenticated collaborator's profile, re-read from the
// store so unlocks granted by the master show up immediately.
func Me(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	info := user.Info()
	return c.JSON(fiber.Map{"success": true, "user": info})
}

func generateToken(user *models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "quizmaster-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Hour * 720).Unix(), // 30 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
