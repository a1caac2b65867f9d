package auth

import (
	"strings"

	"estoque-backend/internal/config"
	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterMasterAdminRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"senha_atual"`
	NewPassword     string `json:"senha_nova"`
}

// POST /api/auth/register-master-admin
// Seed idempotente do administrador master: se já existe um admin com o
// mesmo email apenas confirma; um segundo admin diferente é bloqueado.
func RegisterMasterAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterMasterAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email == "" || body.Password == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome, email e senha são obrigatórios")
		}

		var existing models.User
		err := database.DB.Where("tipo_acesso = ?", models.AccessAdmin).First(&existing).Error
		if err == nil {
			if existing.Email == body.Email {
				return c.JSON(fiber.Map{"ok": true, "created": false, "user_id": existing.ID})
			}
			return fiber.NewError(fiber.StatusForbidden, "Já existe um administrador master")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			AccessType:   models.AccessAdmin,
			Permissions:  models.FullPermissions(),
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o usuário")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"ok":      true,
			"created": true,
			"user_id": user.ID,
		})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email ou senha incorretos")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email ou senha incorretos")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":               user.ID,
				"nome":             user.Name,
				"email":            user.Email,
				"tipo_acesso":      user.AccessType,
				"permissoes":       user.Permissions,
				"senha_temporaria": user.TemporaryPassword,
			},
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"id":               user.ID,
			"nome":             user.Name,
			"email":            user.Email,
			"tipo_acesso":      user.AccessType,
			"permissoes":       user.Permissions,
			"senha_temporaria": user.TemporaryPassword,
		})
	}
}

// POST /api/auth/change-password
// Também limpa a flag de senha temporária do fluxo de primeiro acesso.
func ChangePasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return err
		}

		var body ChangePasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if len(body.NewPassword) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "A nova senha precisa ter no mínimo 8 caracteres")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.CurrentPassword)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Senha atual incorreta")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		user.PasswordHash = string(hash)
		user.TemporaryPassword = false

		if err := database.DB.Save(user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a senha")
		}

		return c.JSON(fiber.Map{"ok": true})
	}
}
