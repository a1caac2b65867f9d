package users

import (
	"strings"

	"estoque-backend/internal/audit"
	"estoque-backend/internal/auth"
	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Senha temporária entregue ao usuário no cadastro; o primeiro login força a
// troca pela flag senha_temporaria
const tempPassword = "Ab102030@"

type CreateUserRequest struct {
	Name        string             `json:"nome"`
	Email       string             `json:"email"`
	Permissions models.Permissions `json:"permissoes"`
}

type UpdatePermissionsRequest struct {
	Permissions models.Permissions `json:"permissoes"`
}

type UserResponse struct {
	ID                string             `json:"id"`
	Name              string             `json:"nome"`
	Email             string             `json:"email"`
	AccessType        models.AccessType  `json:"tipo_acesso"`
	Permissions       models.Permissions `json:"permissoes"`
	TemporaryPassword bool               `json:"senha_temporaria"`
}

func toResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		AccessType:        u.AccessType,
		Permissions:       u.Permissions,
		TemporaryPassword: u.TemporaryPassword,
	}
}

// accessTypeFor: marcar "gerenciar_admin" promove o usuário a administrador,
// como a tela de gerenciamento fazia
func accessTypeFor(perms models.Permissions) models.AccessType {
	if perms[models.PermGerenciarAdmin] {
		return models.AccessAdmin
	}
	return models.AccessComum
}

// POST /api/admin/users
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Preencha nome e email")
		}

		var existing models.User
		if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Já existe um usuário com este email")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		if body.Permissions == nil {
			body.Permissions = models.Permissions{}
		}

		user := models.User{
			Name:              body.Name,
			Email:             body.Email,
			PasswordHash:      string(hash),
			AccessType:        accessTypeFor(body.Permissions),
			Permissions:       body.Permissions,
			TemporaryPassword: true,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o usuário")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      admin.ID,
			UserName:    admin.Name,
			EntityType:  "usuario",
			EntityID:    user.ID,
			Action:      models.AuditActionCreate,
			Description: "Usuário criado: " + user.Email,
			After:       toResponse(&user),
		})

		return c.Status(fiber.StatusCreated).JSON(toResponse(&user))
	}
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("nome asc").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os usuários")
		}

		res := make([]UserResponse, 0, len(users))
		for i := range users {
			res = append(res, toResponse(&users[i]))
		}
		return c.JSON(res)
	}
}

// PUT /api/admin/users/:id/permissions
func UpdatePermissionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}

		var body UpdatePermissionsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.Permissions == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Informe as permissões")
		}

		before := toResponse(&user)

		user.Permissions = body.Permissions
		user.AccessType = accessTypeFor(body.Permissions)

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar as permissões")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      admin.ID,
			UserName:    admin.Name,
			EntityType:  "usuario",
			EntityID:    user.ID,
			Action:      models.AuditActionUpdate,
			Description: "Permissões atualizadas: " + user.Email,
			Before:      before,
			After:       toResponse(&user),
		})

		return c.JSON(toResponse(&user))
	}
}

// DELETE /api/admin/users/:id
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		if admin.ID == c.Params("id") {
			return fiber.NewError(fiber.StatusBadRequest, "Você não pode excluir o próprio usuário")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}

		if err := database.DB.Delete(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível excluir o usuário")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      admin.ID,
			UserName:    admin.Name,
			EntityType:  "usuario",
			EntityID:    user.ID,
			Action:      models.AuditActionDelete,
			Description: "Usuário excluído: " + user.Email,
			Before:      toResponse(&user),
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
