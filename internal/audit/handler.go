package audit

import (
	"strconv"

	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          string             `json:"id"`
	CreatedAt   string             `json:"created_at"`
	UserID      string             `json:"usuario_id"`
	UserName    string             `json:"nome_usuario"`
	EntityType  string             `json:"tipo_entidade"`
	EntityID    string             `json:"entidade_id"`
	Action      models.AuditAction `json:"acao"`
	Description string             `json:"descricao"`
	BeforeData  string             `json:"dados_antes"`
	AfterData   string             `json:"dados_depois"`
}

// GET /api/admin/audit-logs?tipo_entidade=produto&entidade_id=...&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entityType := c.Query("tipo_entidade")
		entityID := c.Query("entidade_id")
		userID := c.Query("usuario_id")

		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		dbq := database.DB.Model(&models.AuditLog{})

		if entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if entityID != "" {
			dbq = dbq.Where("entity_id = ?", entityID)
		}
		if userID != "" {
			dbq = dbq.Where("user_id = ?", userID)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os logs")
		}

		res := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			res = append(res, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				UserID:      l.UserID,
				UserName:    l.UserName,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
				BeforeData:  l.BeforeData,
				AfterData:   l.AfterData,
			})
		}
		return c.JSON(res)
	}
}
