package alerts

import (
	"estoque-backend/internal/audit"
	"estoque-backend/internal/auth"
	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

type ProductAlertResponse struct {
	ID           string             `json:"id"`
	Code         string             `json:"codigo"`
	Name         string             `json:"nome"`
	CurrentStock int                `json:"estoque_atual"`
	AlertLevel   models.AlertColor  `json:"nivel_alerta"`
	Thresholds   *models.StockAlert `json:"alertas_estoque"`
}

type UpsertThresholdsRequest struct {
	GreenMin  *int `json:"limite_verde_min"`
	GreenMax  *int `json:"limite_verde_max"`
	YellowMin *int `json:"limite_amarelo_min"`
	YellowMax *int `json:"limite_amarelo_max"`
	RedMin    *int `json:"limite_vermelho_min"`
	RedMax    *int `json:"limite_vermelho_max"`
}

// thresholdsFromRequest monta o registro a persistir; os seis inteiros vão
// para o banco exatamente como chegaram
func thresholdsFromRequest(productID string, body UpsertThresholdsRequest) models.StockAlert {
	return models.StockAlert{
		ProductID: productID,
		GreenMin:  *body.GreenMin,
		GreenMax:  *body.GreenMax,
		YellowMin: *body.YellowMin,
		YellowMax: *body.YellowMax,
		RedMin:    *body.RedMin,
		RedMax:    *body.RedMax,
	}
}

// GET /api/alerts/products
// Lista todos os produtos com o nível de alerta calculado (a tela de alertas)
func ListProductAlertsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("codigo asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os produtos")
		}

		var thresholds []models.StockAlert
		if err := database.DB.Find(&thresholds).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar as faixas de alerta")
		}

		byProduct := make(map[string]*models.StockAlert, len(thresholds))
		for i := range thresholds {
			byProduct[thresholds[i].ProductID] = &thresholds[i]
		}

		res := make([]ProductAlertResponse, 0, len(products))
		for _, p := range products {
			t := byProduct[p.ID]
			res = append(res, ProductAlertResponse{
				ID:           p.ID,
				Code:         p.Code,
				Name:         p.Name,
				CurrentStock: p.CurrentStock,
				AlertLevel:   Classify(p.CurrentStock, t),
				Thresholds:   t,
			})
		}
		return c.JSON(res)
	}
}

// GET /api/alerts/products/:produtoId
func GetThresholdsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t models.StockAlert
		if err := database.DB.First(&t, "produto_id = ?", c.Params("produtoId")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto sem faixas de alerta configuradas")
		}
		return c.JSON(t)
	}
}

// PUT /api/alerts/products/:produtoId
// Upsert das seis faixas com chave de conflito em produto_id (última escrita
// vence). Os valores são aceitos como chegam; ver comentário no modelo.
func UpsertThresholdsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		productID := c.Params("produtoId")

		var product models.Product
		if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}

		var body UpsertThresholdsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.GreenMin == nil || body.GreenMax == nil ||
			body.YellowMin == nil || body.YellowMax == nil ||
			body.RedMin == nil || body.RedMax == nil {
			return fiber.NewError(fiber.StatusBadRequest, "As seis faixas de alerta são obrigatórias")
		}

		t := thresholdsFromRequest(productID, body)

		err = database.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "produto_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"limite_verde_min", "limite_verde_max",
				"limite_amarelo_min", "limite_amarelo_max",
				"limite_vermelho_min", "limite_vermelho_max",
				"updated_at",
			}),
		}).Create(&t).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível salvar as faixas de alerta")
		}

		// Relê para devolver o registro efetivo (id original no caso de update)
		var saved models.StockAlert
		if err := database.DB.First(&saved, "produto_id = ?", productID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar as faixas salvas")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      user.ID,
			UserName:    user.Name,
			EntityType:  "alerta_estoque",
			EntityID:    saved.ID,
			Action:      models.AuditActionUpdate,
			Description: "Faixas de alerta atualizadas: " + product.Code,
			After:       saved,
		})

		return c.JSON(saved)
	}
}
