package orders

import (
	"fmt"
	"log"
	"time"

	"estoque-backend/internal/audit"
	"estoque-backend/internal/auth"
	"estoque-backend/internal/config"
	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateOrderItemRequest struct {
	ProductID string `json:"produto_id"`
	Quantity  int    `json:"quantidade_pedida"`
}

type CreateOrderRequest struct {
	LeadTimeDays int                      `json:"prazo_entrega_dias"`
	Items        []CreateOrderItemRequest `json:"itens"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func bandsFromConfig(cfg *config.Config) AgingBands {
	return AgingBands{YellowDays: cfg.OrderAlertYellowDays}
}

// refreshAlertColor recalcula a cor do pedido e atualiza a coluna snapshot
// quando o valor mudou. A coluna é só retrato; a função é a fonte de verdade.
func refreshAlertColor(o *models.Order, bands AgingBands, now time.Time) {
	color := ClassifyAging(o.CreatedDate, o.LeadTimeDays, now, bands)
	if color == o.AlertColor {
		return
	}
	o.AlertColor = color
	err := database.DB.Model(&models.Order{}).
		Where("id = ?", o.ID).
		UpdateColumn("cor_alerta", color).Error
	if err != nil {
		log.Printf("[WARN] snapshot de cor do pedido %s não atualizado: %v", o.Number, err)
	}
}

// POST /api/orders
func CreateOrderHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.LeadTimeDays <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Prazo de entrega precisa ser maior que zero")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "O pedido precisa ter ao menos um item")
		}
		for _, item := range body.Items {
			if item.ProductID == "" || item.Quantity <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Todo item precisa de produto e quantidade positiva")
			}
		}

		now := time.Now()
		order := models.Order{
			CreatedDate:  now,
			PromisedDate: now.AddDate(0, 0, body.LeadTimeDays),
			LeadTimeDays: body.LeadTimeDays,
			Status:       models.OrderEmitido,
			UserID:       user.ID,
		}
		order.AlertColor = ClassifyAging(order.CreatedDate, order.LeadTimeDays, now, bandsFromConfig(cfg))

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			number, genErr := GenerateOrderNumber(tx, now)
			if genErr != nil {
				return genErr
			}
			order.Number = number

			for _, item := range body.Items {
				var product models.Product
				if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Produto não encontrado: "+item.ProductID)
				}
				// Congela código/nome/cor do produto no momento do pedido
				order.Items = append(order.Items, models.OrderItem{
					ProductID:    product.ID,
					ProductCode:  product.Code,
					ProductName:  product.Name,
					ProductColor: product.Color,
					Quantity:     item.Quantity,
				})
			}

			return tx.Create(&order).Error
		})
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				return fiberErr
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o pedido")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      user.ID,
			UserName:    user.Name,
			EntityType:  "pedido",
			EntityID:    order.ID,
			Action:      models.AuditActionCreate,
			Description: "Pedido criado: " + order.Number,
			After:       order,
		})

		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

// GET /api/orders
// A cor de alerta é recalculada a cada leitura; o snapshot no banco é
// atualizado de carona quando divergir.
func ListOrdersHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		err := database.DB.
			Preload("Items").
			Order("data_criacao DESC").
			Find(&orders).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os pedidos")
		}

		bands := bandsFromConfig(cfg)
		now := time.Now()
		for i := range orders {
			refreshAlertColor(&orders[i], bands, now)
		}

		return c.JSON(orders)
	}
}

// GET /api/orders/:id
func GetOrderHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var order models.Order
		if err := database.DB.Preload("Items").First(&order, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}

		refreshAlertColor(&order, bandsFromConfig(cfg), time.Now())
		return c.JSON(order)
	}
}

// PUT /api/orders/:id/status
// Receber um pedido dá entrada no estoque dos itens; devolver um pedido já
// recebido desfaz essa entrada. Tudo na mesma transação da troca de status.
func UpdateOrderStatusHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var order models.Order
		if err := database.DB.Preload("Items").First(&order, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}

		var body UpdateOrderStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if !models.ValidOrderStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Status inválido: %q", body.Status))
		}

		oldStatus := order.Status
		if body.Status == oldStatus {
			return c.JSON(order)
		}

		sign, nowApplied := stockTransition(order.StockApplied, body.Status)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if sign != 0 {
				if err := applyStockDelta(tx, order.Items, sign); err != nil {
					return err
				}
			}

			order.Status = body.Status
			order.StockApplied = nowApplied
			return tx.Model(&models.Order{}).
				Where("id = ?", order.ID).
				UpdateColumns(map[string]any{
					"status":           body.Status,
					"estoque_aplicado": nowApplied,
				}).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o status do pedido")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      user.ID,
			UserName:    user.Name,
			EntityType:  "pedido",
			EntityID:    order.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Pedido %s: %s -> %s", order.Number, oldStatus, body.Status),
		})

		refreshAlertColor(&order, bandsFromConfig(cfg), time.Now())
		return c.JSON(order)
	}
}

// applyStockDelta soma (ou subtrai) as quantidades do pedido no estoque com
// incremento atômico no banco, nunca com read-then-write.
func applyStockDelta(tx *gorm.DB, items []models.OrderItem, sign int) error {
	for _, item := range items {
		if item.ProductID == "" {
			continue
		}
		err := tx.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			UpdateColumn("estoque_atual", gorm.Expr("estoque_atual + ?", sign*item.Quantity)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// DELETE /api/orders/:id
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var order models.Order
		if err := database.DB.First(&order, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.OrderItem{}, "pedido_id = ?", order.ID).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Order{}, "id = ?", order.ID).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível excluir o pedido")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      user.ID,
			UserName:    user.Name,
			EntityType:  "pedido",
			EntityID:    order.ID,
			Action:      models.AuditActionDelete,
			Description: "Pedido excluído: " + order.Number,
			Before:      order,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
