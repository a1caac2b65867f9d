package terminal

import (
	"errors"
	"strconv"

	"estoque-backend/internal/audit"
	"estoque-backend/internal/auth"
	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleLineRequest struct {
	ProductID string `json:"produto_id"`
	Code      string `json:"codigo"` // alternativa ao produto_id (código ou código de barras)
	Quantity  int    `json:"quantidade"`
}

type CreateSaleRequest struct {
	Items          []SaleLineRequest `json:"itens"`
	AmountTendered *decimal.Decimal  `json:"valor_recebido"`
}

// POST /api/sales
// Finaliza a venda do terminal. Todas as validações (carrinho, produtos,
// valor recebido) acontecem antes de abrir a transação; a gravação da venda,
// dos itens e da baixa de estoque é um único commit. A baixa é um decremento
// atômico no banco, duas vendas simultâneas do mesmo produto não se perdem.
// Estoque negativo é aceito por decisão de negócio (venda acima do estoque).
func CreateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Adicione ao menos um item à venda")
		}
		if body.AmountTendered == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Informe o valor recebido")
		}

		draft := NewSaleDraft()
		for _, item := range body.Items {
			var product models.Product
			query := database.DB
			switch {
			case item.ProductID != "":
				query = query.Where("id = ?", item.ProductID)
			case item.Code != "":
				query = query.Where("codigo = ? OR codigo_barras = ?", item.Code, item.Code)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Todo item precisa de produto ou código")
			}
			if err := query.First(&product).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
			}

			line := DraftLine{
				ProductID:    product.ID,
				ProductCode:  product.Code,
				ProductName:  product.Name,
				ProductColor: product.Color,
				Quantity:     item.Quantity,
				UnitPrice:    product.SalePrice,
			}
			if err := draft.AddLine(line); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Quantidade inválida para o produto "+product.Code)
			}
		}

		change, err := draft.ChangeFor(*body.AmountTendered)
		if err != nil {
			if errors.Is(err, ErrInsufficientTender) {
				return fiber.NewError(fiber.StatusBadRequest, "Valor recebido insuficiente")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Venda inválida")
		}

		sale := models.Sale{
			Total:          draft.Total(),
			AmountTendered: *body.AmountTendered,
			Change:         change,
			UserID:         user.ID,
		}
		for _, line := range draft.Lines() {
			sale.Items = append(sale.Items, models.SaleItem{
				ProductID:    line.ProductID,
				ProductCode:  line.ProductCode,
				ProductName:  line.ProductName,
				ProductColor: line.ProductColor,
				Quantity:     line.Quantity,
				UnitPrice:    line.UnitPrice,
				Subtotal:     line.Subtotal(),
			})
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}
			for _, line := range draft.Lines() {
				err := tx.Model(&models.Product{}).
					Where("id = ?", line.ProductID).
					UpdateColumn("estoque_atual", gorm.Expr("estoque_atual - ?", line.Quantity)).Error
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível finalizar a venda")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      user.ID,
			UserName:    user.Name,
			EntityType:  "venda",
			EntityID:    sale.ID,
			Action:      models.AuditActionCreate,
			Description: "Venda finalizada, total " + sale.Total.StringFixed(2),
			After:       sale,
		})

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// GET /api/sales?limit=50
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 50
		if limitStr := c.Query("limit"); limitStr != "" {
			if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}

		var sales []models.Sale
		err := database.DB.
			Preload("Items").
			Order("created_at DESC").
			Limit(limit).
			Find(&sales).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as vendas")
		}
		return c.JSON(sales)
	}
}
