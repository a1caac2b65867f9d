package catalog

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"estoque-backend/internal/audit"
	"estoque-backend/internal/auth"
	"estoque-backend/internal/cache"
	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name      string           `json:"nome"`
	Color     string           `json:"cor"`
	Quantity  *int             `json:"quantidade"`
	Barcode   string           `json:"codigo_barras"`
	Supplier  string           `json:"fornecedor"`
	UnitCost  *decimal.Decimal `json:"valor_unitario"`
	SalePrice *decimal.Decimal `json:"valor_venda"`
	Markup    *decimal.Decimal `json:"markup"`
	PhotoURL  string           `json:"foto_url"`
}

type UpdateProductRequest struct {
	Name      *string          `json:"nome"`
	Color     *string          `json:"cor"`
	Quantity  *int             `json:"quantidade"`
	Barcode   *string          `json:"codigo_barras"`
	Supplier  *string          `json:"fornecedor"`
	UnitCost  *decimal.Decimal `json:"valor_unitario"`
	SalePrice *decimal.Decimal `json:"valor_venda"`
	Markup    *decimal.Decimal `json:"markup"`
	PhotoURL  *string          `json:"foto_url"`
}

// GET /api/products?limit=50
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 50
		if limitStr := c.Query("limit"); limitStr != "" {
			if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}

		var products []models.Product
		if err := database.DB.Order("codigo asc").Limit(limit).Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os produtos")
		}
		return c.JSON(products)
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}
		return c.JSON(p)
	}
}

// GET /api/products/search?q=
// Busca por nome, código ou código de barras (a mesma busca da tela inicial)
func SearchProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			return c.JSON([]models.Product{})
		}

		var products []models.Product
		pattern := "%" + q + "%"
		err := database.DB.
			Where("nome ILIKE ? OR codigo ILIKE ? OR codigo_barras ILIKE ?", pattern, pattern, pattern).
			Order("nome asc").
			Limit(20).
			Find(&products).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível buscar os produtos")
		}
		return c.JSON(products)
	}
}

// GET /api/products/lookup?codigo=
// Resolução exata de código ou código de barras para o terminal de vendas.
// Passa pelo cache quando o Redis está configurado.
func LookupProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.TrimSpace(c.Query("codigo"))
		if code == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Informe o código ou código de barras")
		}

		if cache.Client != nil {
			if data, err := cache.Client.Get(c.Context(), cache.ProductKey(code)).Bytes(); err == nil {
				c.Set("Content-Type", "application/json")
				return c.Send(data)
			}
		}

		var p models.Product
		err := database.DB.
			Where("codigo = ? OR codigo_barras = ?", code, code).
			First(&p).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}

		if cache.Client != nil {
			if data, err := json.Marshal(p); err == nil {
				cache.Client.Set(c.Context(), cache.ProductKey(code), data, cache.ProductLookupTTL)
			}
		}

		return c.JSON(p)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Quantity == nil || body.UnitCost == nil || body.SalePrice == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Preencha todos os campos obrigatórios")
		}
		if body.UnitCost.Sign() <= 0 || body.SalePrice.Sign() <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Valores de custo e venda precisam ser positivos")
		}

		p := models.Product{
			Name:         body.Name,
			Color:        strings.TrimSpace(body.Color),
			CurrentStock: *body.Quantity,
			Barcode:      strings.TrimSpace(body.Barcode),
			Supplier:     strings.TrimSpace(body.Supplier),
			UnitCost:     *body.UnitCost,
			SalePrice:    *body.SalePrice,
			PhotoURL:     strings.TrimSpace(body.PhotoURL),
		}

		// Markup e preço de venda são mantidos consistentes aqui, como a tela
		// de cadastro fazia no cliente; ambos são persistidos
		if body.Markup != nil {
			p.Markup = decimal.NullDecimal{Decimal: *body.Markup, Valid: true}
		} else if markup, ok := ComputeMarkup(p.UnitCost, p.SalePrice); ok {
			p.Markup = decimal.NullDecimal{Decimal: markup, Valid: true}
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			code, genErr := GenerateProductCode(tx)
			if genErr != nil {
				return genErr
			}
			p.Code = code
			return tx.Create(&p).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o produto")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      user.ID,
			UserName:    user.Name,
			EntityType:  "produto",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: "Produto cadastrado: " + p.Code,
			After:       p,
		})

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /api/products/:id
// Produtos nunca são removidos fisicamente, apenas editados.
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}
		before := p

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		// Mexer em preço é uma permissão à parte da edição de estoque
		if touchesPricing(body) && !user.HasPermission(models.PermEditarValores) {
			return fiber.NewError(fiber.StatusForbidden, "Você não tem permissão para alterar valores")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Nome não pode ficar vazio")
			}
			p.Name = name
		}
		if body.Color != nil {
			p.Color = strings.TrimSpace(*body.Color)
		}
		if body.Quantity != nil {
			p.CurrentStock = *body.Quantity
		}
		if body.Barcode != nil {
			p.Barcode = strings.TrimSpace(*body.Barcode)
		}
		if body.Supplier != nil {
			p.Supplier = strings.TrimSpace(*body.Supplier)
		}
		if body.PhotoURL != nil {
			p.PhotoURL = strings.TrimSpace(*body.PhotoURL)
		}

		if body.UnitCost != nil {
			if body.UnitCost.Sign() <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Valor de custo precisa ser positivo")
			}
			p.UnitCost = *body.UnitCost
		}
		if body.SalePrice != nil {
			if body.SalePrice.Sign() <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Valor de venda precisa ser positivo")
			}
			p.SalePrice = *body.SalePrice
		}

		switch {
		case body.Markup != nil:
			p.Markup = decimal.NullDecimal{Decimal: *body.Markup, Valid: true}
			if sale, ok := ComputeSalePrice(p.UnitCost, *body.Markup); ok && body.SalePrice == nil {
				p.SalePrice = sale
			}
		case body.UnitCost != nil || body.SalePrice != nil:
			if markup, ok := ComputeMarkup(p.UnitCost, p.SalePrice); ok {
				p.Markup = decimal.NullDecimal{Decimal: markup, Valid: true}
			}
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o produto")
		}

		invalidateProductCache(c.Context(), &before)
		invalidateProductCache(c.Context(), &p)

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      user.ID,
			UserName:    user.Name,
			EntityType:  "produto",
			EntityID:    p.ID,
			Action:      models.AuditActionUpdate,
			Description: "Produto atualizado: " + p.Code,
			Before:      before,
			After:       p,
		})

		return c.JSON(p)
	}
}

func touchesPricing(body UpdateProductRequest) bool {
	return body.UnitCost != nil || body.SalePrice != nil || body.Markup != nil
}

func invalidateProductCache(ctx context.Context, p *models.Product) {
	if cache.Client == nil {
		return
	}
	keys := []string{cache.ProductKey(p.Code)}
	if p.Barcode != "" {
		keys = append(keys, cache.ProductKey(p.Barcode))
	}
	cache.Client.Del(ctx, keys...)
}
