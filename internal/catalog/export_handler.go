package catalog

import (
	"fmt"
	"time"

	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/products/export
// Gera a planilha de inventário (.xlsx) com o cadastro completo.
func ExportProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("codigo asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar os produtos")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Inventário"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Código", "Nome", "Cor", "Estoque Atual", "Valor Unitário", "Valor de Venda", "Markup %", "Fornecedor", "Código de Barras"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, p := range products {
			values := []any{
				p.Code,
				p.Name,
				p.Color,
				p.CurrentStock,
				p.UnitCost.InexactFloat64(),
				p.SalePrice.InexactFloat64(),
				"",
				p.Supplier,
				p.Barcode,
			}
			if p.Markup.Valid {
				values[6] = p.Markup.Decimal.InexactFloat64()
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar a planilha")
		}

		filename := fmt.Sprintf("inventario-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		return c.Send(buf.Bytes())
	}
}
