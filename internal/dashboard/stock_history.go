package dashboard

import (
	"fmt"
	"sort"
	"time"

	"estoque-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type StockHistoryPoint struct {
	Date    string `json:"data"`
	Inflow  int    `json:"entradas"` // quantidades pedidas (itens de pedido)
	Outflow int    `json:"saidas"`   // quantidades vendidas (itens de venda)
}

type StockHistoryResponse struct {
	ProductID string              `json:"produto_id,omitempty"`
	From      string              `json:"from"`
	To        string              `json:"to"`
	Points    []StockHistoryPoint `json:"points"`
}

type dayRow struct {
	Day      time.Time
	Quantity int
}

// GET /api/dashboard/stock-history?produto_id=&days=30
// Histórico de entrada (pedidos) e saída (vendas) por dia, para o gráfico de
// análise do painel. A agregação roda no banco, não no cliente.
func StockHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Query("produto_id")

		days := 30
		if daysStr := c.Query("days"); daysStr != "" {
			var n int
			if _, err := fmt.Sscan(daysStr, &n); err == nil && n > 0 && n <= 365 {
				days = n
			}
		}

		now := time.Now()
		from := now.AddDate(0, 0, -days)

		outRows, err := sumByDay("itens_venda", "quantidade", productID, from)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o histórico de saídas")
		}
		inRows, err := sumByDay("itens_pedido", "quantidade_pedida", productID, from)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o histórico de entradas")
		}

		byDay := map[string]*StockHistoryPoint{}

		touch := func(day time.Time) *StockHistoryPoint {
			key := day.Format("2006-01-02")
			if p, ok := byDay[key]; ok {
				return p
			}
			p := &StockHistoryPoint{Date: key}
			byDay[key] = p
			return p
		}

		for _, r := range inRows {
			touch(r.Day).Inflow += r.Quantity
		}
		for _, r := range outRows {
			touch(r.Day).Outflow += r.Quantity
		}

		points := make([]StockHistoryPoint, 0, len(byDay))
		for _, p := range byDay {
			points = append(points, *p)
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

		return c.JSON(StockHistoryResponse{
			ProductID: productID,
			From:      from.Format("2006-01-02"),
			To:        now.Format("2006-01-02"),
			Points:    points,
		})
	}
}

func sumByDay(table, quantityColumn, productID string, from time.Time) ([]dayRow, error) {
	dbq := database.DB.Table(table).
		Select("date_trunc('day', created_at) AS day, COALESCE(SUM("+quantityColumn+"), 0) AS quantity").
		Where("created_at >= ?", from).
		Group("day").
		Order("day asc")

	if productID != "" {
		dbq = dbq.Where("produto_id = ?", productID)
	}

	var rows []dayRow
	if err := dbq.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
