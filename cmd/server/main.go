package main

import (
	"log"
	"strings"

	"estoque-backend/internal/alerts"
	"estoque-backend/internal/audit"
	"estoque-backend/internal/auth"
	"estoque-backend/internal/cache"
	"estoque-backend/internal/catalog"
	"estoque-backend/internal/config"
	"estoque-backend/internal/dashboard"
	"estoque-backend/internal/database"
	"estoque-backend/internal/models"
	"estoque-backend/internal/orders"
	"estoque-backend/internal/terminal"
	"estoque-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// .env é opcional, em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := config.Load()
	database.Init(cfg)
	cache.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	// CORS origins: string separada por vírgula
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Auth público
	api.Post("/auth/register-master-admin", auth.RegisterMasterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Rotas autenticadas
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Post("/auth/change-password", auth.ChangePasswordHandler())

	// Administração de usuários (somente admin master)
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireAdmin())

	adminRoutes.Post("/users", users.CreateUserHandler())
	adminRoutes.Get("/users", users.ListUsersHandler())
	adminRoutes.Put("/users/:id/permissions", users.UpdatePermissionsHandler())
	adminRoutes.Delete("/users/:id", users.DeleteUserHandler())
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Estoque (catálogo de produtos)
	protected.Get("/products", auth.RequirePermission(models.PermVisualizarEstoque), catalog.ListProductsHandler())
	protected.Get("/products/search", auth.RequirePermission(models.PermVisualizarEstoque), catalog.SearchProductsHandler())
	protected.Get("/products/lookup", auth.RequirePermission(models.PermVisualizarTerminal), catalog.LookupProductHandler())
	protected.Get("/products/export", auth.RequirePermission(models.PermVisualizarEstoque), catalog.ExportProductsHandler())
	protected.Get("/products/:id", auth.RequirePermission(models.PermVisualizarEstoque), catalog.GetProductHandler())
	protected.Post("/products", auth.RequirePermission(models.PermVisualizarCadastro), catalog.CreateProductHandler())
	protected.Put("/products/:id", auth.RequirePermission(models.PermEditarEstoque), catalog.UpdateProductHandler())

	// Alertas de estoque
	protected.Get("/alerts/products", auth.RequirePermission(models.PermVisualizarAlertas), alerts.ListProductAlertsHandler())
	protected.Get("/alerts/products/:produtoId", auth.RequirePermission(models.PermVisualizarAlertas), alerts.GetThresholdsHandler())
	protected.Put("/alerts/products/:produtoId", auth.RequirePermission(models.PermEditarAlertas), alerts.UpsertThresholdsHandler())

	// Pedidos de compra
	protected.Post("/orders", auth.RequirePermission(models.PermEditarPedidos), orders.CreateOrderHandler(cfg))
	protected.Get("/orders", auth.RequirePermission(models.PermVisualizarPedidos), orders.ListOrdersHandler(cfg))
	protected.Get("/orders/:id", auth.RequirePermission(models.PermVisualizarPedidos), orders.GetOrderHandler(cfg))
	protected.Put("/orders/:id/status", auth.RequirePermission(models.PermEditarPedidos), orders.UpdateOrderStatusHandler(cfg))
	protected.Delete("/orders/:id", auth.RequirePermission(models.PermEditarPedidos), orders.DeleteOrderHandler())

	// Terminal de vendas
	protected.Post("/sales", auth.RequirePermission(models.PermVisualizarTerminal), terminal.CreateSaleHandler())
	protected.Get("/sales", auth.RequirePermission(models.PermVisualizarTerminal), terminal.ListSalesHandler())

	// Dashboard
	protected.Get("/dashboard/stock-history", auth.RequirePermission(models.PermVisualizarEstoque), dashboard.StockHistoryHandler())

	log.Println("Servidor rodando na porta:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
