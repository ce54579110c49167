package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bmaciel/vendas-api/internal/application/auth"
	"github.com/bmaciel/vendas-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SaleDateUC *usecase.SaleDateUseCase
	SaleUC     *usecase.SaleUseCase
	SummaryUC  *usecase.SummaryUseCase
	ReportUC   *usecase.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Dias de venda (protegido)
	dates := protected.Group("/dates")
	dateHandler := NewSaleDateHandler(deps.SaleDateUC)
	dates.Post("/", dateHandler.Create)
	dates.Get("/", dateHandler.List)
	dates.Delete("/:id", dateHandler.Delete)

	// Vendas (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/export", saleHandler.Export)
	sales.Delete("/:id", saleHandler.Delete)

	// Resumo diário e dashboard (protegido)
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	protected.Get("/summary/daily", summaryHandler.Daily)
	protected.Get("/dashboard", summaryHandler.Dashboard)

	// Relatório mensal (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/monthly", reportHandler.Monthly)
}
