package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/bmaciel/vendas-api/internal/application/auth"
	"github.com/bmaciel/vendas-api/internal/application/usecase"
	"github.com/bmaciel/vendas-api/internal/domain/finance"
	infrapdf "github.com/bmaciel/vendas-api/internal/infrastructure/pdf"
	"github.com/bmaciel/vendas-api/internal/infrastructure/postgres"
	httpRouter "github.com/bmaciel/vendas-api/internal/interfaces/http"
	"github.com/bmaciel/vendas-api/pkg/config"
	"github.com/bmaciel/vendas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Taxas padrão do negócio; qualquer consulta pode sobrescrevê-las.
	defaultFees := finance.FeeParams{
		Variable:     decimal.NewFromFloat(cfg.Fees.Variable),
		FixedPerUnit: decimal.NewFromFloat(cfg.Fees.FixedPerUnit),
		Tax:          decimal.NewFromFloat(cfg.Fees.Tax),
		Anticipation: decimal.NewFromFloat(cfg.Fees.Anticipation),
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	dateRepo := postgres.NewSaleDateRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	saleDateUC := usecase.NewSaleDateUseCase(dateRepo)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, defaultFees)
	summaryUC := usecase.NewSummaryUseCase(saleRepo, defaultFees)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(saleRepo, pdfGenerator, defaultFees)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vendas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		SaleDateUC: saleDateUC,
		SaleUC:     saleUC,
		SummaryUC:  summaryUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
