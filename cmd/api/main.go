package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pipeday-api/docs"
	appanalytics "github.com/jhoicas/pipeday-api/internal/application/analytics"
	"github.com/jhoicas/pipeday-api/internal/application/billing"
	"github.com/jhoicas/pipeday-api/internal/application/crm"
	"github.com/jhoicas/pipeday-api/internal/application/pipeline"
	"github.com/jhoicas/pipeday-api/internal/application/settings"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/infrastructure/metrics"
	"github.com/jhoicas/pipeday-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/pipeday-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pipeday-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/pipeday-api/internal/infrastructure/redis"
	"github.com/jhoicas/pipeday-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/pipeday-api/internal/interfaces/http"
	"github.com/jhoicas/pipeday-api/pkg/config"
	"github.com/jhoicas/pipeday-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")
	zl := log.Zerolog()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)

	// Copia en memoria de las cuatro colecciones; las pantallas leen de aquí.
	store := workspace.NewStore(clientRepo, serviceRepo, dealRepo, invoiceRepo, zl)
	if err := store.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del workspace")
	}

	rdb := infraredis.NewClient(cfg.Redis)
	defer rdb.Close()
	settingsSvc := settings.NewService(
		infraredis.NewSettingsRepository(rdb, cfg.Redis.Key),
		defaultSettings(cfg.Settings),
		zl,
	)
	if err := settingsSvc.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("configuración no disponible, se usan valores por defecto")
	}

	// Avisos de factura automática: log siempre; AMQP y e-mail si están configurados.
	notifiers := notify.Multi{notify.NewLogNotifier(zl)}
	if cfg.AMQP.URL != "" {
		publisher, err := notify.DialAMQP(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ no disponible, eventos de factura deshabilitados")
		} else {
			defer publisher.Close()
			notifiers = append(notifiers, publisher)
		}
	}
	if cfg.SMTP.Host != "" {
		notifiers = append(notifiers, notify.NewMailer(cfg.SMTP, settingsSvc))
	}

	m := metrics.New()

	clientUC := crm.NewClientUseCase(clientRepo, store, zl)
	serviceUC := crm.NewServiceUseCase(serviceRepo, store, zl)
	pipelineUC := pipeline.NewUseCase(dealRepo, invoiceRepo, store, notifiers, m, zl)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, store, zl)
	documentUC := billing.NewDocumentUseCase(
		store, settingsSvc, infrapdf.NewMarotoPDFGenerator(), xlsx.NewInvoiceExporter(), invoiceUC,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: docs.FilePath,
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		snap := store.Snapshot()
		return c.JSON(fiber.Map{
			"status":     "ok",
			"service":    cfg.App.Name,
			"fetched_at": snap.FetchedAt,
		})
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		ServiceUC:   serviceUC,
		PipelineUC:  pipelineUC,
		InvoiceUC:   invoiceUC,
		DocumentUC:  documentUC,
		DashboardUC: dashboardUC,
		Settings:    settingsSvc,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// defaultSettings valores del entorno sobre los defaults del dominio.
func defaultSettings(d config.SettingsDefaults) entity.Settings {
	s := entity.DefaultSettings()
	if d.ProfileName != "" {
		s.Profile.Name = d.ProfileName
	}
	if d.ProfileEmail != "" {
		s.Profile.Email = d.ProfileEmail
	}
	s.Profile.PixKey = d.PixKey
	if d.WorkspaceName != "" {
		s.Workspace.Name = d.WorkspaceName
	}
	s.Workspace.Domain = d.WorkspaceDomain
	return s
}
