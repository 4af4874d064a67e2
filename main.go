package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	inventoryUseCase "palengke/src/inventory/application/usecase"
	inventoryCache "palengke/src/inventory/infrastructure/cache"
	inventoryController "palengke/src/inventory/infrastructure/controller"
	inventoryPersistence "palengke/src/inventory/infrastructure/persistence"
	inventoryPort "palengke/src/inventory/domain/port"
	reportUseCase "palengke/src/report/application/usecase"
	reportController "palengke/src/report/infrastructure/controller"
	salesUseCase "palengke/src/sales/application/usecase"
	salesPort "palengke/src/sales/domain/port"
	salesController "palengke/src/sales/infrastructure/controller"
	salesMetrics "palengke/src/sales/infrastructure/metrics"
	salesNotifier "palengke/src/sales/infrastructure/notifier"
	salesPersistence "palengke/src/sales/infrastructure/persistence"
	salesPublisher "palengke/src/sales/infrastructure/publisher"
	sharedConfig "palengke/src/shared/infrastructure/config"
	sharedPersistence "palengke/src/shared/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 PALengke Sales Service - Iniciando...")

	cfg := sharedConfig.Load()

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Println("✅ /metrics endpoint registered")
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Conectar a la base de datos (opcional para bootstrap)
	var db *sql.DB
	db, err := sharedPersistence.Connect(cfg.PostgresDSN())
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (repos en memoria, nada persiste)")
		db = nil
	} else {
		defer db.Close()
		log.Println("✅ Conexión a palengke_db establecida con éxito")

		if err := sharedPersistence.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("❌ Error al ejecutar migraciones: %v", err)
		}
		log.Println("✅ Migraciones aplicadas")
	}

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"db_connected": db != nil,
		})
	})

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	sessions, kafkaPub := setupModules(v1, db, cfg)

	// Iniciar el servidor con shutdown controlado (las sesiones abiertas
	// deben desarmar sus timers antes de salir)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("✅ Servidor PALengke iniciado en http://localhost:%s", cfg.Port)
		log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Error del servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Apagando servicio...")
	sessions.CloseAll()
	if kafkaPub != nil {
		kafkaPub.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Error en shutdown: %v", err)
	}

	log.Println("Servicio detenido")
}

// setupModules configura los módulos Inventory, Sales y Report
func setupModules(v1 *gin.RouterGroup, db *sql.DB, cfg *sharedConfig.Config) (*salesUseCase.SessionManager, *salesPublisher.SaleKafkaPublisher) {
	log.Println("Configurando módulos...")

	ctx := context.Background()

	// ------------------------------------------------------------------
	// Inventory: repositorio + cache de catálogo (camino caliente de taps)
	// ------------------------------------------------------------------
	var productRepo inventoryPort.ProductRepository
	var saleRepo salesPort.SaleRepository
	if db != nil {
		productRepo = inventoryPersistence.NewProductPostgresRepository(db)
		saleRepo = salesPersistence.NewSalePostgresRepository(db)
	} else {
		productRepo = inventoryPersistence.NewProductMemoryRepository()
		saleRepo = salesPersistence.NewSaleMemoryRepository()
	}

	if cfg.SeedSampleData {
		seedUC := inventoryUseCase.NewSeedCatalogUseCase(productRepo)
		if err := seedUC.Execute(ctx); err != nil {
			log.Printf("⚠️  Warning: Could not seed sample catalog: %v", err)
		}
	}

	productCache := inventoryCache.NewProductCache()
	if err := productCache.LoadFromRepo(ctx, productRepo); err != nil {
		log.Printf("⚠️  Warning: Product cache starts empty: %v", err)
	}

	listProductsUC := inventoryUseCase.NewListProductsUseCase(productRepo)
	addProductUC := inventoryUseCase.NewAddProductUseCase(productRepo, productCache)
	restockUC := inventoryUseCase.NewRestockProductUseCase(productRepo, productCache)

	productCtrl := inventoryController.NewProductController(listProductsUC, addProductUC, restockUC, productRepo)
	productCtrl.RegisterRoutes(v1)

	// ------------------------------------------------------------------
	// Sales: notificadores + sesiones POS
	// ------------------------------------------------------------------
	notifiers := []salesPort.SaleNotifier{
		salesNotifier.NewLogNotifier(),
		salesNotifier.NewSaleRecorder(saleRepo, productRepo, productCache),
	}
	if cfg.PrometheusEnabled {
		notifiers = append(notifiers, salesMetrics.NewSaleMetrics())
	}

	var kafkaPub *salesPublisher.SaleKafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub = salesPublisher.NewSaleKafkaPublisher(cfg.KafkaTopic, cfg.KafkaBrokers...)
		notifiers = append(notifiers, kafkaPub)
		log.Printf("✅ Kafka publisher enabled: topic=%s brokers=%v", cfg.KafkaTopic, cfg.KafkaBrokers)
	} else {
		log.Println("Kafka publisher disabled (KAFKA_BROKERS not set)")
	}

	composite := salesNotifier.NewCompositeNotifier(notifiers...)
	sessions := salesUseCase.NewSessionManager(cfg.QuietWindow, cfg.Currency, composite)

	listSalesUC := salesUseCase.NewListSalesUseCase(saleRepo)
	saleCtrl := salesController.NewSaleController(sessions, productCache, listSalesUC)
	saleCtrl.RegisterRoutes(v1)

	// ------------------------------------------------------------------
	// Report: reporte diario (solo con DB)
	// ------------------------------------------------------------------
	if db != nil {
		dailyReportUC := reportUseCase.NewDailyReportUseCase(db, cfg.Currency)
		reportCtrl := reportController.NewReportController(dailyReportUC)
		reportCtrl.RegisterRoutes(v1)
	} else {
		log.Println("⚠️  Daily report disabled (no DB connection)")
	}

	log.Printf("Módulos configurados exitosamente (quiet window: %s)", cfg.QuietWindow)
	return sessions, kafkaPub
}
