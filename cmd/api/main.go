package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "creditnow-backend/internal/adapter/http"
	"creditnow-backend/internal/adapter/middleware"
	"creditnow-backend/internal/adapter/repository/mysql"
	"creditnow-backend/internal/config"
	"creditnow-backend/internal/domain/application"
	"creditnow-backend/internal/domain/audit"
	"creditnow-backend/internal/domain/document"
	"creditnow-backend/internal/domain/product"
	"creditnow-backend/internal/domain/repayment"
	"creditnow-backend/internal/infrastructure/cache"
	"creditnow-backend/internal/infrastructure/db"
	ucApplication "creditnow-backend/internal/usecase/application"
	ucApproval "creditnow-backend/internal/usecase/approval"
	ucDocument "creditnow-backend/internal/usecase/document"
	ucProduct "creditnow-backend/internal/usecase/product"
	ucRepayment "creditnow-backend/internal/usecase/repayment"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&product.LoanProduct{},
		&application.LoanApplication{},
		&repayment.Repayment{},
		&repayment.Payment{},
		&audit.AdminAction{},
		&document.UserDocument{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	products := mysql.NewProductRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	reps := mysql.NewRepaymentRepository(gdb)
	audits := mysql.NewAuditRepository(gdb)
	docs := mysql.NewDocumentRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	productUC := ucProduct.NewUsecase(products)
	applicationUC := ucApplication.NewUsecase(apps, products)
	approvalUC := ucApproval.NewUsecase(tx)
	repaymentUC := ucRepayment.NewUsecase(apps, reps, tx)
	documentUC := ucDocument.NewUsecase(docs, tx)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := productUC.SeedTemplates(ctx); err != nil {
		cancel()
		log.Fatalf("seed products: %v", err)
	}
	cancel()

	// handlers
	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(applicationUC, approvalUC)
	productH := httpadp.NewProductHandler(productUC)
	repaymentH := httpadp.NewRepaymentHandler(repaymentUC)
	documentH := httpadp.NewDocumentHandler(documentUC, cfg.UploadDir)
	auditH := httpadp.NewAuditHandler(audits)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	secret := []byte(cfg.JWTSecret)
	auth := middleware.JWTAuth(secret)
	admin := middleware.RequireAdmin()
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	api := e.Group("/api")

	loans := api.Group("/loans")
	loans.GET("/products", productH.ListProducts)
	loans.POST("/products", productH.CreateProduct, auth, admin)
	loans.POST("/apply", loanH.Apply, auth)
	loans.GET("/my-loans", loanH.MyLoans, auth)
	loans.GET("/applications", loanH.ListApplications, auth, admin)
	loans.PUT("/applications/:id/status", loanH.UpdateStatus, auth, admin)

	repayments := api.Group("/repayments", auth)
	repayments.GET("/:loanId", repaymentH.Schedule)
	repayments.POST("/pay", repaymentH.Pay, idemp)

	documents := api.Group("/documents", auth)
	documents.POST("/upload", documentH.Upload)
	documents.GET("/my-documents", documentH.MyDocuments)
	documents.GET("/pending", documentH.Pending, admin)
	documents.PUT("/:id/verify", documentH.Verify, admin)

	api.GET("/admin/actions", auditH.ListActions, auth, admin)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
