// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/phishdash/phishdash-backend/internal/controller"
	"github.com/phishdash/phishdash-backend/internal/db"
	"github.com/phishdash/phishdash-backend/internal/docstore"
	"github.com/phishdash/phishdash-backend/internal/handler"
	"github.com/phishdash/phishdash-backend/internal/queue"
	"github.com/phishdash/phishdash-backend/internal/repository"
	"github.com/phishdash/phishdash-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()
	q := queue.NewInMemoryQueue()

	store := &docstore.PostgresStore{DB: db.DB}
	userRepo := &repository.UserRepository{DB: db.DB}
	auditRepo := &repository.AuditRepository{DB: db.DB}
	queue.StartCampaignUpdateSubscriber(q, auditRepo)

	detailService := &service.CampaignDetailService{
		Store: store,
		Queue: q,
	}
	analyticsService := &service.AnalyticsService{
		Store: store,
	}
	authService := &service.AuthService{
		UserRepo:  userRepo,
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	detailController := controller.NewDetailController(detailService)
	authController := &controller.AuthController{
		AuthService: authService,
	}

	campaignHandler := &handler.CampaignHandler{
		Analytics: analyticsService,
		AuditRepo: auditRepo,
	}

	r := chi.NewRouter()

	// Campaign detail routes
	r.Get("/campaigns/{id}", detailController.OpenCampaign)
	r.Post("/campaigns/{id}/expand", detailController.Expand)
	r.Post("/campaigns/{id}/collapse", detailController.Collapse)
	r.Post("/campaigns/{id}/edit", detailController.BeginEdit)
	r.Post("/campaigns/{id}/edit/field", detailController.SetField)
	r.Post("/campaigns/{id}/edit/cancel", detailController.CancelEdit)
	r.Post("/campaigns/{id}/edit/save", detailController.SaveEdit)
	r.Get("/campaigns/{id}/analytics", campaignHandler.GetCampaignAnalyticsHandler)
	r.Get("/campaigns/{id}/audit", campaignHandler.ListAuditHandler)

	// Auth routes
	r.Post("/auth/signup", authController.Signup)
	r.Post("/auth/google", authController.GoogleSignup)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
