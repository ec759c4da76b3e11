package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/SheikhZaeem/Task-Manager/internal/config"
	"github.com/SheikhZaeem/Task-Manager/internal/db"
	"github.com/SheikhZaeem/Task-Manager/internal/delivery/handler"
	"github.com/SheikhZaeem/Task-Manager/internal/infrastructure"
	"github.com/SheikhZaeem/Task-Manager/internal/repository"
	"github.com/SheikhZaeem/Task-Manager/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}

	tokens := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)

	userRepo := repository.NewUserRepo(database)
	taskRepo := repository.NewTaskRepo(database)

	userUC := usecase.NewUserUsecase(userRepo, tokens)
	taskUC := usecase.NewTaskUsecase(taskRepo)

	authHandler := handler.NewAuthHandler(userUC)
	taskHandler := handler.NewTaskHandler(taskUC)

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRequests), cfg.RateLimitBurst)
	router := handler.NewRouter(authHandler, taskHandler, tokens, limiter)

	log.Println("Server running on :" + cfg.ServerPort)
	srvErr := http.ListenAndServe(":"+cfg.ServerPort, router)

	// log.Fatal skips deferred calls, so disconnect before exiting
	database.Client().Disconnect(ctx)
	log.Fatal(srvErr)
}
