package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/opcare/report-triage-service/internal/adapters/cache"
	"github.com/opcare/report-triage-service/internal/adapters/handler"
	"github.com/opcare/report-triage-service/internal/adapters/middleware"
	"github.com/opcare/report-triage-service/internal/adapters/repository"
	"github.com/opcare/report-triage-service/internal/config"
	"github.com/opcare/report-triage-service/internal/core/services"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// A dead store at startup is logged, not fatal: the process keeps serving
	// and every store call surfaces as a 500 until the store comes back.
	if err := db.PingContext(ctx); err != nil {
		log.Printf("WARNING: failed to connect to database: %v", err)
	} else {
		log.Println("connected to database")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: failed to connect to redis: %v", err)
	} else {
		log.Println("connected to redis")
	}

	identityRepo := repository.NewIdentityRepository(db)
	reportRepo := repository.NewReportRepository(db)
	triageCache := cache.NewRedisTriageCache(redisClient)

	userTokens := services.NewTokenDomain("user", cfg.UserTokenSecret)
	doctorTokens := services.NewTokenDomain("doctor", cfg.DoctorTokenSecret)

	authService := services.NewAuthService(identityRepo, identityRepo, userTokens, doctorTokens)
	registrationService := services.NewRegistrationService(identityRepo, identityRepo)
	reportService := services.NewReportService(reportRepo, identityRepo, identityRepo, triageCache)
	triageService := services.NewTriageService(reportRepo, triageCache)

	userGate := middleware.NewAuthMiddleware("user", userTokens)
	doctorGate := middleware.NewAuthMiddleware("doctor", doctorTokens)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(registrationService, identityRepo, triageService)
	doctorHandler := handler.NewDoctorHandler(triageService)
	reportHandler := handler.NewReportHandler(reportService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Doctor endpoints (doctor/admin signing domain)
	mux.HandleFunc("POST /doctor/signin", authHandler.DoctorSignIn)
	mux.Handle("GET /doctor/dashboard", doctorGate.Require(doctorHandler.Dashboard))
	mux.Handle("GET /doctor/{doctorId}/reports", doctorGate.Require(doctorHandler.Reports))

	// User endpoints (user signing domain)
	mux.HandleFunc("POST /user/signup", userHandler.SignUp)
	mux.HandleFunc("POST /user/signin", authHandler.UserSignIn)
	mux.Handle("GET /user/profile", userGate.Require(userHandler.Profile))
	mux.Handle("GET /user/{userId}/reports", userGate.Require(userHandler.Reports))

	// OP endpoints
	mux.Handle("POST /op/add", userGate.Require(reportHandler.Add))
	mux.Handle("PATCH /op/{id}", doctorGate.Require(reportHandler.UpdateTriage))
	mux.HandleFunc("GET /op/list", reportHandler.List)
	mux.HandleFunc("GET /op/{id}", reportHandler.Get)

	mux.HandleFunc("GET /{$}", home)
	mux.HandleFunc("/", notFound)

	metrics := middleware.NewMetrics("report_triage")
	cors := middleware.CORS(cfg.AllowedOrigins)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, cors(metrics.Handler(mux))); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}

func home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, `{"message":"Welcome to Home Page"}`)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, `{"message":"Invalid Route | Page Not Found"}`)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
