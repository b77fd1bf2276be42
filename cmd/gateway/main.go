package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	api "github.com/growthlens/growthlens-platform/internal/api/http"
	"github.com/growthlens/growthlens-platform/internal/assessment"
	"github.com/growthlens/growthlens-platform/internal/auth"
	authmw "github.com/growthlens/growthlens-platform/internal/auth/middleware"
	"github.com/growthlens/growthlens-platform/internal/config"
	"github.com/growthlens/growthlens-platform/internal/db"
	"github.com/growthlens/growthlens-platform/internal/eventlog"
	"github.com/growthlens/growthlens-platform/internal/rbac"
)

func main() {
	cfg := config.FromEnv()

	logger := buildLogger(cfg)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	store := assessment.NewSQLStore(dbh)
	events := eventlog.NewRepo(dbh)
	engine := assessment.NewEngine()

	// --- Auth ---
	authSvc := authmw.NewAuthService(cfg.AuthSecret)
	otpStore := auth.NewOTPStore(cfg.OTPTTL)
	go otpStore.Sweep(context.Background(), time.Minute)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsDev
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public surface
	r.Post("/auth/register", api.RegisterUserHandler(dbh, events))
	r.Post("/auth/login", authmw.LoginHandler(authSvc, dbh))
	r.Post("/auth/otp/request", api.RequestOTPHandler(otpStore, dbh))
	r.Post("/auth/otp/verify", api.VerifyOTPHandler(otpStore, authSvc, dbh))
	r.Get("/questions", api.ListQuestionsHandler())

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))

		pr.With(rbac.Require("assessment:submit")).
			Post("/assessments", api.SubmitAssessmentHandler(engine, store, events))
		pr.With(rbac.RequireAny("assessment:view-own", "assessment:view-all")).
			Get("/assessments/{assessmentID}", api.GetAssessmentHandler(store))
		pr.With(rbac.RequireAny("assessment:view-own", "assessment:view-all")).
			Get("/assessments", api.ListAssessmentsHandler(store))

		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
		pr.With(rbac.Require("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	logger.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("mode", string(cfg.Mode)),
		zap.String("db", cfg.DBDriver))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func buildLogger(cfg config.Config) *zap.Logger {
	var zc zap.Config
	if cfg.Mode == config.ModeOnline {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zc.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
