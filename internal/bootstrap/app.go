package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"candidate-backend/internal/candidates"
	"candidate-backend/internal/docrequests"
	"candidate-backend/internal/llm"
	openai "candidate-backend/internal/llm/openai"
	"candidate-backend/internal/mailer"
	"candidate-backend/internal/ocr"
	"candidate-backend/internal/shared/config"
	"candidate-backend/internal/shared/server"
	"candidate-backend/internal/shared/storage/db"
	"candidate-backend/internal/shared/storage/object"
	localstore "candidate-backend/internal/shared/storage/object/local"
	"candidate-backend/internal/shared/telemetry"
	"candidate-backend/internal/verify"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	CandidatesRepo    candidates.Repo
	CandidatesService *candidates.Service
	DocRequestService *docrequests.Service

	OCREngine *ocr.Engine
	Verifier  *verify.Verifier
	LLM       llm.Client
	Mail      mailer.Sender
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := localstore.New(cfg.LocalStoreDir)

	var repo candidates.Repo
	if sqlDB != nil {
		repo = &candidates.PGRepo{DB: sqlDB}
	} else {
		repo = candidates.NewMemoryRepo()
	}

	engine := ocr.NewEngine(ocr.Config{
		Tesseract: cfg.TesseractBin,
		Pdftoppm:  cfg.PdftoppmBin,
		Lang:      cfg.TesseractLang,
		DPI:       cfg.OCRDpi,
	})
	verifier := verify.NewVerifier(engine)

	var llmClient llm.Client
	if strings.TrimSpace(cfg.LLMAPIKey) != "" {
		client, err := openai.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("build llm client: %w", err)
		}
		llmClient = client
	} else {
		telemetry.Warn("bootstrap.llm_disabled", map[string]any{"reason": "no API key; using fallback email template"})
	}

	var mail mailer.Sender
	if cfg.SenderEmail != "" && cfg.SenderPassword != "" {
		mail = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)
	} else {
		telemetry.Warn("bootstrap.mail_disabled", map[string]any{"reason": "SMTP credentials not configured"})
	}

	candSvc := &candidates.Service{Store: store, Repo: repo}
	docSvc := &docrequests.Service{
		Repo:            repo,
		Store:           store,
		LLM:             llmClient,
		Mail:            mail,
		Verifier:        verifier,
		PublicBaseURL:   cfg.PublicBaseURL,
		VerifyDocuments: cfg.VerifyDocuments,
		MatchThreshold:  cfg.MatchThreshold,
	}

	app := &App{
		Config:            cfg,
		DB:                sqlDB,
		Store:             store,
		CandidatesRepo:    repo,
		CandidatesService: candSvc,
		DocRequestService: docSvc,
		OCREngine:         engine,
		Verifier:          verifier,
		LLM:               llmClient,
		Mail:              mail,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		CandidateHandler:  candidates.NewHandler(candSvc),
		DocRequestHandler: docrequests.NewHandler(docSvc),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{"reason": "DATABASE_URL empty; using in-memory repositories"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{"reason": "connect failed; using in-memory repositories", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{"reason": "migrations failed; using in-memory repositories", "error": err.Error()})
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development", "local", "":
		return true
	}
	return false
}
