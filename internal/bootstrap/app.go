package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/captcha"
	"portfolio-backend/internal/extract"
	"portfolio-backend/internal/history"
	"portfolio-backend/internal/kv"
	kvmemory "portfolio-backend/internal/kv/memory"
	kvredis "portfolio-backend/internal/kv/redis"
	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/llm/gemini"
	"portfolio-backend/internal/llm/openai"
	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/ratelimit"
	"portfolio-backend/internal/server"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/storage/object"
	localstore "portfolio-backend/internal/shared/storage/object/local"
	s3store "portfolio-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies wired once at startup and passed explicitly
// into the pipeline; nothing is reached through ambient globals.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	Store    object.Store
	KV       kv.Store
	Provider llm.Provider
	Captcha  captcha.Verifier
	History  *history.Store
	Limiter  *ratelimit.Limiter
	Service  *portfolio.Service
	Handler  *portfolio.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	store, localDir, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	kvStore, err := buildKV(ctx, cfg)
	if err != nil {
		return nil, err
	}

	provider, err := buildProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	verifier, err := buildCaptcha(cfg)
	if err != nil {
		return nil, err
	}

	historyStore := history.New(kvStore)
	limiter := ratelimit.New(kvStore)

	svc := &portfolio.Service{
		Provider:         provider,
		Store:            store,
		History:          historyStore,
		Limiter:          limiter,
		Captcha:          verifier,
		Extract:          extract.Extract,
		Version:          cfg.Version,
		MaxCharsOverride: cfg.MaxResumeChars,
	}
	handler := portfolio.NewHandler(svc)

	app := &App{
		Config:   cfg,
		Store:    store,
		KV:       kvStore,
		Provider: provider,
		Captcha:  verifier,
		History:  historyStore,
		Limiter:  limiter,
		Service:  svc,
		Handler:  handler,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		Portfolio:     handler,
		LocalFilesDir: localDir,
	})

	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, string, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, "", err
		}
		return store, "", nil
	default:
		store := localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL)
		return store, cfg.LocalStoreDir, nil
	}
}

func buildKV(ctx context.Context, cfg config.Config) (kv.Store, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: REDIS_URL empty; using in-memory key-value store")
			return kvmemory.New(nil), nil
		}
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	return kvredis.New(ctx, cfg.RedisURL)
}

func buildProvider(ctx context.Context, cfg config.Config) (llm.Provider, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" && cfg.IsDevLike() {
			log.Printf("bootstrap: OPENAI_API_KEY empty; using placeholder model provider")
			return llm.Placeholder{}, nil
		}
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	case "gemini":
		if cfg.GCPProjectID == "" && cfg.IsDevLike() {
			log.Printf("bootstrap: GCP_PROJECT_ID empty; using placeholder model provider")
			return llm.Placeholder{}, nil
		}
		return gemini.NewClient(ctx, cfg.GCPProjectID, cfg.GCPRegion, cfg.LLMModel)
	default:
		if cfg.IsDevLike() {
			return llm.Placeholder{}, nil
		}
		return nil, fmt.Errorf("LLM_PROVIDER must be openai or gemini")
	}
}

func buildCaptcha(cfg config.Config) (captcha.Verifier, error) {
	if strings.TrimSpace(cfg.CaptchaSecret) == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: RECAPTCHA_SECRET empty; captcha verification disabled")
			return captcha.Disabled{}, nil
		}
		return nil, fmt.Errorf("RECAPTCHA_SECRET is required")
	}
	return captcha.NewGoogleVerifier(cfg.CaptchaSecret)
}
