package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cybershield-academy/internal/app"
	"cybershield-academy/internal/config"
	"cybershield-academy/internal/content"
	"cybershield-academy/internal/infra/memory"
	pgstore "cybershield-academy/internal/infra/postgres"
	rediscache "cybershield-academy/internal/infra/redis"
	"cybershield-academy/internal/logger"
	"cybershield-academy/internal/render"
	transport "cybershield-academy/internal/transport/http"
)

const defaultFontPath = "assets/fonts/DejaVuSans.ttf"

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the academy server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	// Content comes from postgres when configured, otherwise from the
	// compiled-in catalog. A cache layer sits in front either way.
	var loader memory.ModuleLoader = memory.NewStaticModuleLoader(content.Catalog())
	if pool != nil {
		loader = pgstore.NewModuleLoader(pool)
	}
	contentTTL := config.TTLDuration(cfg.Content.TTL, 10*time.Minute)
	var contentRepo app.ContentRepository
	if redisClient != nil {
		contentRepo = rediscache.NewContentCache(redisClient, loader, contentTTL)
	} else {
		contentRepo = memory.NewContentCache(loader, contentTTL)
	}

	var results app.ResultRepository
	var diplomas app.DiplomaRepository
	var subs app.SubscriptionRepository
	if pool != nil {
		results = pgstore.NewResultRepository(pool)
		diplomas = pgstore.NewDiplomaRepository(pool)
		subs = pgstore.NewSubscriptionRepository(pool)
	} else {
		results = memory.NewResultStore()
		diplomas = memory.NewDiplomaStore()
		subs = memory.NewSubscriptionStore()
	}

	fontPath := cfg.Certificate.FontPath
	if fontPath == "" {
		fontPath = defaultFontPath
	}
	renderer := render.NewRenderer(fontPath, content.RequiredModules())

	quizService := app.NewQuizService(contentRepo, results, log, nil)
	diplomaService := app.NewDiplomaService(results, diplomas, renderer, content.RequiredModules(), log, nil)
	accessService := app.NewAccessService(subs, nil)

	wsHandler := transport.NewWSHandler(quizService, accessService, log)
	apiHandler := transport.NewHandler(diplomaService, cfg.Server.AdminToken, log)
	webhookHandler := transport.NewWebhookHandler(accessService, cfg.Billing.WebhookSecret, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", transport.Healthz)
	mux.HandleFunc("/ws/quiz", wsHandler.ServeWS)
	mux.HandleFunc("/api/progress", apiHandler.GetProgress)
	mux.HandleFunc("/api/diploma", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			apiHandler.GetDiploma(w, r)
		case http.MethodPost:
			apiHandler.IssueDiploma(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/diploma/download", apiHandler.DownloadDiploma)
	mux.HandleFunc("/api/admin/diploma/name", apiHandler.RenameDiploma)
	mux.HandleFunc("/webhook/payment", webhookHandler.ServePayment)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("starting academy server", zap.String("port", finalPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
