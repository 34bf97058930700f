package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zhouzirui/servo-bot/backend/internal/config"
	"github.com/zhouzirui/servo-bot/backend/internal/handler"
	"github.com/zhouzirui/servo-bot/backend/internal/service/ai"
	"github.com/zhouzirui/servo-bot/backend/internal/service/robot"
	"github.com/zhouzirui/servo-bot/backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	if envErr != nil {
		zl.Info("no .env file loaded, continuing with system environment variables only", zap.Error(envErr))
	}

	// 网关初始化失败不阻止启动，请求会得到 PROCESSING_ERROR。
	generator, err := ai.NewGenerator(ctx, cfg, zl.Named("ai"))
	if err != nil {
		zl.Warn("generation gateway unavailable, 请检查 GEMINI_API_KEY 或 Ark 相关环境变量",
			zap.String("provider", cfg.Generation.Provider),
			zap.Error(err))
		generator = ai.NewUnavailableGenerator(cfg.Generation.Provider, err)
	} else {
		zl.Info("generation gateway initialized", zap.String("provider", generator.Name()))
	}

	robotSvc := robot.NewService(generator, cfg.Generation.Timeout, zl.Named("robot"))
	router := handler.NewRouter(ctx, robotSvc, zl.Named("http"))

	startServer(ctx, zl, cfg.Server, router)
}

func startServer(ctx context.Context, zl *zap.Logger, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	zl.Info("servo bot backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
	zl.Info("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
