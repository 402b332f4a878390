package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ifclub/ifclub-api/internal/bootstrap"
	"github.com/ifclub/ifclub-api/internal/config"
	"github.com/ifclub/ifclub-api/internal/router"
	"github.com/ifclub/ifclub-api/internal/shared/database"
	"github.com/ifclub/ifclub-api/internal/shared/logger"
	"github.com/ifclub/ifclub-api/internal/shared/validator"
)

func main() {
	env := parseFlags()

	logger.Setup(env)
	slog.Info("서버 초기화 시작", "env", env)

	if err := run(env); err != nil {
		slog.Error("서버 실행 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", env)
}

func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()
	return *env
}

func run(env string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}
	slog.Info("환경 변수 로드 성공", "db_driver", cfg.Database.Driver)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	srv, err := setupServer(cfg, db)
	if err != nil {
		return err
	}

	return serveUntilSignal(ctx, srv, cfg.Server.GracefulTimeout)
}

func setupServer(cfg *config.Config, db *database.DB) (*bootstrap.Server, error) {
	engine := bootstrap.NewBootstrap(cfg).SetupEngine()

	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	router.Setup(engine, cfg, db)

	slog.Info("서버 설정 완료", "env", cfg.App.Env)
	return bootstrap.New(cfg, engine), nil
}

// serveUntilSignal runs the server until it fails or ctx is cancelled by a signal
func serveUntilSignal(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case <-ctx.Done():
		slog.Info("종료 신호 수신됨")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
		defer cancel()

		slog.Info("서버 종료 중...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}
