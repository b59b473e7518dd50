package sandbox

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/superbutton/superbutton-go/internal/config"
	"github.com/superbutton/superbutton-go/internal/observability/tracing"
	"github.com/superbutton/superbutton-go/pkg/db"
)

func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(tracing.GinMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func openDatabase() (*gorm.DB, error) {
	return db.Open(db.Config{Path: os.Getenv("SANDBOX_DB_PATH")})
}

func newTokenIssuer(cfg config.Config) *TokenIssuer {
	return NewTokenIssuer(cfg.TokenSecret)
}

func register(server *Server, engine *gin.Engine) {
	server.Register(engine)
}

func run(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("sandbox server stopped", zap.Error(err))
				}
			}()
			log.Info("sandbox server listening", zap.String("addr", srv.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Module("sandbox",
	fx.Provide(NewEngine),
	fx.Provide(openDatabase),
	fx.Provide(newTokenIssuer),
	fx.Provide(NewServer),
	fx.Invoke(register),
	fx.Invoke(run),
)
