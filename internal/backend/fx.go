package backend

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/config"
)

// Params collects the client's dependencies.
type Params struct {
	fx.In

	Config  config.Config
	Tokens  TokenSource
	Metrics *Metrics
	Logger  *zap.Logger
}

func NewFromConfig(p Params) (*Client, error) {
	return New(Config{
		BaseURL:           p.Config.BackendURL,
		Timeout:           time.Duration(p.Config.HTTPTimeoutSeconds) * time.Second,
		RequestsPerSecond: p.Config.BackendRequestsPerSecond,
		Metrics:           p.Metrics,
	}, p.Tokens, p.Logger)
}

func provideMetrics() (*Metrics, error) {
	return NewMetrics(prometheus.DefaultRegisterer)
}

var Module = fx.Module("backend",
	fx.Provide(provideMetrics),
	fx.Provide(NewFromConfig),
)
