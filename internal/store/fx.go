package store

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/backend"
	"github.com/superbutton/superbutton-go/internal/config"
	"github.com/superbutton/superbutton-go/internal/identity"
	"github.com/superbutton/superbutton-go/internal/store/domain"
)

// Params collects the store's dependencies.
type Params struct {
	fx.In

	Config        config.Config
	Client        *backend.Client
	Notifications *NotificationController
	Logger        *zap.Logger
}

func NewFromConfig(p Params) *Store {
	app := domain.App{
		Name:             p.Config.AppName,
		URL:              p.Config.AppURL,
		Environment:      p.Config.Environment,
		DashboardURL:     p.Config.DashboardURL,
		DocumentationURL: p.Config.DocumentationURL,
		GithubURL:        p.Config.GithubURL,
		CDNURL:           p.Config.CDNURL,
	}
	return New(p.Client, p.Notifications, app, p.Logger)
}

// watchAuthState mirrors identity changes into the store so selectors and
// guards read one source of truth.
func watchAuthState(session *identity.Session, store *Store) {
	session.Subscribe(store.OnAuthStateChanged)
}

var Module = fx.Module("store",
	fx.Provide(NewNotificationController),
	fx.Provide(NewFromConfig),
	fx.Invoke(watchAuthState),
)
