package identity

import (
	"go.uber.org/fx"

	"github.com/superbutton/superbutton-go/internal/backend"
)

var Module = fx.Module("identity",
	fx.Provide(NewSession),
	fx.Provide(func(session *Session) backend.TokenSource { return session }),
)
