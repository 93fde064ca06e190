package auth

import (
	"go.uber.org/fx"

	cfgpkg "github.com/pslmedia/backoffice/pkg/config"
	"github.com/pslmedia/backoffice/pkg/token"
)

func newIssuer(cfg *cfgpkg.Config) *token.Issuer {
	return token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

// Module exposes the auth service and the token issuer via Fx.
var Module = fx.Options(
	fx.Provide(newIssuer),
	fx.Provide(NewService),
)
