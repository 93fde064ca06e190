package catalog

import "go.uber.org/fx"

// Module exposes the package catalog service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
