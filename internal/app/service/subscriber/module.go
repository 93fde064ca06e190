package subscriber

import "go.uber.org/fx"

// Module exposes the subscriber service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
