package employee

import "go.uber.org/fx"

// Module exposes the employee service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
