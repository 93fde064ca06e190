package message

import "go.uber.org/fx"

// Module exposes the message service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
