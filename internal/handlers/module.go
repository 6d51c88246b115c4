package handlers

import "go.uber.org/fx"

// Module provides the website routes
var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Provide(NewSubmitLimiter),
	fx.Invoke(RegisterRoutes),
)
