package tour

import "go.uber.org/fx"

// Module provides the product tour steps loaded from the embedded definition.
var Module = fx.Module("tour",
	fx.Provide(DefaultSteps),
)
