package letter

import "go.uber.org/fx"

// Module provides the letter generator to the fx container.
var Module = fx.Provide(NewGenerator)
