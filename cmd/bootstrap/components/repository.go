package components

import (
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	baseOption,
	readstoreModule,
	uowModule,
)
