package bootstrap

import (
	"autoflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MessagingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
