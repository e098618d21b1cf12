package bootstrap

import (
	"context"
	"log/slog"

	"autoflow/internal/infra/messaging"
	"autoflow/internal/pkg/config"
	"autoflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher logs events when no broker is configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL が未設定のため、イベントはログに出力します")
		return messaging.NewLogPublisher(), nil
	}

	publisher, err := messaging.NewAMQPPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := publisher.Connect(ctx); err != nil {
				return err
			}
			logger.Info("メッセージブローカーに接続しました", "exchange", cfg.AMQP.Exchange)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
