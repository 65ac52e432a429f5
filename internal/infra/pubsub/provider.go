package pubsub

import (
	"context"
	"log/slog"

	"leadhub/config"
	"leadhub/internal/domain/constants"
	"leadhub/internal/domain/service"
	"leadhub/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops every job. It backs deployments without a notification queue.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) Enqueue(_ context.Context, job *service.Job) error {
	p.logger.Debug("Notification queue disabled, dropping job",
		slog.String("job_id", job.ID),
		slog.String("job_name", job.Name),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// instrumentedPublisher counts enqueue results per job name.
type instrumentedPublisher struct {
	next     service.EventPublisher
	registry *metrics.Registry
}

func (p *instrumentedPublisher) Enqueue(ctx context.Context, job *service.Job) error {
	err := p.next.Enqueue(ctx, job)
	p.registry.JobPublished(job.Name, err)

	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}

type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Registry `optional:"true"`
}

// NewEventPublisher builds the notification queue publisher selected by the pubsub
// config section. Without one, jobs are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	var publisher service.EventPublisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Notification queue not configured, jobs will be dropped")
		publisher = &discardPublisher{logger: logger}
	} else {
		if err := validatePubSubConfig(cfg); err != nil {
			return nil, err
		}

		var err error
		publisher, err = dialPublisher(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing notification queue publisher")

				return publisher.Close()
			},
		})
	}

	if params.Metrics != nil {
		publisher = &instrumentedPublisher{next: publisher, registry: params.Metrics}
	}

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

func dialPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Publishing jobs over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	logger.Info("Publishing jobs to Google Pub/Sub",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}
