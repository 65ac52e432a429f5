package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "leadhub/internal/delivery/context"
	"leadhub/internal/domain/service"

	"github.com/google/uuid"
)

// enqueueJob hands a job to the notification queue. Delivery is best effort:
// failures are logged and never reach the caller.
func enqueueJob(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, name string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode job payload", slog.String("job", name), slog.Any("error", err))

		return
	}

	job := &service.Job{
		ID:        uuid.New().String(),
		Name:      name,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Payload:   data,
	}

	if err := publisher.Enqueue(ctx, job); err != nil {
		logger.Warn("Failed to enqueue job", slog.String("job", name), slog.String("jobID", job.ID), slog.Any("error", err))

		return
	}

	logger.Debug("Job enqueued", slog.String("job", name), slog.String("jobID", job.ID))
}
