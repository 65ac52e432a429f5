// Package pubsub publishes notification jobs to Google Pub/Sub or, in development,
// to a local HTTP consumer speaking the Pub/Sub push format.
package pubsub

import (
	"encoding/json"

	"leadhub/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys. Subscriptions filter on attrJobName.
const (
	attrJobID     = "job_id"
	attrJobName   = "job_name"
	attrRequestID = "request_id"
)

// encodeJob returns the message body and attributes both publishers send for job.
func encodeJob(job *service.Job) ([]byte, map[string]string, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to encode job %s", job.Name)
	}

	attributes := map[string]string{
		attrJobID:   job.ID,
		attrJobName: job.Name,
	}
	if job.RequestID != "" {
		attributes[attrRequestID] = job.RequestID
	}

	return data, attributes, nil
}
