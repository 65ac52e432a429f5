package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Enqueue(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	job := &service.Job{
		ID:        "job-1",
		Name:      service.JobChatMessageCreated,
		RequestID: "req-1",
		Payload:   json.RawMessage(`{"message":"hello"}`),
	}

	require.NoError(t, publisher.Enqueue(context.Background(), job))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "job-1", received.Message.MessageID)
	assert.Equal(t, service.JobChatMessageCreated, received.Message.Attributes["job_name"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.Job
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, job.Name, decoded.Name)
	assert.JSONEq(t, `{"message":"hello"}`, string(decoded.Payload))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.Enqueue(context.Background(), &service.Job{ID: "job-2", Name: service.JobLeadContacted})
	assert.Error(t, err)
}

func TestEncodeJob(t *testing.T) {
	data, attributes, err := encodeJob(&service.Job{ID: "job-5", Name: service.JobLeadContacted, Payload: json.RawMessage(`{}`)})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"job-5","name":"lead.contacted","payload":{}}`, string(data))
	assert.Equal(t, map[string]string{attrJobID: "job-5", attrJobName: service.JobLeadContacted}, attributes)
}
