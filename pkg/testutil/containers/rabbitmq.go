//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcrabbitmq "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

// RabbitMQContainer wraps a testcontainers RabbitMQ instance.
type RabbitMQContainer struct {
	Container testcontainers.Container
	URL       string
}

// NewRabbitMQContainer starts a RabbitMQ container and registers teardown
// on t.
func NewRabbitMQContainer(t *testing.T) *RabbitMQContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcrabbitmq.Run(ctx, "rabbitmq:3.12-alpine")
	if err != nil {
		t.Fatalf("failed to start rabbitmq container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	url, err := container.AmqpURL(ctx)
	if err != nil {
		t.Fatalf("failed to get amqp URL: %v", err)
	}

	return &RabbitMQContainer{Container: container, URL: url}
}
