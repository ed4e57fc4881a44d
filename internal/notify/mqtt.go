// Package notify publishes user-facing notifications over MQTT. Publishes
// are fire-and-forget: failures are logged and never surfaced to the
// inspection path.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/360method/homekeep/internal/flow"
)

const (
	topicInspectionCompleted = "homekeep/notifications/inspection-completed"
	topicTaskReminder        = "homekeep/notifications/task-reminder"

	publishTimeout = 5 * time.Second
)

// TaskReminderNote is the payload for an overdue-task reminder.
type TaskReminderNote struct {
	TaskID     string `json:"task_id"`
	PropertyID string `json:"property_id"`
	Title      string `json:"title"`
	Priority   string `json:"priority"`
	AgeDays    int    `json:"age_days"`
}

// Dispatcher publishes notifications to an MQTT broker.
type Dispatcher struct {
	client mqtt.Client
}

// Connect dials the broker, retrying with exponential backoff. Startup-only;
// once connected the paho client handles reconnects itself.
func Connect(brokerURL, clientID string) (*Dispatcher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)

	operation := func() error {
		token := client.Connect()
		token.Wait()
		return token.Error()
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	log.WithField("broker", brokerURL).Info("connected to mqtt broker")
	return &Dispatcher{client: client}, nil
}

// InspectionCompleted publishes an inspection-completed notification.
func (d *Dispatcher) InspectionCompleted(ctx context.Context, note flow.CompletionNote) error {
	return d.publish(topicInspectionCompleted, note)
}

// TaskReminder publishes an overdue-task reminder.
func (d *Dispatcher) TaskReminder(ctx context.Context, note TaskReminderNote) error {
	return d.publish(topicTaskReminder, note)
}

func (d *Dispatcher) publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	token := d.client.Publish(topic, 0, false, data)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	return token.Error()
}

// Noop is a dispatcher used when no broker is configured. It logs and drops
// every notification.
type Noop struct{}

func (Noop) InspectionCompleted(ctx context.Context, note flow.CompletionNote) error {
	log.WithField("inspection_id", note.InspectionID).Debug("notification dropped: no broker configured")
	return nil
}

func (Noop) TaskReminder(ctx context.Context, note TaskReminderNote) error {
	log.WithField("task_id", note.TaskID).Debug("reminder dropped: no broker configured")
	return nil
}
