package notifier

import (
	"encoding/json"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/kafka"
	"go.uber.org/zap"
)

const credentialsTemplateID = "customer-credentials"

// KafkaNotifier publishes credential notifications to the notification
// topic. Delivery is fire-and-forget: a failed publish is logged and
// never rolls back the approval that triggered it.
type KafkaNotifier struct {
	publisher domain.Publisher
	topic     string
}

func NewKafkaNotifier(publisher domain.Publisher, topic string) *KafkaNotifier {
	return &KafkaNotifier{publisher: publisher, topic: topic}
}

func (n *KafkaNotifier) SendCredentials(recipient string, variables map[string]string) {
	event := kafka.CredentialEvent{
		TemplateID: credentialsTemplateID,
		Recipient:  recipient,
		Variables:  variables,
	}

	value, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to marshal credential notification", zap.Error(err))
		return
	}

	go func() {
		if err := n.publisher.Publish(n.topic, domain.Message{Key: []byte(recipient), Value: value}); err != nil {
			zap.L().Error("failed to publish credential notification",
				zap.String("recipient", recipient),
				zap.Error(err))
		}
	}()
}
