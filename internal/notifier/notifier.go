// Package notifier subscribes to the delivery channel and relays rendered
// reminder reports to the reminder Slack channel.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/slack-go/slack"

	"github.com/wis-software/huntflow-reloaded-bot/internal/domain/contract"
	"github.com/wis-software/huntflow-reloaded-bot/internal/domain/entity"
	"github.com/wis-software/huntflow-reloaded-bot/internal/report"
)

type Notifier struct {
	redisClient  *redis.Client
	slackClient  contract.SlackClient
	channelName  string // redis pub/sub channel
	slackChannel string // destination Slack channel ID
}

func New(redisClient *redis.Client, slackClient contract.SlackClient, channelName, slackChannel string) *Notifier {
	return &Notifier{
		redisClient:  redisClient,
		slackClient:  slackClient,
		channelName:  channelName,
		slackChannel: slackChannel,
	}
}

// Run subscribes to the delivery channel and processes published messages
// until the context is canceled.
func (n *Notifier) Run(ctx context.Context) error {
	sub := n.redisClient.Subscribe(ctx, n.channelName)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", n.channelName, err)
	}

	log.Printf("Listening for updates on the %s channel", n.channelName)

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			n.HandleMessage(msg.Payload)
		}
	}
}

// HandleMessage decodes one published payload, builds the report and posts it
// when non-empty. Malformed payloads are logged and dropped so the listener
// keeps running.
func (n *Notifier) HandleMessage(payload string) {
	events, err := decodeEvents(payload)
	if err != nil {
		log.Printf("ERROR: could not decode reminder payload: %v", err)
		return
	}

	text := report.Build(events, time.Now())
	if text == "" {
		return
	}

	if _, _, err := n.slackClient.PostMessage(n.slackChannel, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("ERROR: could not post reminder to %s: %v", n.slackChannel, err)
	}
}

// decodeEvents accepts either a single event object or an array of events.
func decodeEvents(payload string) ([]entity.Event, error) {
	trimmed := strings.TrimSpace(payload)

	if strings.HasPrefix(trimmed, "[") {
		var events []entity.Event
		if err := json.Unmarshal([]byte(trimmed), &events); err != nil {
			return nil, err
		}
		return events, nil
	}

	var event entity.Event
	if err := json.Unmarshal([]byte(trimmed), &event); err != nil {
		return nil, err
	}
	return []entity.Event{event}, nil
}
