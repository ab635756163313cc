package twitch

import (
	"context"
	"log"

	"github.com/gempir/go-twitch-irc/v4"

	"github.com/john/chatview/internal/message"
)

// Connector manages the Twitch chat connection for a single channel.
type Connector struct {
	username string
	oauth    string
	channel  string
	client   *twitch.Client
}

// New creates a new Twitch connector. Empty credentials join anonymously,
// which is all a read-only viewer needs.
func New(username, oauth, channel string) *Connector {
	return &Connector{
		username: username,
		oauth:    oauth,
		channel:  channel,
	}
}

// Start begins listening to Twitch chat, forwarding every chat message to
// messageChan. Non-chat protocol traffic (joins, notices, reconnects) never
// reaches the channel; only the private-message handler is registered.
// Blocks until ctx is cancelled.
func (c *Connector) Start(ctx context.Context, messageChan chan<- message.Message) error {
	if c.username != "" {
		c.client = twitch.NewClient(c.username, c.oauth)
	} else {
		c.client = twitch.NewAnonymousClient()
	}

	c.client.OnPrivateMessage(func(msg twitch.PrivateMessage) {
		chatMessage := convertMessage(msg)

		select {
		case messageChan <- chatMessage:
		case <-ctx.Done():
		}
	})

	c.client.OnConnect(func() {
		log.Println("Connected to Twitch IRC")
	})

	c.client.Join(c.channel)

	// Start the client in a goroutine
	go func() {
		if err := c.client.Connect(); err != nil {
			log.Printf("Twitch IRC connection error: %v", err)
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	c.client.Disconnect()
	return ctx.Err()
}

// convertMessage extracts the fields the viewer renders from a Twitch
// private message.
func convertMessage(msg twitch.PrivateMessage) message.Message {
	return message.Message{
		Sender: msg.User.DisplayName,
		Color:  message.ParseHex(msg.User.Color),
		Badges: convertBadges(msg.User.Badges),
		Text:   msg.Message,
	}
}

// convertBadges maps Twitch's badge/version map onto the badge set. Badge
// versions carry no meaning here; presence is what gets rendered.
func convertBadges(badges map[string]int) message.Badges {
	has := func(name string) bool {
		_, ok := badges[name]
		return ok
	}
	return message.Badges{
		Subscriber: has("subscriber"),
		Founder:    has("founder"),
		Moderator:  has("moderator"),
		VIP:        has("vip"),
	}
}
