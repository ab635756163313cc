package kick

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	kickchat "github.com/johanvandegriff/kick-chat-wrapper"

	"github.com/john/chatview/internal/message"
)

// channelResponse represents the API response from Kick
type channelResponse struct {
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Chatroom struct {
		ID int `json:"id"`
	} `json:"chatroom"`
}

// Connector manages the Kick chat connection for a single channel.
type Connector struct {
	channel    string
	chatroomID int // 0 means not pre-configured, needs resolution
	client     *kickchat.Client
}

// New creates a new Kick connector. A zero chatroomID is resolved through
// the Kick API on Start.
func New(channel string, chatroomID int) *Connector {
	return &Connector{
		channel:    channel,
		chatroomID: chatroomID,
	}
}

// Start begins listening to Kick chat, forwarding every chat message to
// messageChan. Kick does not carry sender display colors, so messages
// arrive with no color set. Blocks until ctx is cancelled or the websocket
// closes.
func (c *Connector) Start(ctx context.Context, messageChan chan<- message.Message) error {
	chatroomID := c.chatroomID
	if chatroomID == 0 {
		id, slug, err := ResolveChannel(c.channel)
		if err != nil {
			return fmt.Errorf("resolve Kick channel %q: %w", c.channel, err)
		}
		log.Printf("Resolved Kick channel: %s -> ID %d", slug, id)
		chatroomID = id
	}

	client, err := kickchat.NewClient()
	if err != nil {
		return fmt.Errorf("create Kick client: %w", err)
	}
	c.client = client
	defer c.client.Close()

	if err := c.client.JoinChannelByID(chatroomID); err != nil {
		return fmt.Errorf("join Kick channel %q (ID %d): %w", c.channel, chatroomID, err)
	}
	log.Printf("Joined Kick channel: %s", c.channel)

	messages := c.client.ListenForMessages()
	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				log.Println("Kick message channel closed")
				return nil
			}
			select {
			case messageChan <- convertMessage(msg):
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ResolveChannel fetches a channel's chatroom ID from the Kick API.
func ResolveChannel(channel string) (chatroomID int, slug string, err error) {
	url := fmt.Sprintf("https://kick.com/api/v2/channels/%s", channel)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, "", fmt.Errorf("create request: %w", err)
	}

	// Browser-like headers; the API sits behind CloudFlare.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/143.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://kick.com/")
	req.Header.Set("Origin", "https://kick.com")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var channelInfo channelResponse
	if err := json.NewDecoder(resp.Body).Decode(&channelInfo); err != nil {
		return 0, "", fmt.Errorf("JSON decode failed: %w", err)
	}

	return channelInfo.Chatroom.ID, channelInfo.Slug, nil
}

// convertMessage converts a Kick chat message to the viewer's message type.
func convertMessage(msg kickchat.ChatMessage) message.Message {
	return message.Message{
		Sender: msg.Sender.Username,
		Badges: convertBadges(msg.Sender.Identity.Badges),
		Text:   msg.Content,
	}
}

// convertBadges maps Kick badge types onto the badge set. Kick-only types
// (og, verified, sub_gifter, ...) have no symbol here and are dropped.
func convertBadges(badges []kickchat.Badge) message.Badges {
	var out message.Badges
	for _, badge := range badges {
		switch badge.Type {
		case "subscriber":
			out.Subscriber = true
		case "founder":
			out.Founder = true
		case "moderator":
			out.Moderator = true
		case "vip":
			out.VIP = true
		}
	}
	return out
}
