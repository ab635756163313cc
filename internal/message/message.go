package message

import "fmt"

// RGB is a 24-bit display color as sent by the chat platform.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" color string. Returns nil for an empty or
// malformed value, which callers treat as "no color set".
func ParseHex(s string) *RGB {
	var c RGB
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil || n != 3 {
		return nil
	}
	return &c
}

// Badges is the set of sender roles a platform attaches to a message.
// Each role is present at most once, so a set of flags is enough.
type Badges struct {
	Subscriber bool
	Founder    bool
	Moderator  bool
	VIP        bool
}

// Message represents a chat message from any platform (Twitch, Kick, etc.)
// after ingestion. Values are immutable once produced by a connector.
type Message struct {
	Sender string // sender's display name
	Color  *RGB   // display color, nil if the platform sent none
	Badges Badges
	Text   string // message body, no embedded line breaks
}
