package kick

import (
	"testing"

	kickchat "github.com/johanvandegriff/kick-chat-wrapper"
	"github.com/stretchr/testify/assert"
)

func TestConvertBadges(t *testing.T) {
	badges := []kickchat.Badge{
		{Type: "moderator"},
		{Type: "subscriber", Text: "6 months"},
		{Type: "og"}, // no symbol configured for kick-only badges
	}

	got := convertBadges(badges)
	assert.True(t, got.Moderator)
	assert.True(t, got.Subscriber)
	assert.False(t, got.VIP)
	assert.False(t, got.Founder)
}

func TestConvertMessageHasNoColor(t *testing.T) {
	msg := kickchat.ChatMessage{Content: "hi"}
	msg.Sender.Username = "ana"

	got := convertMessage(msg)
	assert.Equal(t, "ana", got.Sender)
	assert.Equal(t, "hi", got.Text)
	assert.Nil(t, got.Color)
}
