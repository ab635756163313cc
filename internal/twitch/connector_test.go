package twitch

import (
	"testing"

	"github.com/gempir/go-twitch-irc/v4"
	"github.com/stretchr/testify/assert"

	"github.com/john/chatview/internal/message"
)

func TestConvertMessage(t *testing.T) {
	msg := twitch.PrivateMessage{
		User: twitch.User{
			DisplayName: "Ana",
			Color:       "#8A2BE2",
			Badges:      map[string]int{"moderator": 1, "subscriber": 0},
		},
		Message: "hello chat",
	}

	got := convertMessage(msg)

	assert.Equal(t, "Ana", got.Sender)
	assert.Equal(t, &message.RGB{R: 138, G: 43, B: 226}, got.Color)
	assert.Equal(t, "hello chat", got.Text)
	assert.True(t, got.Badges.Moderator)
	// A version-0 badge still counts as present.
	assert.True(t, got.Badges.Subscriber)
	assert.False(t, got.Badges.VIP)
	assert.False(t, got.Badges.Founder)
}

func TestConvertMessageNoColor(t *testing.T) {
	msg := twitch.PrivateMessage{
		User:    twitch.User{DisplayName: "Bob"},
		Message: "plain",
	}

	got := convertMessage(msg)
	assert.Nil(t, got.Color)
	assert.Equal(t, message.Badges{}, got.Badges)
}
