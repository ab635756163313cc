package buffer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/john/chatview/internal/message"
)

func contents(r *Ring) []string {
	var out []string
	r.Each(func(m message.Message) {
		out = append(out, m.Text)
	})
	return out
}

func TestInsertNewestFirst(t *testing.T) {
	r := New(5)
	r.Insert(message.Message{Text: "a"})
	r.Insert(message.Message{Text: "b"})
	r.Insert(message.Message{Text: "c"})

	assert.Equal(t, []string{"c", "b", "a"}, contents(r))
	assert.Equal(t, 3, r.Len())
}

func TestEvictionAtCapacity(t *testing.T) {
	r := New(2)
	r.Insert(message.Message{Text: "a"})
	r.Insert(message.Message{Text: "b"})
	r.Insert(message.Message{Text: "c"})

	assert.Equal(t, []string{"c", "b"}, contents(r))
	assert.Equal(t, 2, r.Len())
}

func TestEvictionKeepsMostRecent(t *testing.T) {
	const capacity = 7
	r := New(capacity)
	for i := 0; i < 30; i++ {
		r.Insert(message.Message{Text: fmt.Sprintf("m%d", i)})
	}

	want := make([]string, 0, capacity)
	for i := 29; i > 29-capacity; i-- {
		want = append(want, fmt.Sprintf("m%d", i))
	}
	assert.Equal(t, want, contents(r))
}

func TestDegenerateCapacityClamped(t *testing.T) {
	r := New(0)
	r.Insert(message.Message{Text: "a"})
	r.Insert(message.Message{Text: "b"})

	assert.Equal(t, []string{"b"}, contents(r))
}
