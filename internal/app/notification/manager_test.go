package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_Notify(t *testing.T) {
	m := NewManager()

	var got []string
	m.Subscribe(func(e Event) { got = append(got, "first") })
	m.Subscribe(func(e Event) { got = append(got, "second") })
	assert.Equal(t, 2, m.SubscriberCount())

	m.Notify()
	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, uint64(1), m.SequenceNo())
}

func TestManager_SequenceNo(t *testing.T) {
	m := NewManager()

	var seqs []uint64
	m.Subscribe(func(e Event) { seqs = append(seqs, e.SequenceNo) })

	m.Notify()
	m.Notify()
	m.Notify()
	assert.Equal(t, []uint64{1, 2, 3}, seqs)
}

func TestManager_Unsubscribe(t *testing.T) {
	m := NewManager()

	calls := 0
	id := m.Subscribe(func(e Event) { calls++ })
	other := 0
	m.Subscribe(func(e Event) { other++ })

	m.Unsubscribe(id)
	m.Unsubscribe("not-a-subscription")
	assert.Equal(t, 1, m.SubscriberCount())

	m.Notify()
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, other)
}

func TestManager_NoSubscribers(t *testing.T) {
	m := NewManager()
	m.Notify()
	assert.Equal(t, uint64(1), m.SequenceNo())
}

func TestManager_Close(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(func(e Event) { calls++ })

	m.Close()
	m.Notify()
	assert.Equal(t, 0, m.SubscriberCount())
	assert.Equal(t, 0, calls)
}

func TestManager_SubscribeFromHandler(t *testing.T) {
	m := NewManager()
	m.Subscribe(func(e Event) {
		if e.SequenceNo == 1 {
			m.Subscribe(func(Event) {})
		}
	})

	m.Notify()
	assert.Equal(t, 2, m.SubscriberCount())
}
