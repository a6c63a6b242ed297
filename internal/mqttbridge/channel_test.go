package mqttbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_FanOut(t *testing.T) {
	hub := NewHub()
	ch := hub.Channel("swCh")
	require.Same(t, ch, hub.Channel("swCh"), "same name yields the same channel")

	a, cancelA := ch.Subscribe(4)
	b, cancelB := ch.Subscribe(4)
	defer cancelA()
	defer cancelB()

	ch.Post(Message{Type: MessageData, Topic: "telemetry/depth", Payload: []byte("12.5")})

	for _, sub := range []<-chan Message{a, b} {
		msg := <-sub
		assert.Equal(t, "telemetry/depth", msg.Topic)
		assert.Equal(t, []byte("12.5"), msg.Payload)
	}

	m := ch.Metrics()
	assert.Equal(t, int64(1), m.Posted)
	assert.Equal(t, int64(2), m.Delivered)
	assert.Equal(t, 2, m.Subscribers)
}

func TestChannel_DropsWhenSubscriberFull(t *testing.T) {
	ch := NewHub().Channel("swCh")
	sub, cancel := ch.Subscribe(1)
	defer cancel()

	ch.Post(Message{Topic: "one"})
	ch.Post(Message{Topic: "two"})

	assert.Equal(t, "one", (<-sub).Topic)
	assert.Equal(t, int64(1), ch.Metrics().Dropped)
}

func TestChannel_CancelAndClose(t *testing.T) {
	ch := NewHub().Channel("swCh")
	sub, cancel := ch.Subscribe(1)
	cancel()
	cancel()

	_, open := <-sub
	assert.False(t, open, "cancel closes the subscription")
	assert.Equal(t, 0, ch.Metrics().Subscribers)

	other, _ := ch.Subscribe(1)
	ch.Close()
	_, open = <-other
	assert.False(t, open)

	late, _ := ch.Subscribe(1)
	_, open = <-late
	assert.False(t, open, "subscribing to a closed channel yields a closed receiver")

	ch.Post(Message{Topic: "ignored"})
	assert.Equal(t, int64(0), ch.Metrics().Posted)
}
