package mqttbridge

import "time"

// MessageType tells readers of a Channel what a Message carries.
type MessageType string

const (
	// MessageData is a payload received on a subscribed topic.
	MessageData MessageType = "data"
	// MessageStatus reports a change of the broker connection.
	MessageStatus MessageType = "status"
)

// Message is what the worker broadcasts.
type Message struct {
	Type      MessageType
	Topic     string
	Payload   []byte
	Connected bool
	Err       error
	Time      time.Time
}

// Op is the operation a Command asks the worker to perform.
type Op string

const (
	OpConfigure Op = "configure"
	OpSubscribe Op = "subscribe"
	OpPublish   Op = "publish"

	opResubscribe Op = "resubscribe"
)

// BrokerConfig describes the broker connection.
type BrokerConfig struct {
	URL            string
	ClientID       string
	Username       string
	Password       string
	KeepAlive      time.Duration
	ConnectTimeout time.Duration
}

// Command is posted to a worker's Port.
type Command struct {
	Op       Op
	Broker   *BrokerConfig
	Channel  string
	Topic    string
	QoS      byte
	Retained bool
	Payload  []byte
}

// Port accepts commands for a worker. Post never blocks.
type Port interface {
	Post(cmd Command) bool
}
