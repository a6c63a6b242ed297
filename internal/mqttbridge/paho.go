package mqttbridge

import (
	"fmt"
	"time"

	"scini/pkg/logging"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const subscribeTimeout = 10 * time.Second

// PahoDialer connects with the Eclipse Paho client. The client retries the
// initial connection and reconnects on its own after losing it.
func PahoDialer(cfg BrokerConfig, h Handlers) (BrokerClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("broker URL is empty")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetCleanSession(true)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.KeepAlive > 0 {
		opts.SetKeepAlive(cfg.KeepAlive)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	opts.SetOnConnectHandler(func(mqtt.Client) {
		if h.OnConnect != nil {
			h.OnConnect()
		}
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		if h.OnConnectionLost != nil {
			h.OnConnectionLost(err)
		}
	})

	pc := &pahoClient{onMessage: h.OnMessage}
	opts.SetDefaultPublishHandler(pc.handle)

	pc.client = mqtt.NewClient(opts)
	// With connect retry the token only completes once connected, so it is not awaited.
	pc.client.Connect()
	return pc, nil
}

type pahoClient struct {
	client    mqtt.Client
	onMessage func(topic string, payload []byte)
}

func (p *pahoClient) handle(_ mqtt.Client, msg mqtt.Message) {
	if p.onMessage != nil {
		p.onMessage(msg.Topic(), msg.Payload())
	}
}

func (p *pahoClient) Subscribe(topic string, qos byte) error {
	token := p.client.Subscribe(topic, qos, p.handle)
	if !token.WaitTimeout(subscribeTimeout) {
		return fmt.Errorf("subscribe to %s timed out", topic)
	}
	return token.Error()
}

func (p *pahoClient) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := p.client.Publish(topic, qos, retained, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			logging.Error(workerSubsystem, err, "publish to %s failed", topic)
		}
	}()
	return nil
}

func (p *pahoClient) Disconnect() {
	p.client.Disconnect(250)
}
