// Package mqttbridge connects the shell to the vehicle's MQTT message bus.
//
// A Worker goroutine owns the broker connection. Other components talk to it
// only by posting Commands to its Port, without waiting for an answer.
// Everything the worker hears from the broker is posted to a named broadcast
// Channel obtained from a Hub, which any number of readers can subscribe to.
//
//	hub := mqttbridge.NewHub()
//	bridge := mqttbridge.NewBridge(ctx, cfg.MQTT, hub, mqttbridge.PahoDialer)
//	port := bridge.NewWorker()
//	ch := bridge.OpenChannel("swCh")
//	bridge.Init(port, ch)
package mqttbridge
