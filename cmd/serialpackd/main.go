package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/lumen.go/pkg/framework"
	"github.com/robotalks/lumen.go/pkg/relay"
	"github.com/robotalks/lumen.go/pkg/relay/mqtt"
	"github.com/robotalks/lumen.go/pkg/transport"
)

var (
	mqttURL      string
	device       string
	wsAddr       string
	wsPath       = "/pack"
	frameTimeout = relay.DefaultFrameTimeout
)

func init() {
	transport.SetupFlags()
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL to receive packs from, e.g. mqtt://broker:1883/lumen/")
	flag.StringVar(&device, "device", device, "Device ID in MQTT topics, default from machine ID.")
	flag.StringVar(&wsAddr, "ws", wsAddr, "Listen address for websocket pack streams, e.g. :8080")
	flag.StringVar(&wsPath, "ws-path", wsPath, "HTTP path of the websocket endpoint.")
	flag.DurationVar(&frameTimeout, "frame-timeout", frameTimeout, "Timeout delivering a single pack.")
	flag.Set("logtostderr", "true")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if mqttURL == "" && wsAddr == "" {
		glog.Exit("at least one of -mqtt or -ws is required")
	}

	bridge := relay.NewBridge(transport.Default())
	bridge.FrameTimeout = frameTimeout
	runner := framework.NewRunner().HandleSignals()
	runner.Go(framework.NamedRun("bridge", bridge))

	if mqttURL != "" {
		b, err := mqtt.ParseBrokerURL(mqttURL)
		if err != nil {
			glog.Exitf("invalid -mqtt: %v", err)
		}
		if device != "" {
			b.Device = device
		}
		glog.Infof("relaying %s%s to %s", b.TopicPrefix, mqtt.PackTopic(b.Device), transport.Default().URL)
		runner.Go(&relay.MQTTSource{Queue: mqtt.NewQueueFor(b), Device: b.Device, Bridge: bridge})
	}
	if wsAddr != "" {
		runner.Go(&relay.WebsocketSource{Addr: wsAddr, Path: wsPath, Bridge: bridge})
	}

	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
