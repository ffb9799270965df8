package mqtt

import (
	"net/url"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/robotalks/lumen.go/pkg/env"
)

// Broker is the parsed form of a relay URL:
//
//	mqtt://[user[:password]@]host[:port]/prefix/?device=ID&client-id=ID
type Broker struct {
	Options     *paho.ClientOptions
	TopicPrefix string
	Device      string
}

// ParseBrokerURL creates client options, topic prefix and device from URL.
// The device defaults to the machine's device ID.
func ParseBrokerURL(brokerURL string) (*Broker, error) {
	u, err := url.Parse(brokerURL)
	if err != nil {
		return nil, err
	}
	server := "tcp"
	if u.Scheme == "mqtts" {
		server = "ssl"
	}
	server += "://" + u.Host

	b := &Broker{TopicPrefix: strings.TrimPrefix(u.Path, "/")}
	if b.TopicPrefix != "" && !strings.HasSuffix(b.TopicPrefix, "/") {
		b.TopicPrefix += "/"
	}

	query := u.Query()
	if b.Device = query.Get("device"); b.Device == "" {
		b.Device = env.DeviceID()
	}

	b.Options = paho.NewClientOptions()
	b.Options.AddBroker(server).
		SetAutoReconnect(true).
		SetCleanSession(true)
	if u.User != nil {
		b.Options.SetUsername(u.User.Username())
		if pwd, ok := u.User.Password(); ok {
			b.Options.SetPassword(pwd)
		}
	}
	if clientID := query.Get("client-id"); clientID != "" {
		b.Options.SetClientID(clientID)
	}
	return b, nil
}

// PackTopic is the topic (without prefix) carrying packs for device.
func PackTopic(device string) string {
	return device + "/pack"
}
