package main

import (
	"flag"
	"log"
	"os"

	"github.com/robotalks/lumen.go/pkg/relay/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/lumen/"
	device  string
)

const previewLen = 16

func init() {
	if val := os.Getenv("LUMEN_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&device, "device", device, "Device ID to monitor, default from machine ID.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	b, err := mqtt.ParseBrokerURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if device != "" {
		b.Device = device
	}
	q := mqtt.NewQueueFor(b)
	q.Sub(mqtt.PackTopic(b.Device), func(topic string, payload []byte) {
		msg, f, err := mqtt.DecodePack(payload)
		if err != nil {
			log.Printf("%s: bad pack: %v", topic, err)
			return
		}
		preview, more := f.Payload, ""
		if len(preview) > previewLen {
			preview, more = preview[:previewLen], " ..."
		}
		log.Printf("%s: #%d from %q %s size=%d % X%s", topic, msg.Seq, msg.Source, f.Path, len(f.Payload), preview, more)
	})
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	log.Printf("monitoring %s%s", b.TopicPrefix, mqtt.PackTopic(b.Device))
	<-(chan struct{})(nil)
}
