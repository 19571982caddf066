package main

import (
	"flag"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/robotalks/tiva.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/tiva.go/pkg/l1/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/tiva/"
)

func init() {
	if val := os.Getenv("TIVA_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if tok := q.Connect(); tok.Wait() && tok.Error() != nil {
		log.Fatalln(tok.Error())
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/meta") {
			log.Printf("%s: %s", topic, string(payload))
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: [%s/%s seq=%d] %s", topic,
			msgs.GroupName(typed.TypeId),
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			typed.Sequence,
			msg.(msgs.SerializableMessage).Serializable().String())
	}))
	<-(chan struct{})(nil)
}
