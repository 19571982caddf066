package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"log"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l1/board"
	"github.com/robotalks/tiva.go/pkg/l1/bridge"
	env "github.com/robotalks/tiva.go/pkg/l1/env/controller"
	simboard "github.com/robotalks/tiva.go/pkg/sim/board"
)

var (
	mirrorIface string
)

func init() {
	env.SetupFlags()
	flag.StringVar(&mirrorIface, "can-mirror", mirrorIface, "SocketCAN interface mirroring the simulated bus, e.g. vcan0")
}

func main() {
	flag.Parse()

	e := env.NewConfig().MustNewEnv()
	sb := simboard.New()
	sb.Expander.Address = e.Profile.Expander.Address
	sb.Expander.SPIAddr = byte(e.Profile.Expander.Address)

	p, err := board.NewPeripherals(sb.Bus(), e.Profile, board.ExpanderBuses{I2C: sb.Expander, SPI: sb.Expander})
	if err != nil {
		log.Fatalln(err)
	}
	ctl := board.NewController(e.Profile, p, e.Registrar)
	ctx, cancel := fx.SignalContext(context.Background())
	defer cancel()
	if err := ctl.Start(ctx, sb); err != nil {
		log.Fatalln(err)
	}

	loop := fx.NewLoop().Add(e, sb, ctl)
	if mirrorIface != "" {
		m := bridge.NewMirror(mirrorIface)
		sb.CAN.SubscribeFrames(m)
		loop.AddRunnable(m)
	}
	loop.RunOrFail(ctx)
}
