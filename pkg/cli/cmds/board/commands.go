// Package board exposes the board commands in the shell.
package board

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/tiva.go/pkg/cli/sh"
	"github.com/robotalks/tiva.go/pkg/l0/expander"
	"github.com/robotalks/tiva.go/pkg/l1/env"
	"github.com/robotalks/tiva.go/pkg/l1/msgs"
)

var ledPatterns = map[string]byte{
	"idle":  expander.LEDIdle,
	"off":   expander.LEDOff,
	"flash": expander.LEDFlash,
}

// ParseCanInit parses "[BITRATE [SAMPLE_POINT [SJW]]] [opts...]" where
// opts are noretx and ints=module,status,error.
func ParseCanInit(args []string) (*msgs.CanInit, error) {
	msg := &msgs.CanInit{}
	msg.AutoRetransmit = true
	pos := 0
	for _, arg := range args {
		switch {
		case arg == "noretx":
			msg.AutoRetransmit = false
			continue
		case strings.HasPrefix(arg, "ints="):
			ints, err := env.ParseInterrupts(strings.Split(arg[5:], ","))
			if err != nil {
				return nil, err
			}
			msg.Interrupts = uint32(ints)
			continue
		}
		switch pos {
		case 0:
			v, err := sh.ParseUint(arg, 32)
			if err != nil {
				return nil, fmt.Errorf("bit rate: %w", err)
			}
			msg.BitRate = uint32(v)
		case 1:
			var sp float64
			if _, err := fmt.Sscanf(arg, "%g", &sp); err != nil || sp <= 0 || sp >= 1 {
				return nil, fmt.Errorf("sample point %q must be in (0, 1)", arg)
			}
			msg.SamplePoint = sp
		case 2:
			v, err := sh.ParseUint(arg, 8)
			if err != nil {
				return nil, fmt.Errorf("sjw: %w", err)
			}
			msg.Sjw = uint32(v)
		default:
			return nil, fmt.Errorf("unexpected argument %q", arg)
		}
		pos++
	}
	return msg, nil
}

// ParseCanTransmit parses "SLOT ID [DATA_HEX] [ext] [auth]".
func ParseCanTransmit(args []string) (*msgs.CanTransmit, error) {
	msg := &msgs.CanTransmit{}
	var pos []string
	for _, arg := range args {
		switch arg {
		case "ext":
			msg.Extended = true
		case "auth":
			msg.Authenticate = true
		default:
			pos = append(pos, arg)
		}
	}
	if len(pos) < 2 || len(pos) > 3 {
		return nil, fmt.Errorf("expect SLOT ID [DATA_HEX]")
	}
	slot, err := sh.ParseUint(pos[0], 8)
	if err != nil {
		return nil, fmt.Errorf("slot: %w", err)
	}
	id, err := sh.ParseUint(pos[1], 29)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	msg.Slot, msg.Id = uint32(slot), uint32(id)
	if len(pos) == 3 {
		if msg.Data, err = hex.DecodeString(pos[2]); err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
	}
	return msg, nil
}

// ParseHibSleep parses "[SECONDS [WAKE]]".
func ParseHibSleep(args []string) (*msgs.HibSleep, error) {
	msg := &msgs.HibSleep{}
	if len(args) > 2 {
		return nil, fmt.Errorf("expect [SECONDS [WAKE]]")
	}
	if len(args) > 0 {
		v, err := sh.ParseUint(args[0], 32)
		if err != nil {
			return nil, fmt.Errorf("seconds: %w", err)
		}
		msg.Seconds = uint32(v)
	}
	if len(args) > 1 {
		msg.Wake = args[1]
	}
	return msg, nil
}

// ParseExpanderLED parses a pattern name or value.
func ParseExpanderLED(args []string) (*msgs.ExpanderLED, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expect PATTERN")
	}
	msg := &msgs.ExpanderLED{}
	if p, ok := ledPatterns[strings.ToLower(args[0])]; ok {
		msg.Pattern = uint32(p)
		return msg, nil
	}
	v, err := sh.ParseUint(args[0], 8)
	if err != nil {
		return nil, fmt.Errorf("unknown pattern %q", args[0])
	}
	msg.Pattern = uint32(v)
	return msg, nil
}

func parseAddr(s string) (uint32, error) {
	v, err := sh.ParseUint(s, 32)
	if err != nil {
		return 0, fmt.Errorf("address: %w", err)
	}
	return uint32(v), nil
}

func command(parse func([]string) (msgs.SerializableMessage, error)) func(c *ishell.Context) {
	return sh.MustBeConnected(func(c *ishell.Context) {
		msg, err := parse(c.Args)
		if err != nil {
			c.Err(err)
			return
		}
		sh.DoCommand(c, msg)
	})
}

func noArgs(msg func() msgs.SerializableMessage) func(c *ishell.Context) {
	return command(func([]string) (msgs.SerializableMessage, error) {
		return msg(), nil
	})
}

var (
	// CanInitCmd exposes CanInit command.
	CanInitCmd = ishell.Cmd{
		Name:    "can.init",
		Aliases: []string{"ci"},
		Help:    "[BITRATE [SAMPLE_POINT [SJW]]] [noretx] [ints=module,status,error]",
		Func: command(func(args []string) (msgs.SerializableMessage, error) {
			return ParseCanInit(args)
		}),
	}

	// CanTimingCmd exposes CanTimingQuery command.
	CanTimingCmd = ishell.Cmd{
		Name:    "can.timing",
		Aliases: []string{"ct"},
		Help:    "",
		Func:    noArgs(func() msgs.SerializableMessage { return &msgs.CanTimingQuery{} }),
	}

	// CanTransmitCmd exposes CanTransmit command.
	CanTransmitCmd = ishell.Cmd{
		Name:    "can.tx",
		Aliases: []string{"tx"},
		Help:    "SLOT ID [DATA_HEX] [ext] [auth]",
		Func: command(func(args []string) (msgs.SerializableMessage, error) {
			return ParseCanTransmit(args)
		}),
	}

	// HibInitCmd exposes HibInit command.
	HibInitCmd = ishell.Cmd{
		Name:    "hib.init",
		Aliases: []string{"hi"},
		Help:    "",
		Func:    noArgs(func() msgs.SerializableMessage { return &msgs.HibInit{} }),
	}

	// HibSleepCmd exposes HibSleep command.
	HibSleepCmd = ishell.Cmd{
		Name:    "hib.sleep",
		Aliases: []string{"sleep"},
		Help:    "[SECONDS [WAKE]]",
		Func: command(func(args []string) (msgs.SerializableMessage, error) {
			return ParseHibSleep(args)
		}),
	}

	// HibStatusCmd exposes HibStatusQuery command.
	HibStatusCmd = ishell.Cmd{
		Name:    "hib.status",
		Aliases: []string{"hs"},
		Help:    "",
		Func:    noArgs(func() msgs.SerializableMessage { return &msgs.HibStatusQuery{} }),
	}

	// ExpanderLEDCmd exposes ExpanderLED command.
	ExpanderLEDCmd = ishell.Cmd{
		Name:    "exp.led",
		Aliases: []string{"led"},
		Help:    "idle|off|flash|VALUE",
		Func: command(func(args []string) (msgs.SerializableMessage, error) {
			return ParseExpanderLED(args)
		}),
	}

	// RegReadCmd exposes RegRead command.
	RegReadCmd = ishell.Cmd{
		Name:    "reg.read",
		Aliases: []string{"rr"},
		Help:    "ADDR",
		Func: command(func(args []string) (msgs.SerializableMessage, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("expect ADDR")
			}
			addr, err := parseAddr(args[0])
			if err != nil {
				return nil, err
			}
			msg := &msgs.RegRead{}
			msg.Addr = addr
			return msg, nil
		}),
	}

	// RegWriteCmd exposes RegWrite command.
	RegWriteCmd = ishell.Cmd{
		Name:    "reg.write",
		Aliases: []string{"rw"},
		Help:    "ADDR VALUE",
		Func: command(func(args []string) (msgs.SerializableMessage, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("expect ADDR VALUE")
			}
			addr, err := parseAddr(args[0])
			if err != nil {
				return nil, err
			}
			val, err := sh.ParseUint(args[1], 32)
			if err != nil {
				return nil, fmt.Errorf("value: %w", err)
			}
			msg := &msgs.RegWrite{}
			msg.Addr, msg.Value = addr, uint32(val)
			return msg, nil
		}),
	}

	// RegDumpCmd exposes RegDump command, writing Intel HEX to stdout
	// or FILE.
	RegDumpCmd = ishell.Cmd{
		Name:    "reg.dump",
		Aliases: []string{"rd"},
		Help:    "[FILE]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			reply, err := sh.Await(c, &msgs.RegDump{})
			if err != nil {
				c.Err(err)
				return
			}
			snap, ok := reply.(*msgs.RegSnapshot)
			if !ok {
				c.Err(fmt.Errorf("unexpected reply %s", sh.FormatMessage(reply)))
				return
			}
			if len(c.Args) == 0 {
				c.Print(snap.Hex)
				return
			}
			if err := os.WriteFile(c.Args[0], []byte(snap.Hex), 0644); err != nil {
				c.Err(err)
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&CanInitCmd,
		&CanTimingCmd,
		&CanTransmitCmd,
		&HibInitCmd,
		&HibSleepCmd,
		&HibStatusCmd,
		&ExpanderLEDCmd,
		&RegReadCmd,
		&RegWriteCmd,
		&RegDumpCmd,
	)
}
