package sh

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"reflect"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/abiosoft/ishell"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l1"
	env "github.com/robotalks/tiva.go/pkg/l1/env/connector"
	"github.com/robotalks/tiva.go/pkg/l1/msgs"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool
	Timeout     time.Duration

	Shell  *ishell.Shell
	Config *env.Config
	Loop   *ConnLoop

	watching int32
}

// ConnLoop is a running loop with a board connection.
type ConnLoop struct {
	Ctx    context.Context
	Cancel func()
	Ref    l1.BoardRef
	Loop   *fx.Loop
	Conn   l1.BoardConn
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool
	timeout    = time.Second

	// commands
	commands = []*ishell.Cmd{
		&DiscoverCmd,
		&ConnectCmd,
		&DisconnectCmd,
		&WatchCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
	flag.DurationVar(&timeout, "timeout", timeout, "Command timeout.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		Timeout:     timeout,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requires a connection.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Loop == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

// FormatInfo prints BoardInfo into friendly string for display.
func FormatInfo(info l1.BoardInfo) string {
	var w bytes.Buffer
	fmt.Fprintf(&w, "%s", info.Ref.Name())
	if info.Meta.Description != "" {
		fmt.Fprintf(&w, ": %s", info.Meta.Description)
	}
	return w.String()
}

// FormatMessage prints a message as its type name and fields.
func FormatMessage(msg fx.Message) string {
	name := reflect.Indirect(reflect.ValueOf(msg)).Type().Name()
	if sm, ok := msg.(msgs.SerializableMessage); ok {
		return name + " " + sm.Serializable().String()
	}
	return name
}

// ParseUint parses a decimal or 0x prefixed argument.
func ParseUint(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 0, bits)
}

// Await sends a command and waits for the reply.
func Await(c *ishell.Context, msg fx.Message) (fx.Message, error) {
	s := ShellFrom(c)
	if s.Loop == nil {
		return nil, fmt.Errorf("not connected")
	}
	ctx, cancel := context.WithTimeout(s.Loop.Ctx, s.Timeout)
	defer cancel()
	reply, err := l1.Await(ctx, s.Loop.Conn.DoCommand(msg))
	if err == context.DeadlineExceeded {
		return nil, fmt.Errorf("command timeout")
	}
	return reply, err
}

// DoCommand runs a command and prints the result.
func DoCommand(c *ishell.Context, msg fx.Message) error {
	s := ShellFrom(c)
	res, err := Await(c, msg)
	if err != nil {
		c.Err(err)
		return err
	}
	if s.OutputJSON {
		sm, ok := res.(msgs.SerializableMessage)
		if !ok {
			err = fmt.Errorf("unexpected reply %T", res)
			c.Err(err)
			return err
		}
		out, err := json.Marshal(sm.Serializable())
		if err != nil {
			c.Err(err)
			return err
		}
		c.Println(string(out))
		return nil
	}
	if _, ok := res.(*msgs.CommandOK); ok {
		c.Println("OK")
		return nil
	}
	c.Println(FormatMessage(res))
	return nil
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// DiscoverBoards discovers boards.
func (s *Shell) DiscoverBoards(filter func(l1.BoardInfo) bool) (l1.Connector, []l1.BoardInfo, error) {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()
	infoList, err := connector.Discover(ctx)
	if err != nil {
		return connector, nil, err
	}
	if filter != nil {
		items := make([]l1.BoardInfo, 0, len(infoList))
		for _, info := range infoList {
			if filter(info) {
				items = append(items, info)
			}
		}
		infoList = items
	}
	return connector, infoList, nil
}

// SelectBoard discovers boards and asks for a choice.
func (s *Shell) SelectBoard(filter func(l1.BoardInfo) bool) (l1.Connector, *l1.BoardInfo, error) {
	connector, infoList, err := s.DiscoverBoards(filter)
	if err != nil {
		return nil, nil, err
	}
	if len(infoList) == 0 {
		return connector, nil, nil
	}
	var index int
	if len(infoList) > 1 {
		if !s.Interactive {
			return nil, nil, fmt.Errorf("more than 1 boards discovered in non-interactive mode")
		}
		items := make([]string, len(infoList))
		for n, info := range infoList {
			items[n] = FormatInfo(info)
		}
		index = s.Shell.MultiChoice(items, "Which one to connect?")
	}

	return connector, &infoList[index], nil
}

// Connect connects board with ref.
func (s *Shell) Connect(ref l1.BoardRef) error {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return err
	}
	connLoop := &ConnLoop{Ref: ref}
	connLoop.Ctx, connLoop.Cancel = context.WithCancel(context.Background())
	if connLoop.Conn, err = connector.Connect(connLoop.Ctx, ref); err != nil {
		connLoop.Cancel()
		return err
	}
	connLoop.Loop = fx.NewLoop()
	if adder, ok := connLoop.Conn.(fx.LoopAdder); ok {
		connLoop.Loop.Add(adder)
	}
	connLoop.Loop.AddController(fx.PrLvPostProc, fx.ControlFunc(s.printEvents))
	if s.Loop != nil {
		s.Loop.Cancel()
	}
	s.Loop = connLoop
	go connLoop.Loop.Run(connLoop.Ctx)
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", ref.Name()))
	return nil
}

// Watch turns printing of board events on or off.
func (s *Shell) Watch(on bool) {
	var v int32
	if on {
		v = 1
	}
	atomic.StoreInt32(&s.watching, v)
}

// Watching reports whether board events are printed.
func (s *Shell) Watching() bool {
	return atomic.LoadInt32(&s.watching) != 0
}

func (s *Shell) printEvents(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
		msg, ok := mc.CurrentMessage().(msgs.SerializableMessage)
		if !ok {
			return
		}
		mc.MessageTaken()
		if !s.Watching() {
			return
		}
		if s.OutputJSON {
			if out, err := json.Marshal(msg.Serializable()); err == nil {
				s.Shell.Println(string(out))
			}
			return
		}
		s.Shell.Println("event: " + FormatMessage(msg))
	}))
	return nil
}

// Disconnect disconnects current board.
func (s *Shell) Disconnect() {
	if s.Loop != nil {
		s.Loop.Cancel()
		s.Loop = nil
		s.Shell.SetPrompt(unconnectedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect && s.Config.Ref.IsValid() {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", s.Config.Ref.Name())
		}
		if err := s.Connect(s.Config.Ref); err != nil {
			log.Fatalf("connect %q failed: %v", s.Config.Ref.Name(), err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// DiscoverCmd discovers boards.
	DiscoverCmd = ishell.Cmd{
		Name:    "discover",
		Aliases: []string{"list", "l"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			_, infoList, err := s.DiscoverBoards(nil)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if len(infoList) == 0 {
					// in case infoList is nil, make it empty slice.
					infoList = []l1.BoardInfo{}
				}
				out, err := json.Marshal(infoList)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			if len(infoList) == 0 {
				c.Println("No boards found")
				return
			}
			for _, info := range infoList {
				c.Println(FormatInfo(info))
			}
		},
	}

	// ConnectCmd connects a board.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "TYPE ID",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			var ref l1.BoardRef
			if len(c.Args) >= 2 {
				ref.Type, ref.ID = c.Args[0], c.Args[1]
			} else {
				var filter func(l1.BoardInfo) bool
				if len(c.Args) == 1 {
					filter = func(info l1.BoardInfo) bool {
						return info.Ref.Type == c.Args[0]
					}
				}
				_, info, err := s.SelectBoard(filter)
				if err != nil {
					c.Err(err)
					return
				}
				if info == nil {
					c.Err(fmt.Errorf("no board discovered"))
					return
				}
				ref = info.Ref
			}
			if err := s.Connect(ref); err != nil {
				c.Err(err)
				return
			}
		},
	}

	// DisconnectCmd disconnects current board.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}

	// WatchCmd toggles printing of board events.
	WatchCmd = ishell.Cmd{
		Name:    "watch",
		Aliases: []string{"w"},
		Help:    "[on|off]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			on := !s.Watching()
			if len(c.Args) > 0 {
				on = c.Args[0] == "on"
			}
			s.Watch(on)
			if on {
				c.Println("watching events")
			}
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).WithAutoConnect(true).Run(flag.Args()...)
}
