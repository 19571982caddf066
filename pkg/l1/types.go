package l1

import (
	"context"

	fx "github.com/robotalks/tiva.go/pkg/framework"
)

// Registrar publishes a board controller to its clients.
// It integrates with framework and delivers received commands
// into the loop as CommandMsg.
type Registrar interface {
	// SendEvent sends an event to all clients.
	SendEvent(context.Context, fx.Message) error
}

// Command represents a received command to be processed.
type Command interface {
	Msg() fx.Message
	Done(fx.Message) error
}

// CommandMsg wraps a Command as a Message.
type CommandMsg struct {
	Command Command
}

// NewMessage implements Message.
func (m *CommandMsg) NewMessage() fx.Message { return &CommandMsg{} }

// BoardRef is a reference to a board controller.
type BoardRef struct {
	// Type is the board type, e.g. tm4c123.
	Type string
	// ID is unique ID of the board.
	ID string
}

// Name retrieves the name from ref.
func (r BoardRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates BoardRef is valid.
func (r BoardRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// BoardMeta provides metadata for a board controller.
type BoardMeta struct {
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// BoardInfo provides information of a board controller.
type BoardInfo struct {
	Ref  BoardRef
	Meta BoardMeta
}

// Connector is used by clients to connect to a board controller.
type Connector interface {
	// Discover enumerates registered boards.
	Discover(context.Context) ([]BoardInfo, error)
	// Connect connects to the specified board.
	Connect(context.Context, BoardRef) (BoardConn, error)
}

// BoardConn is the connection to a board.
type BoardConn interface {
	// DoCommand executes a command.
	DoCommand(fx.Message) CommandFuture
}

// Result represents result of a command.
type Result struct {
	Msg fx.Message
	Err error
}

// CommandFuture is the future of sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}

// Await blocks until the command completes or ctx is done.
func Await(ctx context.Context, f CommandFuture) (fx.Message, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-f.ResultChan():
		return r.Msg, r.Err
	}
}
