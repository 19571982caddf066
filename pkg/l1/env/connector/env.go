// Package connector sets up clients connecting to a board.
package connector

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/tiva.go/pkg/l1/comm/websocket"
)

// Config provides common options to setup Connectors.
type Config struct {
	Ref l1.BoardRef

	// RegistryURL specifies the URL of board registry.
	// e.g. mqtt://host:port/topic-prefix or ws://host:port/l1
	RegistryURL string
}

var defaultConfig = Config{
	Ref:         l1.BoardRef{Type: "tm4c123"},
	RegistryURL: "mqtt://localhost:1883/tiva/",
}

func init() {
	if val := os.Getenv("TIVA_BOARD_TYPE"); val != "" {
		defaultConfig.Ref.Type = val
	}
	if val := os.Getenv("TIVA_BOARD_ID"); val != "" {
		defaultConfig.Ref.ID = val
	}
	if val := os.Getenv("TIVA_REGISTRY_URL"); val != "" {
		defaultConfig.RegistryURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "board-type", defaultConfig.Ref.Type, "Board type to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "board-id", defaultConfig.Ref.ID, "Board ID to connect.")
	flag.StringVar(&defaultConfig.RegistryURL, "board-reg", defaultConfig.RegistryURL, "Board Registry URL.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewConnector creates a Connector using current config.
func (c *Config) NewConnector() (l1.Connector, error) {
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "mqtt", "tcp", "ssl":
		return mqtt.NewConnector(c.RegistryURL)
	case "ws", "wss":
		return websocket.NewConnector(c.RegistryURL), nil
	default:
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
}

// MustNewConnector creates a Connector and fails on error.
func (c *Config) MustNewConnector() l1.Connector {
	conn, err := c.NewConnector()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}

// Connect directly connects to a board.
func (c *Config) Connect(ctx context.Context) (l1.BoardConn, error) {
	if !c.Ref.IsValid() {
		return nil, fmt.Errorf("board type and id must be specified")
	}
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	return connector.Connect(ctx, c.Ref)
}

// MustConnect connects to a board or fails.
func (c *Config) MustConnect(ctx context.Context) l1.BoardConn {
	conn, err := c.Connect(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}
