// Package controller sets up the environment of a board controller:
// board profile, identity and registrars.
package controller

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang/glog"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/comm"
	"github.com/robotalks/tiva.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/tiva.go/pkg/l1/comm/websocket"
	"github.com/robotalks/tiva.go/pkg/l1/env"
)

// Config provides common options to setup an env for board controllers.
type Config struct {
	// ProfilePath is the YAML board profile, defaults apply when empty.
	ProfilePath string
	// ID overrides the board id from the profile.
	ID string

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// WebsocketAddr serves the board over websocket when set.
	WebsocketAddr string
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/tiva/",
}

func init() {
	if val := os.Getenv("TIVA_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("TIVA_BOARD_PROFILE"); val != "" {
		defaultConfig.ProfilePath = val
	}
	if val := os.Getenv("TIVA_WS_ADDR"); val != "" {
		defaultConfig.WebsocketAddr = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.ProfilePath, "profile", defaultConfig.ProfilePath, "Board profile (YAML)")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Board ID, defaults to profile or machine id")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty to disable")
	flag.StringVar(&defaultConfig.WebsocketAddr, "ws", defaultConfig.WebsocketAddr, "Websocket listen address, empty to disable")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Env is the env for board controllers.
type Env struct {
	Config       *Config
	Profile      *env.Profile
	Info         l1.BoardInfo
	RegistryURLs []string
	Registrar    *comm.RegistrarMux
}

// LoadProfile loads the configured profile, or the default one.
func (c *Config) LoadProfile() (*env.Profile, error) {
	if c.ProfilePath == "" {
		p := env.DefaultProfile()
		return &p, nil
	}
	return env.LoadProfile(c.ProfilePath)
}

// NewEnv creates Env from config.
func (c *Config) NewEnv() (*Env, error) {
	profile, err := c.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	info := profile.Info()
	if c.ID != "" {
		info.Ref.ID = c.ID
	}
	if info.Ref.ID == "" {
		info.Ref.ID = env.MachineID()
	}
	if !info.Ref.IsValid() {
		return nil, fmt.Errorf("board type and id must be specified")
	}
	e := &Env{
		Config:    c,
		Profile:   profile,
		Info:      info,
		Registrar: &comm.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, info)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %w", err)
		}
		e.Registrar.Add(reg)
		e.RegistryURLs = append(e.RegistryURLs, c.MQTTBrokerURL)
	}
	if c.WebsocketAddr != "" {
		e.Registrar.Add(websocket.NewRegistrar(c.WebsocketAddr))
		e.RegistryURLs = append(e.RegistryURLs, "ws://"+c.WebsocketAddr+websocket.DefaultPath)
	}
	if len(e.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	glog.Infof("board %s registering at %v", info.Ref.Name(), e.RegistryURLs)
	return e, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	e, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return e
}

// AddToLoop adds controllers/runners to loop.
func (e *Env) AddToLoop(loop *fx.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&comm.UnsupportedCommands{})
}
