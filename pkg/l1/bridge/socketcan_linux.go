//go:build linux

package bridge

import "github.com/brutella/can"

// OpenSocketCAN opens a SocketCAN interface.
func OpenSocketCAN(iface string) (Bus, error) {
	bus, err := can.NewBusForInterfaceWithName(iface)
	if err != nil {
		return nil, err
	}
	return bus, nil
}
