//go:build !linux

package bridge

// OpenSocketCAN opens a SocketCAN interface.
func OpenSocketCAN(iface string) (Bus, error) {
	return nil, ErrUnsupported
}
