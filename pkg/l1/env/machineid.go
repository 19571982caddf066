package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// AppID scopes the protected machine id to this application.
const AppID = "tiva.go"

// MachineID retrieves the unique ID identifying the machine.
// The raw id is hashed with AppID so that it is not exposed on the
// broker. Hosts without a machine id fall back to the hostname.
func MachineID() string {
	id, err := machineid.ProtectedID(AppID)
	if err == nil && len(id) > 16 {
		return id[:16]
	}
	if err != nil {
		glog.Warningf("machine id unavailable: %v", err)
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "unknown"
}
