//go:build linux

package ime

import (
	"os"
	"os/exec"
)

// autoTransportOrder is the preference order for the "auto" transport.
// IBus is only attempted when a daemon could plausibly be running.
func autoTransportOrder() []string {
	if ibusLikely() {
		return []string{TransportIBus, TransportCompose, TransportNone}
	}
	return []string{TransportCompose, TransportNone}
}

func ibusLikely() bool {
	if os.Getenv("IBUS_ADDRESS") != "" {
		return true
	}
	if _, err := os.Stat("/usr/share/ibus/component"); err == nil {
		return true
	}
	if _, err := exec.LookPath("ibus-daemon"); err == nil {
		return true
	}
	return false
}
