//go:build !linux

package ime

// autoTransportOrder is the preference order for the "auto" transport.
// Only Linux ships an IBus daemon worth probing.
func autoTransportOrder() []string {
	return []string{TransportCompose, TransportNone}
}
