package ime

// PlatformInfo describes the input method frameworks a platform offers
// and which transport speaks to them.
type PlatformInfo struct {
	Name      string
	Framework string
	Transport string
}

// SupportedPlatforms lists the platforms and the transport each uses.
// Platforms without a native transport fall back to the compose table.
var SupportedPlatforms = []PlatformInfo{
	{
		Name:      "Linux",
		Framework: "IBus (D-Bus input context)",
		Transport: TransportIBus,
	},
	{
		Name:      "Linux / BSD",
		Framework: "X11 Compose table",
		Transport: TransportCompose,
	},
	{
		Name:      "Other",
		Framework: "none",
		Transport: TransportNone,
	},
}

// AutoTransportOrder returns the kinds "auto" tries on this system, in
// order.
func AutoTransportOrder() []string {
	return autoTransportOrder()
}
