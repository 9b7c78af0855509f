package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"imecore/internal/ime"
)

// TransportInfo is one row of the transports listing.
type TransportInfo struct {
	Platform  string `json:"platform"`
	Framework string `json:"framework"`
	Transport string `json:"transport"`
}

// TransportList is the transports command result.
type TransportList struct {
	Platforms []TransportInfo `json:"platforms"`
	AutoOrder []string        `json:"auto_order"`
}

func (l TransportList) renderText(w io.Writer) {
	for _, p := range l.Platforms {
		fmt.Fprintf(w, "%-8s %-14s %s\n", p.Transport, p.Platform, p.Framework)
	}
	fmt.Fprintf(w, "auto: %s\n", strings.Join(l.AutoOrder, " -> "))
}

// NewTransportsCommand creates the transports command.
func NewTransportsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transports",
		Short: "List input method transports and the auto order on this system",
		Long: `List the input method transports, the framework each speaks to, and the
order in which transport "auto" tries them on this system.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := TransportList{AutoOrder: ime.AutoTransportOrder()}
			for _, p := range ime.SupportedPlatforms {
				list.Platforms = append(list.Platforms, TransportInfo{
					Platform:  p.Name,
					Framework: p.Framework,
					Transport: p.Transport,
				})
			}
			return rootOpts.formatter(cmd).Success(list)
		},
	}
}
