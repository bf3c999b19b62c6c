package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/swellgo/internal/debugproto"
)

// helloCmd is a trace-only smoke-test command: it round-trips a request
// through the reactor's debug socket and prints the reply, useful for
// confirming a reactor process is alive and its command path is wired
// before testing a real keybinding.
var helloCmd = &cobra.Command{
	Use:    "hello",
	Short:  "Send a trace-only smoke-test command to a running reactor",
	Hidden: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := dialDebugSocket(debugproto.Request{Type: debugproto.RequestHello})
		if err != nil {
			return wrapPrintedError(err)
		}
		if !resp.OK {
			return wrapPrintedError(fmt.Errorf("reactor reported an error: %s", resp.Error))
		}
		fmt.Println(resp.Hello)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
