package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/swellgo/internal/config"
	"github.com/bnema/swellgo/internal/debugproto"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Query timing metrics from a running reactor",
}

var metricsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the last timing snapshot from a running instance",
	RunE:  runMetricsShow,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.AddCommand(metricsShowCmd)
}

func dialDebugSocket(req debugproto.Request) (*debugproto.Response, error) {
	sockPath, err := config.GetDebugSocketPath()
	if err != nil {
		return nil, fmt.Errorf("resolve debug socket path: %w", err)
	}

	conn, err := net.DialTimeout("unix", sockPath, 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("no reactor listening at %s: %w", sockPath, err)
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetDeadline(time.Now().Add(2 * time.Second))

	enc := json.NewEncoder(conn)
	if err := enc.Encode(req); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		return nil, fmt.Errorf("reactor closed the connection without responding")
	}

	var resp debugproto.Response
	if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

func runMetricsShow(_ *cobra.Command, _ []string) error {
	resp, err := dialDebugSocket(debugproto.Request{Type: debugproto.RequestShowTiming})
	if err != nil {
		return wrapPrintedError(err)
	}
	if !resp.OK {
		return wrapPrintedError(fmt.Errorf("reactor reported an error: %s", resp.Error))
	}
	if resp.Timing == nil || resp.Timing.Count == 0 {
		fmt.Println(app.Theme.Subtle.Render("no timing samples recorded yet"))
		return nil
	}

	timing := resp.Timing
	fmt.Printf("%s samples=%d\n", app.Theme.BoxHeader.Render("reactor timing"), timing.Count)

	rows := []table.Row{
		{"dispatch", timing.MeanDispatch.String(), timing.MaxDispatch.String()},
		{"handle", timing.MeanHandle.String(), timing.MaxHandle.String()},
	}
	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stage", Width: 12},
			{Title: "Mean", Width: 14},
			{Title: "Max", Width: 14},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)
	fmt.Println(tbl.View())
	fmt.Printf("  animation frames: %d\n", timing.TotalAnimFrames)
	return nil
}
