package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/swellgo/internal/cli/styles"
	"github.com/bnema/swellgo/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check runtime requirements and diagnose configuration issues",
	Long: `Doctor checks that swellgo's runtime prerequisites are in place:
platform support for the accessibility/notification/hotkey collaborators,
a loadable and valid configuration file, and a reachable (or absent but
creatable) XDG state directory.

Examples:
  swellgo doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type doctorCheck struct {
	name string
	ok   bool
	note string
}

func runDoctor(_ *cobra.Command, _ []string) error {
	theme := app.Theme
	var checks []doctorCheck

	checks = append(checks, doctorCheck{
		name: "platform accessibility backend",
		ok:   runtime.GOOS == "darwin",
		note: fmt.Sprintf("GOOS=%s (ax/osnotify/hotkey collaborators run in stub mode off darwin)", runtime.GOOS),
	})

	dirs, err := config.GetXDGDirs()
	xdgOK := err == nil
	xdgNote := "resolved"
	if err != nil {
		xdgNote = err.Error()
	}
	checks = append(checks, doctorCheck{name: "XDG directories", ok: xdgOK, note: xdgNote})

	if xdgOK {
		for name, dir := range map[string]string{
			"config": dirs.ConfigHome,
			"data":   dirs.DataHome,
			"state":  dirs.StateHome,
		} {
			_, statErr := os.Stat(dir)
			exists := statErr == nil
			checks = append(checks, doctorCheck{
				name: fmt.Sprintf("%s dir (%s)", name, dir),
				ok:   true,
				note: map[bool]string{true: "exists", false: "will be created on load"}[exists],
			})
		}
	}

	checks = append(checks, doctorCheck{name: "configuration file", ok: app.Config != nil, note: app.Manager.GetConfigFile()})

	sockPath, err := config.GetDebugSocketPath()
	sockOK := err == nil
	if err == nil {
		if _, statErr := os.Stat(sockPath); statErr == nil {
			checks = append(checks, doctorCheck{name: "reactor debug socket", ok: true, note: sockPath + " (reactor appears to be running)"})
		} else {
			checks = append(checks, doctorCheck{name: "reactor debug socket", ok: true, note: sockPath + " (no reactor currently running)"})
		}
	} else {
		checks = append(checks, doctorCheck{name: "reactor debug socket", ok: sockOK, note: err.Error()})
	}

	allOK := true
	rows := make([]table.Row, 0, len(checks))
	for _, c := range checks {
		icon, style := styles.IconCheck, theme.SuccessStyle
		if !c.ok {
			icon, style = styles.IconX, theme.ErrorStyle
			allOK = false
		}
		rows = append(rows, table.Row{style.Render(icon), c.name, theme.Subtle.Render(c.note)})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 1},
			{Title: "Check", Width: 32},
			{Title: "Detail", Width: 48},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)
	fmt.Println(t.View())

	if !allOK {
		return fmt.Errorf("doctor found unmet requirements")
	}
	return nil
}
