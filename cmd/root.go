package cmd

import (
	"os"

	"github.com/bnema/wayinfo/internal/config"
	"github.com/bnema/wayinfo/internal/discover"
	"github.com/bnema/wayinfo/internal/logger"
	"github.com/bnema/wayinfo/internal/render"
	"github.com/bnema/wayinfo/internal/wlclient"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	jsonOutput     bool
	fullOutput     bool
	simpleOutput   bool
	sortOutput     bool
	protocolFilter string

	rootCmd = &cobra.Command{
		Use:   "wayinfo",
		Short: "Wayinfo - Wayland protocol information dumper",
		Long: `Wayinfo connects to the running Wayland compositor, enumerates the
globals it advertises and prints a report. Seats and outputs are bound for
detail: capabilities, keyboard repeat settings, geometry and display modes.`,
		SilenceUsage: true,
		RunE:         runInfo,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of text")
	rootCmd.Flags().BoolVar(&fullOutput, "full", false, "Include detailed protocol data (default)")
	rootCmd.Flags().BoolVar(&simpleOutput, "simple", false, "Hide detailed protocol data")
	rootCmd.Flags().BoolVar(&sortOutput, "sort", false, "Sort globals by interface (omits the name column)")
	rootCmd.Flags().StringVarP(&protocolFilter, "protocol", "p", "", "Only show the matching protocol")
	rootCmd.MarkFlagsMutuallyExclusive("full", "simple")
}

func runInfo(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		logger.Warnf("ignoring config: %v", err)
	}
	opts := renderOptions(cmd, config.Get())

	session, err := wlclient.Connect()
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	state, err := discover.Run(session)
	if err != nil {
		return err
	}

	report := state.Finalize(discover.Options{
		Protocol: protocolFilter,
		Sort:     sortOutput,
	})
	return render.Render(cmd.OutOrStdout(), report, opts)
}

// renderOptions merges config defaults with explicit flags; flags win.
func renderOptions(cmd *cobra.Command, cfg *config.Config) render.Options {
	opts := render.Options{
		JSON: cfg.Output.Format == "json",
		Full: cfg.Output.Detail != "simple",
	}
	if cmd.Flags().Changed("json") {
		opts.JSON = jsonOutput
	}
	if cmd.Flags().Changed("full") {
		opts.Full = fullOutput
	}
	if cmd.Flags().Changed("simple") {
		opts.Full = !simpleOutput
	}

	switch cfg.Output.Color {
	case "always":
		opts.Color = true
	case "never":
		opts.Color = false
	default:
		opts.Color = isatty.IsTerminal(os.Stdout.Fd())
	}
	return opts
}
