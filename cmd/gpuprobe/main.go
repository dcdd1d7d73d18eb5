// Command gpuprobe brings up a GPU instance with the configured
// requirements, reports the outcome, and tears it down again.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &probeOptions{}
	root := &cobra.Command{
		Use:           "gpuprobe",
		Short:         "Create and destroy a GPU instance to check the host setup",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (.yaml, .toml or .json)")
	root.PersistentFlags().StringVar(&opts.loader, "loader", "", "Vulkan loader bootstrap: default|glfw")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error")

	probe := &cobra.Command{
		Use:     "probe",
		Short:   "Create an instance, log the result, destroy it",
		Example: "  gpuprobe probe --validation\n  gpuprobe probe --config gpu.yaml --metrics-addr :9100",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.validationSet = cmd.Flags().Changed("validation")
			return runProbe(cmd.Context(), opts, nil)
		},
	}
	probe.Flags().BoolVar(&opts.validation, "validation", false, "Enable the Khronos validation layer")
	probe.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve /metrics on this address after probing until interrupted")

	layers := &cobra.Command{
		Use:   "layers",
		Short: "List instance layers and extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayers(opts, cmd.OutOrStdout())
		},
	}

	root.AddCommand(probe, layers)
	return root
}
