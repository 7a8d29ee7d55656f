package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/otomatty/shinsei/pkg/appinfo"
	"github.com/otomatty/shinsei/pkg/config"
	"github.com/otomatty/shinsei/pkg/filesystem"
	"github.com/otomatty/shinsei/pkg/logging"
	"github.com/otomatty/shinsei/pkg/paths"
	"github.com/otomatty/shinsei/pkg/storage"
	"github.com/otomatty/shinsei/pkg/types"
)

// NewRootCmd builds the shinsei-store command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dataDir   string
	)

	rootCmd := &cobra.Command{
		Use:   "shinsei-store",
		Short: "Inspect and edit Shinsei's local datastores",
		Long: `shinsei-store operates on the sandboxed datastores the Shinsei studio
keeps under its application data directory. Datastores are plain
directories, entries are plain files; this tool reads and writes them
with the same validation and layout rules the application uses.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Application data directory (default from config, SHINSEI_DATA_DIR, or XDG data home)")

	newStore := func() (types.Store, error) {
		dir := dataDir
		if dir == "" {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			dir = cfg.Storage.DataDir
		}

		p, err := paths.New(dir)
		if err != nil {
			return nil, err
		}
		return storage.New(filesystem.NewOS(), p), nil
	}

	rootCmd.AddCommand(newVersionCmd())
	addStorageCommands(rootCmd, newStore)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			v := appinfo.GetVersion()
			fmt.Fprintf(cmd.OutOrStdout(), "shinsei-store version %s\n", v.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", v.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", v.BuildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "  go:     %s\n", v.GoVersion)
		},
	}
}
