package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"pawlog/internal/app"
	"pawlog/internal/platform/config"
	"pawlog/internal/platform/logger"
)

// RootOptions son los flags globales.
type RootOptions struct {
	Config string
	Driver string
	DB     string
	DSN    string
	Format string // text | json
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pawlogctl",
		Short: "Herramientas de datos de PawLog",
		Long:  "Exporta, importa y limpia el almacén de PawLog sin levantar la API.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.Config, "config", "", "YAML config file (default $PAWLOG_CONFIG)")
	pf.StringVar(&opts.Driver, "driver", "", "storage driver: memory|sqlite|postgres")
	pf.StringVar(&opts.DB, "db", "", "sqlite database path")
	pf.StringVar(&opts.DSN, "dsn", "", "postgres DSN")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newImportCommand(opts))
	cmd.AddCommand(newUsageCommand(opts))
	cmd.AddCommand(newClearCommand(opts))
	cmd.AddCommand(newRemindersCommand(opts))

	return cmd
}

// openApp carga config, aplica los flags y abre el almacén.
// Los logs van a stderr para no mezclarse con la salida JSON.
func openApp(cmd *cobra.Command, opts *RootOptions) (*app.App, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	if opts.Driver != "" {
		cfg.Storage.Driver = opts.Driver
	}
	if opts.DB != "" {
		cfg.Storage.Path = opts.DB
	}
	if opts.DSN != "" {
		cfg.Storage.DSN = opts.DSN
	}
	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid config", err)
	}

	lopts := cfg.LoggerOptions()
	lopts.Writer = cmd.ErrOrStderr()
	if lopts.Level < logger.Warn {
		lopts.Level = logger.Warn
	}

	a, err := app.New(cmd.Context(), cfg, logger.New(lopts))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "opening storage", err)
	}
	return a, nil
}

func newFormatter(cmd *cobra.Command, opts *RootOptions) *formatter {
	return &formatter{format: opts.Format, w: cmd.OutOrStdout()}
}
