package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pawlog/internal/domain/pawlog"
)

func newExportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		out    string
		photos bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a full backup as JSON",
		Long: `Export every record as a backup JSON document.

Without --out the document is written to stdout. Photos and attachments
are stripped unless --photos is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.Store.ExportData(cmd.Context(), pawlog.ExportOptions{IncludePhotos: photos})
			if err != nil {
				return WrapExitError(ExitFailure, "export failed", err)
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if info, err := os.Stat(out); err == nil && info.IsDir() {
				out = filepath.Join(out, pawlog.BackupFileName(a.Store.Now().In(a.Store.Location()), photos))
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return WrapExitError(ExitCommandError, "writing backup", err)
			}
			return newFormatter(cmd, rootOpts).success(
				map[string]any{"path": out, "bytes": len(data)},
				fmt.Sprintf("backup written to %s (%d bytes)", out, len(data)),
			)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory")
	cmd.Flags().BoolVar(&photos, "photos", false, "include photos and attachments")
	return cmd
}

func newImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "reading backup", err)
			}
			a, err := openApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Store.ImportData(cmd.Context(), raw); err != nil {
				if errors.Is(err, pawlog.ErrInvalidBackup) {
					return WrapExitError(ExitFailure, "invalid backup", err)
				}
				return WrapExitError(ExitFailure, "import failed", err)
			}
			dogs := len(a.Store.Dogs())
			return newFormatter(cmd, rootOpts).success(
				map[string]any{"file": args[0], "dogs": dogs},
				fmt.Sprintf("imported %s (%d dogs)", args[0], dogs),
			)
		},
	}
}

func newUsageCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show storage usage against the quota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			u, err := a.Store.StorageInfo(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "reading usage", err)
			}
			return newFormatter(cmd, rootOpts).success(u,
				fmt.Sprintf("used:  %d bytes", u.Used),
				fmt.Sprintf("total: %d bytes", u.Total),
				fmt.Sprintf("usage: %.1f%%", u.Percentage),
			)
		},
	}
}

func newClearCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return NewExitError(ExitCommandError, "refusing to clear data without --yes")
			}
			a, err := openApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Store.ClearAllData(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "clear failed", err)
			}
			return newFormatter(cmd, rootOpts).success(map[string]any{"cleared": true}, "all data cleared")
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
