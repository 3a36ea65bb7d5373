package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// Run ejecuta el CLI con args y devuelve el código de salida.
// Con --format json el error sale por stdout como respuesta JSON.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		format, _ := cmd.PersistentFlags().GetString("format")
		f := &formatter{format: format, w: stderr}
		if format == "json" {
			f.w = stdout
		}
		f.failure(err)
	}
	return GetExitCode(err)
}
