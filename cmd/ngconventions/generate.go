package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafbgarcia/ngconventions/internal/codegen"
)

func newGenerateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the import manifest and router configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := codegen.NewGenerator(cfg, codegen.WithLogger(c.log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, "  Codegen ......... ")
			t := time.Now()
			result, err := g.Generate()
			if err != nil {
				fmt.Fprintln(out, "FAILED")
				if result.ImportConfig != "" {
					fmt.Fprintf(out, "    wrote %s\n", result.ImportConfig)
				}
				return err
			}
			fmt.Fprintf(out, "done (%d routes) [%s]\n", result.RouteCount(), fmtDuration(time.Since(t)))
			fmt.Fprintf(out, "    wrote %s\n", result.ImportConfig)
			fmt.Fprintf(out, "    wrote %s\n", result.RouterConfig)
			if n := len(result.Warnings); n > 0 {
				fmt.Fprintf(out, "  %d warning(s), see log output\n", n)
			}
			return nil
		},
	}
	addConfigFlags(cmd)
	return cmd
}

func fmtDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
