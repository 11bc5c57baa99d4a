package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rafbgarcia/ngconventions/config"
	"github.com/rafbgarcia/ngconventions/internal/logging"
)

// cli holds the state shared by every command of one invocation.
type cli struct {
	configFile string
	verbose    bool
	log        *logging.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "ngconventions",
		Short: "Generate AngularJS route configuration from directory conventions",
		Long: `ngconventions scans a project for controller and component files and
derives one route per file from its directory, pairing it with the template
next to it. It writes an import manifest registering every controller and a
ui-router or ngRoute configuration registering every route.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine.
			_ = godotenv.Load()
			c.log = logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: c.verbose})
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newGenerateCmd(c))
	rootCmd.AddCommand(newRoutesCmd(c))
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// addConfigFlags registers the flags that override config file values.
func addConfigFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("root", "", "directory scanned for components (default \""+config.DefaultRoot+"\")")
	f.String("component", "", "component glob relative to root (default \""+config.DefaultComponent+"\")")
	f.String("template", "", "template glob relative to a component's directory (default \""+config.DefaultTemplate+"\")")
	f.String("url-base", "", "prefix removed from route URLs (camel convention)")
	f.String("router-type", "", "uiRouter or ngRouter (default \""+string(config.DefaultRouterType)+"\")")
	f.String("convention", "", "kebab or camel (default \""+string(config.DefaultConvention)+"\")")
	f.String("import-config", "", "output path of the import manifest")
	f.String("router-config", "", "output path of the router configuration")
	f.String("templates-dir", "", "directory with <name>.tmpl files replacing the built-in templates")
}

// loadConfig reads the config file and environment, then applies any flag
// that was set explicitly.
func (c *cli) loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	cfg, err := config.NewLoader().LoadWith(c.configFile, func(cfg *config.Config) {
		set := func(name string, dst *string) {
			if f.Changed(name) {
				*dst, _ = f.GetString(name)
			}
		}
		set("root", &cfg.Root)
		set("component", &cfg.Component)
		set("template", &cfg.Template)
		set("url-base", &cfg.URLBase)
		set("import-config", &cfg.ImportConfig)
		set("router-config", &cfg.RouterConfig)
		set("templates-dir", &cfg.TemplatesDir)
		if f.Changed("router-type") {
			v, _ := f.GetString("router-type")
			cfg.RouterType = config.RouterType(v)
		}
		if f.Changed("convention") {
			v, _ := f.GetString("convention")
			cfg.Convention = config.Convention(v)
		}
	})
	if err != nil {
		return config.Config{}, err
	}

	c.log.Debug("configuration loaded",
		"root", cfg.Root,
		"component", cfg.Component,
		"template", cfg.Template,
		"routerType", cfg.RouterType,
		"convention", cfg.Convention,
	)
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
