package main

import (
	"fmt"
	"io"

	"fexplorer/internal/config"
	"fexplorer/internal/explorer"
	"fexplorer/internal/log"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgFile string
	display string
	origin  string
	listen  string
	hide    []string
	debug   bool
	jsonLog bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fexplorer [start]",
		Short: "Browse folders one level at a time and print the chosen path",
		Long: `fexplorer lists a folder, lets you open sub-folders or go up one level,
and prints the path of the file you pick. Closing the view prints the
folder you were in.

The listing is shown in the terminal, in a browser tab (--display web)
or in a desktop window (--display gui).`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args)
			if err != nil {
				return report(err)
			}
			opts.configureLogging(cmd.ErrOrStderr())

			selected, err := browse(cfg, cmd.ErrOrStderr())
			if err != nil {
				return report(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), selected)
			return nil
		},
	}

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/fexplorer/config.yaml)")
	flags.StringVar(&opts.display, "display", "", "display to use: tui, web or gui")
	flags.StringVar(&opts.origin, "origin", "", "URL prefix of every link")
	flags.StringVar(&opts.listen, "listen", "", "listen address of the web display")
	flags.StringSliceVar(&opts.hide, "hide", nil, "glob pattern of names to hide (repeatable)")
	flags.BoolVar(&opts.debug, "debug", false, "log every browsing step")
	flags.BoolVar(&opts.jsonLog, "json-log", false, "log JSON lines to stderr")

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the config file and applies flags and the start argument.
func (o *rootOptions) load(cmd *cobra.Command, args []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Browser.StartingFolder = args[0]
	}
	if flags.Changed("display") {
		cfg.Display.Mode = o.display
	}
	if flags.Changed("origin") {
		cfg.Browser.Origin = o.origin
	}
	if flags.Changed("listen") {
		cfg.Display.Listen = o.listen
	}
	if flags.Changed("hide") {
		cfg.Listing.Hide = append(cfg.Listing.Hide, o.hide...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) configureLogging(w io.Writer) {
	logOpts := []log.Option{log.WithOutput(w)}
	if o.jsonLog {
		logOpts = append(logOpts, log.WithJSON())
	}
	log.Configure(logOpts...)
	log.SetDebug(o.debug)
}

// browse runs one browsing session on the configured display.
func browse(cfg *config.Config, errOut io.Writer) (string, error) {
	sess, err := openSession(cfg, errOut)
	if err != nil {
		return "", err
	}
	defer sess.close()

	urls := explorer.URLs{Origin: cfg.Browser.Origin, GoUp: cfg.Browser.GoUp}
	nav, err := explorer.New(cfg.Browser.StartingFolder, sess.renderer, sess.display,
		explorer.WithURLs(urls),
		explorer.WithHidden(cfg.Listing.Hide...),
		explorer.WithLogger(log.Default()),
	)
	if err != nil {
		return "", err
	}

	var selected string
	sess.run(func() {
		selected, err = nav.Browse()
	})
	return selected, err
}

// report logs a failed run. Cobra prints the error itself.
func report(err error) error {
	log.LogWithError(err).Debug("command failed")
	return err
}
