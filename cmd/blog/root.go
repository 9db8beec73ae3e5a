package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	"github.com/goliatone/go-blog/internal/logging"
)

var moduleBuilder = bootstrap.BuildModule

// cliApp carries the global flags and the module built from them.
type cliApp struct {
	opts    bootstrap.Options
	jsonOut bool
	out     io.Writer
	module  *bootstrap.Module
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{out: stdout}
	app.opts.LogWriter = stderr

	var collections string
	root := &cobra.Command{
		Use:   "blog",
		Short: "Inspect the articles of a markdown blog",
		Long: `Inspect the articles of a markdown blog.

Articles live in one directory per collection under the content directory.
The collection name becomes the category: SystemDesign -> system-design.

Examples:
  blog list --category gen-ai
  blog search "load balancing"
  blog show consistent-hashing --html
  blog toc consistent-hashing`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.opts.Collections = bootstrap.SplitList(collections)
			module, err := moduleBuilder(app.opts)
			if err != nil {
				return err
			}
			ctx := logging.ContextWithFields(cmd.Context(), map[string]any{"command": cmd.Name()})
			cmd.SetContext(ctx)
			module.Logger = module.Logger.WithContext(ctx)
			app.module = module
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&app.opts.ConfigPath, "config", "", "Path to a TOML config file")
	flags.StringVar(&app.opts.ContentDir, "content", "", "Content directory holding one directory per collection (default \"posts\")")
	flags.StringVar(&collections, "collections", "", "Comma separated collection names")
	flags.StringVar(&app.opts.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&app.opts.LogFormat, "log-format", "", "go-logger output format: console, json, pretty")
	flags.BoolVar(&app.jsonOut, "json", false, "Output as JSON")

	root.AddCommand(app.listCmd())
	root.AddCommand(app.searchCmd())
	root.AddCommand(app.showCmd())
	root.AddCommand(app.tocCmd())
	root.AddCommand(app.relatedCmd())
	root.AddCommand(app.categoriesCmd())
	root.AddCommand(app.tagsCmd())

	return root
}
