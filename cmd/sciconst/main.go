package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/sciconst/internal/app"
	"github.com/ensigniasec/sciconst/internal/catalog"
	"github.com/ensigniasec/sciconst/internal/config"
	"github.com/ensigniasec/sciconst/internal/render"
	"github.com/ensigniasec/sciconst/internal/storage"
	"github.com/ensigniasec/sciconst/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	cfgFile     string
	tuiMode     bool
	categoryArg string
	searchArg   string

	rootCmd = &cobra.Command{
		Use:   "sciconst",
		Short: "Browse, search and copy scientific constants from the terminal.",
		Long:  `sciconst is a catalog of physics, chemistry and mathematics constants. Browse by category, search by name, copy values to the clipboard, export the catalog as text, and keep your own custom constants in a flat JSON file.`,
		Run: func(cmd *cobra.Command, args []string) {
			if tuiMode {
				runBrowser(cmd)
				return
			}
			_ = cmd.Help()
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --output json.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default "+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().String("custom-file", config.DefaultCustomFile, "File holding your custom constants")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "Output format: table, json, yaml or text")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().Bool("require-description", false, "Reject custom constants without a description")
	rootCmd.PersistentFlags().BoolVar(&tuiMode, "tui", false, "Start the interactive browser")

	listCmd.Flags().StringVarP(&categoryArg, "category", "c", "", "Category to list (default: the first category)")
	listCmd.Flags().StringVarP(&searchArg, "search", "s", "", "Case-insensitive name filter")
	customListCmd.Flags().StringVarP(&searchArg, "search", "s", "", "Case-insensitive name filter")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(customCmd)
	rootCmd.AddCommand(experimentalCmd)

	customCmd.AddCommand(customListCmd)
	customCmd.AddCommand(customAddCmd)
	customCmd.AddCommand(customShowCmd)
	customCmd.AddCommand(customCopyCmd)
	customCmd.AddCommand(customExportCmd)
	customCmd.AddCommand(customImportCmd)

	// Wire up experimental subcommands.
	experimentalCmd.AddCommand(experimentalConvertCmd)
	experimentalCmd.AddCommand(experimentalLanguageCmd)
	experimentalCmd.AddCommand(experimentalGraphCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

// env is what every command needs: settings, the catalog and the custom constants file.
type env struct {
	cfg     *config.Config
	store   *catalog.Store
	storage *storage.Storage
	// loadErr is set when the custom constants file exists but could not be read.
	loadErr error
}

// setup loads configuration, applies the log level and loads custom constants.
func setup(cmd *cobra.Command) *env {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		logrus.Fatal(err)
	}

	// Set log level based on flags
	switch {
	case cfg.Verbose:
		logrus.SetLevel(logrus.DebugLevel)
	case cfg.Output == render.FormatJSON || cfg.Output == render.FormatYAML:
		logrus.SetLevel(logrus.WarnLevel)
	}

	store := catalog.NewStore(catalog.WithRequireDescription(cfg.RequireDescription))
	st, err := storage.NewStorage(cfg.CustomFile)
	if err != nil {
		logrus.Fatal(err)
	}
	e := &env{cfg: cfg, store: store, storage: st}
	if err := st.Load(store); err != nil {
		logrus.Debugf("Custom constants unavailable: %v", err)
		e.loadErr = err
	}
	return e
}

// mustLoad stops when the custom constants file is unreadable, so it is never overwritten.
func (e *env) mustLoad() {
	if e.loadErr != nil {
		logrus.Fatalf("Unable to read custom constants: %v", e.loadErr)
	}
}

func runBrowser(cmd *cobra.Command) {
	e := setup(cmd)
	e.mustLoad()
	session := app.NewSession(e.store, nil)
	if err := tui.Run(session, e.storage, tui.Options{AccentColor: e.cfg.AccentColor}); err != nil {
		logrus.Fatalf("TUI mode failed: %v", err)
	}
	// Leave a record of what was copied once the alternate screen is gone.
	if session.History.Len() > 0 {
		fmt.Fprintln(os.Stdout, "Copied this session:")
		if err := render.History(os.Stdout, session.History.Drain()); err != nil {
			logrus.Fatal(err)
		}
	}
}

// writeOutput writes to stdout for "-" and to a file otherwise.
func writeOutput(path string, write func(w io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	return storage.WriteFile(path, buf.Bytes())
}

func reportCopyError(err error) {
	var cerr *app.ClipboardError
	if errors.As(err, &cerr) {
		logrus.Fatalf("Unable to access the clipboard: %v", cerr.Err)
	}
	logrus.Fatal(err)
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive browser (same as --tui)",
	Run: func(cmd *cobra.Command, args []string) {
		runBrowser(cmd)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the built-in categories",
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		if err := render.Strings(os.Stdout, e.store.Categories(), e.cfg.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the constants of a category, optionally filtered by name",
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		category := categoryArg
		if category == "" {
			category = e.store.Categories()[0]
		}
		if !slices.Contains(e.store.Categories(), category) {
			logrus.Fatal(catalog.NotFoundError{Category: category})
		}
		if err := render.Rows(os.Stdout, e.store.Filter(category, searchArg), e.cfg.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var showCmd = &cobra.Command{
	Use:   "show [CATEGORY] [NAME]",
	Short: "Show the value and description of a constant",
	Args:  cobra.ExactArgs(2), //nolint:mnd // show requires category and name by CLI contract
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		entry, err := e.store.Lookup(args[0], args[1])
		if err != nil {
			logrus.Fatal(err)
		}
		if err := render.Entry(os.Stdout, args[0], entry, e.cfg.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var copyCmd = &cobra.Command{
	Use:   "copy [CATEGORY] [NAME]",
	Short: "Copy the value of a constant to the clipboard",
	Args:  cobra.ExactArgs(2), //nolint:mnd // copy requires category and name by CLI contract
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		session := app.NewSession(e.store, nil)
		entry, err := session.Copy(args[0], args[1])
		if err != nil {
			reportCopyError(err)
		}
		fmt.Fprintf(os.Stdout, "Copied to clipboard: %s\n", entry.Value)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export the built-in catalog as plain text ('-' for stdout)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		if err := writeOutput(args[0], e.store.ExportText); err != nil {
			logrus.Fatal(err)
		}
		if args[0] != "-" {
			fmt.Fprintf(os.Stdout, "Constants exported to %s\n", args[0])
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Manage your custom constants",
	Long:  "Custom constants live in one flat list, outside the built-in categories. They are stored as a JSON object in --custom-file.",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var customListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom constants",
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		e.mustLoad()
		if err := render.Rows(os.Stdout, e.store.FilterCustom(searchArg), e.cfg.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var customAddCmd = &cobra.Command{
	Use:   "add [NAME] [VALUE] [DESCRIPTION]",
	Short: "Add or replace a custom constant",
	Args:  cobra.RangeArgs(2, 3), //nolint:mnd // add takes name, value and an optional description
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		e.mustLoad()
		description := ""
		if len(args) == 3 { //nolint:mnd // optional third argument
			description = args[2]
		}
		if err := e.store.AddCustom(args[0], args[1], description); err != nil {
			logrus.Fatal(err)
		}
		if err := e.storage.Save(e.store); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Custom constant %q saved\n", args[0])
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var customShowCmd = &cobra.Command{
	Use:   "show [NAME]",
	Short: "Show a custom constant",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		e.mustLoad()
		entry, err := e.store.LookupCustom(args[0])
		if err != nil {
			logrus.Fatal(err)
		}
		if err := render.Entry(os.Stdout, "", entry, e.cfg.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var customCopyCmd = &cobra.Command{
	Use:   "copy [NAME]",
	Short: "Copy the value of a custom constant to the clipboard",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		e.mustLoad()
		session := app.NewSession(e.store, nil)
		entry, err := session.CopyCustom(args[0])
		if err != nil {
			reportCopyError(err)
		}
		fmt.Fprintf(os.Stdout, "Copied to clipboard: %s\n", entry.Value)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var customExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export custom constants as JSON ('-' for stdout)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		e.mustLoad()
		err := writeOutput(args[0], func(w io.Writer) error {
			data, err := e.store.ExportCustom()
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		})
		if err != nil {
			logrus.Fatal(err)
		}
		if args[0] != "-" {
			fmt.Fprintf(os.Stdout, "Custom constants exported to %s\n", args[0])
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var customImportCmd = &cobra.Command{
	Use:   "import [FILE]",
	Short: "Replace all custom constants with the contents of a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		// The current file is replaced wholesale, so an unreadable one is not fatal here.
		if e.loadErr != nil {
			logrus.Warnf("Ignoring unreadable custom constants file: %v", e.loadErr)
		}
		data, err := storage.ReadFile(args[0])
		if err != nil {
			logrus.Fatal(err)
		}
		if err := e.store.ImportCustom(data); err != nil {
			logrus.Fatal(err)
		}
		if err := e.storage.Save(e.store); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Imported %d custom constants from %s\n", len(e.store.Custom()), args[0])
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var experimentalCmd = &cobra.Command{
	Use:   "experimental",
	Short: "Experimental features (subject to change).",
	Long:  "A collection of experimental commands that may change or be removed without notice.",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var experimentalConvertCmd = &cobra.Command{
	Use:   "convert [CATEGORY] [NAME] [UNIT]",
	Short: "Convert a constant to another unit (experimental).",
	Args:  cobra.ExactArgs(3), //nolint:mnd // convert requires category, name and unit by CLI contract
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		entry, err := e.store.Lookup(args[0], args[1])
		if err != nil {
			logrus.Fatal(err)
		}
		_, err = catalog.ConvertUnit(entry, args[2])
		printPlaceholder(err)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var experimentalLanguageCmd = &cobra.Command{
	Use:   "language [LANG]",
	Short: "Switch the display language (experimental).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printPlaceholder(catalog.SetLanguage(args[0]))
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var experimentalGraphCmd = &cobra.Command{
	Use:   "graph [CATEGORY] [NAME]",
	Short: "Graph the historical values of a constant (experimental).",
	Args:  cobra.ExactArgs(2), //nolint:mnd // graph requires category and name by CLI contract
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)
		entry, err := e.store.Lookup(args[0], args[1])
		if err != nil {
			logrus.Fatal(err)
		}
		_, err = catalog.HistoryGraph(entry)
		printPlaceholder(err)
	},
}

func printPlaceholder(err error) {
	if errors.Is(err, catalog.ErrNotImplemented) {
		fmt.Fprintln(
			os.Stdout,
			"This command is under construction: "+err.Error(),
		)
		return
	}
	if err != nil {
		logrus.Fatal(err)
	}
}
