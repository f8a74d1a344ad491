package binlink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/binlink/internal/version"
	"github.com/arthur-debert/binlink/pkg/config"
	"github.com/arthur-debert/binlink/pkg/logging"
	"github.com/arthur-debert/binlink/pkg/resolver"
	"github.com/arthur-debert/binlink/pkg/ui/output"
	"github.com/arthur-debert/binlink/pkg/ui/output/styles"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		overwrite bool
		dryRun    bool
		noColor   bool
		dir       string
	)

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			styles.ConfigureColor(cmd.OutOrStdout(), noColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := resolveProjectDir(dir)
			if err != nil {
				return err
			}

			// Only flags given on the command line override file and env config
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("overwrite") {
				overrides["link.overwrite"] = overwrite
			}
			if cmd.Flags().Changed("dry-run") {
				overrides["link.dryrun"] = dryRun
			}

			cfg, err := config.Load(projectDir, overrides)
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), projectDir)
			report, err := resolver.Run(resolver.Options{
				ProjectDir: projectDir,
				Config:     cfg,
				Observer:   renderer.Item,
			})
			if err != nil {
				return err
			}

			renderer.Done(report, verbosity > 0)
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	rootCmd.Flags().BoolVar(&overwrite, "overwrite", false, MsgFlagOverwrite)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.Flags().StringVar(&dir, "dir", "", MsgFlagDir)
	rootCmd.PersistentFlags().CountVar(&verbosity, "verbose", MsgFlagVerbose)

	// Registered up front so they get our descriptions and show in the table
	rootCmd.Flags().BoolP("help", "h", false, MsgFlagHelp)
	rootCmd.Flags().BoolP("version", "v", false, MsgFlagVersion)

	rootCmd.SetVersionTemplate(MsgVersionTemplate)
	rootCmd.SetHelpFunc(renderHelp)

	return rootCmd
}

// renderHelp prints the banner, the usage line and the option table
func renderHelp(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	noColor, _ := cmd.Flags().GetBool("no-color")
	styles.ConfigureColor(out, noColor)

	fmt.Fprintf(out, MsgBanner, styles.Render("Name", cmd.Name()), styles.Render("Version", cmd.Version))
	fmt.Fprintf(out, "  %s\n\n", cmd.Short)
	fmt.Fprintf(out, "  %s\n\n", MsgUsage)

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithLeftAlignment().
		WithData(optionRows(cmd.Flags())).
		Srender()
	if err != nil {
		log.Error().Err(err).Msg("Failed to render option table")
		return
	}
	for _, line := range strings.Split(table, "\n") {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintln(out)
}

// optionRows lists boolean flags first, then flags that take a value
func optionRows(flags *pflag.FlagSet) pterm.TableData {
	var bools, values [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = fmt.Sprintf("-%s, %s", f.Shorthand, name)
		}
		switch f.Value.Type() {
		case "bool":
			bools = append(bools, []string{name, f.Usage})
		case "count":
			values = append(values, []string{name, f.Usage})
		default:
			values = append(values, []string{fmt.Sprintf("%s <%s>", name, f.Value.Type()), f.Usage})
		}
	})

	rows := pterm.TableData{{MsgHelpOption, MsgHelpDescription}}
	rows = append(rows, bools...)
	return append(rows, values...)
}

// resolveProjectDir turns --dir, or the working directory, into an absolute path
func resolveProjectDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf(MsgErrWorkingDir, err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf(MsgErrProjectDir, err)
	}
	return abs, nil
}
