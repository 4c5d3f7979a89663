package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmehta/moodlint/internal/core"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var flagDemo bool
var flagFile string
var flagCommit string
var flagName string
var flagRules string
var flagFormat string
var flagOutput string

var rootCmd = &cobra.Command{
	Use:   "moodlint",
	Short: "Moodlint reviews the emotional tone of your code",
	Long: `Moodlint scans code comments and commit messages for emotional tone
and prints personalized feedback for the developer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configureVerbosity()

		if !flagDemo && flagFile == "" {
			_ = cmd.Usage()
			return errors.New("either --demo or --file is required")
		}

		config, err := core.ReadConfig()
		if err != nil {
			return err
		}

		rules, templates, err := core.LoadRules(flagRules)
		if err != nil {
			return err
		}

		source, commitMessage, developerName, err := collectInput(config)
		if err != nil {
			return err
		}

		report, err := core.Review(rules, templates, source, commitMessage, developerName)
		if err != nil {
			return err
		}

		return writeReport(report, config)
	},
}

// configureVerbosity enables verbose output. The most verbose level wins
// when multiple flags are passed.
func configureVerbosity() {
	if verboseInfo {
		core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
	}
	if verboseDebug {
		core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
	}
	if verboseTrace {
		core.CurrentLogger().SetVerboseLevel(core.VerboseTrace)
	}
}

func collectInput(config *core.Config) (source, commitMessage, developerName string, err error) {
	if flagDemo {
		developerName = flagName
		if developerName == "" {
			developerName = core.DemoDeveloperName
		}
		return core.DemoSource, core.DemoCommitMessage, developerName, nil
	}

	if !config.ConfigFile.SupportExtension(flagFile) {
		core.CurrentLogger().Warnf("file %s has an unsupported extension, reviewing anyway", flagFile)
	}

	content, err := os.ReadFile(flagFile)
	if err != nil {
		return "", "", "", &core.InputError{Path: flagFile, Cause: err}
	}
	return string(content), flagCommit, flagName, nil
}

func writeReport(report *core.Report, config *core.Config) error {
	var rendered string
	switch flagFormat {
	case "text":
		// Colors only make sense on a terminal
		colorize := config.ConfigFile.Core.Color && flagOutput == ""
		var sb strings.Builder
		report.Render(&sb, colorize)
		rendered = sb.String()
	case "json":
		var err error
		rendered, err = report.ToJSON()
		if err != nil {
			return err
		}
		rendered += "\n"
	case "yaml":
		var err error
		rendered, err = report.ToYAML()
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q (expected text, json, or yaml)", flagFormat)
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(rendered), 0644); err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", flagOutput)
		return nil
	}

	fmt.Print(rendered)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "verbose", "v", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVar(&verboseDebug, "verbose-debug", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&verboseTrace, "verbose-trace", false, "enable verbose trace output")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "YAML file overriding the built-in rules and templates")

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "review a built-in sample")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "source file to review")
	rootCmd.Flags().StringVarP(&flagCommit, "commit", "c", "", "commit message to review alongside the file")
	rootCmd.Flags().StringVarP(&flagName, "name", "n", "", "developer name used in the salutation")
	rootCmd.Flags().StringVar(&flagFormat, "format", "text", "report format (text, json, yaml)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the report to a file instead of stdout")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
