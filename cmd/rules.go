package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kmehta/moodlint/internal/core"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Rules",
	Long:  `Print the active classification rules and feedback templates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configureVerbosity()

		rules, templates, err := core.LoadRules(flagRules)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)

		bold.Println("Classification rules (priority order):")
		for i, rule := range rules {
			emotion, _ := core.LookupEmotion(rule.Emotion)
			emoji := ""
			if emotion != nil {
				emoji = emotion.Emoji + " "
			}
			fmt.Printf("%d. %s%s: %s\n", i+1, emoji, rule.Emotion.Title(), strings.Join(rule.Triggers, ", "))
		}
		fmt.Printf("%d. 😐 %s: fallback when nothing matches\n", len(rules)+1, core.EmotionNeutral.Title())

		bold.Println("\nFeedback templates:")
		for _, emotion := range core.Emotions {
			template := templates[emotion.Key]
			fmt.Printf("- %s: %s\n", emotion.Key.Title(), firstLine(template.Message))
		}

		return nil
	},
}

func firstLine(message string) string {
	if index := strings.Index(message, "\n"); index > -1 {
		return message[:index]
	}
	return message
}
