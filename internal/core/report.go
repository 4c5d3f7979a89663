package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kmehta/moodlint/pkg/clock"
	"github.com/kmehta/moodlint/pkg/text"
)

// Report is the outcome of a single review run.
type Report struct {
	ID        string       `json:"id" yaml:"id"`
	Developer string       `json:"developer" yaml:"developer"`
	Timestamp time.Time    `json:"timestamp" yaml:"timestamp"`
	Emotion   EmotionLabel `json:"emotion" yaml:"emotion"`
	Emoji     string       `json:"emoji" yaml:"emoji"`
	Metrics   Metrics      `json:"metrics" yaml:"metrics"`
	Feedback  string       `json:"feedback" yaml:"feedback"`
	Advice    []string     `json:"advice,omitempty" yaml:"advice,omitempty"`
}

// Review runs the full pipeline: extract the source context, classify the
// tone of comments and commit message, and assemble the report.
func Review(rules Ruleset, templates FeedbackTable, source, commitMessage, developerName string) (*Report, error) {
	context := ParseSource(source)

	label := rules.ClassifyAll(context.CommentText(), commitMessage)

	feedback, err := templates.Generate(label, developerName)
	if err != nil {
		return nil, err
	}

	emotion, ok := LookupEmotion(label)
	if !ok {
		return nil, NewConfigurationError("emotion %q missing from emotion table", label)
	}

	return &Report{
		ID:        uuid.NewString(),
		Developer: developerName,
		Timestamp: clock.Now(),
		Emotion:   label,
		Emoji:     emotion.Emoji,
		Metrics:   context.Metrics(),
		Feedback:  feedback,
		Advice:    adviseOnContext(context),
	}, nil
}

// Words developers use when they are hard on their own code.
var selfDeprecatingWords = []string{"hack", "dirty", "terrible", "broken"}

// adviseOnContext derives code-hygiene advice from the extracted context.
func adviseOnContext(context *SourceContext) []string {
	var advice []string

	if len(context.Comments) == 0 {
		advice = append(advice,
			"No comments found. A few notes on intent will help your future self.")
	}

	if len(context.TodoItems) > 3 {
		advice = append(advice, fmt.Sprintf(
			"%d TODO/FIXME items are piling up. Clearing a few before adding features keeps the backlog honest.",
			len(context.TodoItems)))
	}

	comments := strings.ToLower(context.CommentText())
	for _, word := range selfDeprecatingWords {
		if strings.Contains(comments, word) {
			advice = append(advice,
				"Your comments are hard on your own code. Spend that energy improving it instead.")
			break
		}
	}

	var shortNames []string
	for _, name := range context.Variables {
		if len(name) <= 2 {
			shortNames = append(shortNames, name)
		}
	}
	if len(shortNames) > 2 {
		advice = append(advice, fmt.Sprintf(
			"Several very short variable names (%s). Longer names make the code self-describing.",
			strings.Join(shortNames[:3], ", ")))
	}

	return advice
}

// Render writes the report as a human-readable sectioned document.
func (r *Report) Render(w io.Writer, colorize bool) {
	heading := color.New(color.Bold, color.FgCyan)
	section := color.New(color.Bold)
	if !colorize {
		heading.DisableColor()
		section.DisableColor()
	}

	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	heading.Fprintln(w, "MOOD REVIEW REPORT")
	if !text.IsBlank(r.Developer) {
		fmt.Fprintf(w, "Developer: %s\n", r.Developer)
	}
	fmt.Fprintf(w, "Time: %s\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintln(w, separator)

	section.Fprintln(w, "\nEMOTIONAL STATE")
	fmt.Fprintf(w, "  %s %s\n", r.Emoji, r.Emotion.Title())

	section.Fprintln(w, "\nCODE METRICS")
	fmt.Fprintf(w, "  Comments:  %d\n", r.Metrics.CommentCount)
	fmt.Fprintf(w, "  Functions: %d\n", r.Metrics.FunctionCount)
	fmt.Fprintf(w, "  TODOs:     %d\n", r.Metrics.TodoCount)

	section.Fprintln(w, "\nFEEDBACK")
	fmt.Fprintln(w, text.PrefixLines(r.Feedback, "  "))

	if len(r.Advice) > 0 {
		section.Fprintln(w, "ADVICE")
		for _, note := range r.Advice {
			fmt.Fprintf(w, "  - %s\n", note)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, separator)
}

// ToJSON serializes the report for machine consumption.
func (r *Report) ToJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToYAML serializes the report for machine consumption.
func (r *Report) ToYAML() (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
