package core

import (
	"fmt"
	"strings"

	"github.com/kmehta/moodlint/pkg/text"
)

// FeedbackTemplate associates an emotion with the advice shown to the
// developer when this emotion dominates.
type FeedbackTemplate struct {
	Emotion EmotionLabel `yaml:"emotion"`
	Message string       `yaml:"message"`
}

// FeedbackTable maps every supported emotion to its feedback template.
type FeedbackTable map[EmotionLabel]*FeedbackTemplate

// DefaultFeedbackTable returns the built-in feedback messages.
func DefaultFeedbackTable() FeedbackTable {
	return FeedbackTable{
		EmotionFrustrated: {
			Emotion: EmotionFrustrated,
			Message: "Your comments sound frustrated. Hard problems are how we grow.\n" +
				"Step away for five minutes, then attack the smallest piece first.",
		},
		EmotionConfident: {
			Emotion: EmotionConfident,
			Message: "Your comments radiate confidence. The code reads like you planned it.\n" +
				"Consider writing down what worked so the next project starts the same way.",
		},
		EmotionConfused: {
			Emotion: EmotionConfused,
			Message: "Your comments suggest you are puzzled by this code.\n" +
				"Rubber-duck the confusing part out loud, or ask a teammate for a second pair of eyes.",
		},
		EmotionExcited: {
			Emotion: EmotionExcited,
			Message: "Your comments are full of energy. Enjoy the momentum!\n" +
				"Channel some of it into tests while the design is still fresh in your head.",
		},
		EmotionNeutral: {
			Emotion: EmotionNeutral,
			Message: "Your comments read even-keeled. Steady progress is still progress.\n" +
				"Keep documenting your intent as you go.",
		},
	}
}

// Validate checks that the table covers the full emotion set with
// non-empty messages.
func (t FeedbackTable) Validate() error {
	for _, emotion := range Emotions {
		template, ok := t[emotion.Key]
		if !ok {
			return NewConfigurationError("no feedback template for emotion %q", emotion.Key)
		}
		if text.IsBlank(template.Message) {
			return NewConfigurationError("empty feedback template for emotion %q", emotion.Key)
		}
	}
	return nil
}

// Generate produces the feedback message for a label. The developer name
// only influences the salutation; the advice itself is identical with or
// without a name.
func (t FeedbackTable) Generate(label EmotionLabel, developerName string) (string, error) {
	template, ok := t[label]
	if !ok {
		// Unreachable with the built-in tables but user rule files can
		// leave holes.
		return "", NewConfigurationError("no feedback template for emotion %q", label)
	}

	salutation := "Hey there,"
	if !text.IsBlank(developerName) {
		salutation = fmt.Sprintf("Hey %s,", strings.TrimSpace(developerName))
	}

	return salutation + "\n\n" + template.Message, nil
}
