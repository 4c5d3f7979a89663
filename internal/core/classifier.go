package core

import (
	"strings"

	"github.com/kmehta/moodlint/pkg/text"
)

// KeywordRule associates an emotion with the substrings that reveal it.
// Matching is case-insensitive.
type KeywordRule struct {
	Emotion  EmotionLabel `yaml:"emotion"`
	Triggers []string     `yaml:"triggers"`
}

// Match reports if any trigger occurs in the given lowercased text.
func (r *KeywordRule) Match(lowercased string) bool {
	for _, trigger := range r.Triggers {
		if strings.Contains(lowercased, strings.ToLower(trigger)) {
			return true
		}
	}
	return false
}

// Ruleset is an ordered list of keyword rules. The declaration order is
// the priority order: the first rule with a matching trigger wins.
type Ruleset []*KeywordRule

// DefaultRuleset returns the built-in classification rules.
func DefaultRuleset() Ruleset {
	return Ruleset{
		{
			Emotion: EmotionFrustrated,
			Triggers: []string{
				"frustrat", "hate", "annoy", "terrible", "awful",
				"broken", "mess", "ugh", "hack", "nothing works",
			},
		},
		{
			Emotion: EmotionConfident,
			Triggers: []string{
				"proud", "clean", "elegant", "masterpiece",
				"confident", "solid", "works perfectly",
			},
		},
		{
			Emotion: EmotionConfused,
			Triggers: []string{
				"confus", "no idea", "not sure", "puzzl",
				"don't understand", "what is this",
			},
		},
		{
			Emotion: EmotionExcited,
			Triggers: []string{
				"excit", "awesome", "amazing", "love this",
				"finally", "brilliant", "can't wait",
			},
		},
	}
}

// Validate checks that every rule references a known emotion and carries
// at least one trigger.
func (r Ruleset) Validate() error {
	for _, rule := range r {
		if !rule.Emotion.Known() {
			return NewConfigurationError("rule references unknown emotion %q", rule.Emotion)
		}
		if len(rule.Triggers) == 0 {
			return NewConfigurationError("rule %q declares no trigger", rule.Emotion)
		}
	}
	return nil
}

// Classify determines the dominant emotion of a text sample.
//
// The first rule (in declaration order) with at least one matching trigger
// wins. A blank input or an input matching no rule classifies as neutral.
func (r Ruleset) Classify(input string) EmotionLabel {
	if text.IsBlank(input) {
		return EmotionNeutral
	}
	lowercased := strings.ToLower(input)
	for _, rule := range r {
		if rule.Match(lowercased) {
			CurrentLogger().Debugf("classified input as %q", rule.Emotion)
			return rule.Emotion
		}
	}
	return EmotionNeutral
}

// ClassifyAll classifies the concatenation of several text fragments,
// typically the extracted comments followed by the commit message.
func (r Ruleset) ClassifyAll(fragments ...string) EmotionLabel {
	return r.Classify(strings.Join(fragments, " "))
}
