package core

import (
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EmotionLabel identifies one emotional tone from the closed set below.
type EmotionLabel string

const (
	EmotionFrustrated EmotionLabel = "frustrated"
	EmotionConfident  EmotionLabel = "confident"
	EmotionConfused   EmotionLabel = "confused"
	EmotionExcited    EmotionLabel = "excited"
	// EmotionNeutral is the fallback when no keyword matches.
	EmotionNeutral EmotionLabel = "neutral"
)

type Emotion struct {
	Key EmotionLabel
	// Optional Unicode emoji representing the emotion
	Emoji string
}

// Emotions lists every supported emotion. The order is the classification
// priority order: earlier entries win when several emotions match.
var Emotions = []*Emotion{
	{
		Key:   EmotionFrustrated,
		Emoji: "😤",
	},
	{
		Key:   EmotionConfident,
		Emoji: "💪",
	},
	{
		Key:   EmotionConfused,
		Emoji: "🤯",
	},
	{
		Key:   EmotionExcited,
		Emoji: "⚡️",
	},
	{
		Key:   EmotionNeutral,
		Emoji: "😐",
	},
}

var titleCaser = cases.Title(language.English)

// Title returns the English display form of the label, e.g. "Frustrated".
func (l EmotionLabel) Title() string {
	return titleCaser.String(string(l))
}

// Known reports if the label belongs to the supported set.
func (l EmotionLabel) Known() bool {
	return slices.ContainsFunc(Emotions, func(e *Emotion) bool {
		return e.Key == l
	})
}

// LookupEmotion returns the emotion entry for a label.
func LookupEmotion(label EmotionLabel) (*Emotion, bool) {
	for _, emotion := range Emotions {
		if emotion.Key == label {
			return emotion, true
		}
	}
	return nil, false
}
