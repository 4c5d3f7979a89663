package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	rules := DefaultRuleset()
	require.NoError(t, rules.Validate())

	var tests = []struct {
		name     string // name
		input    string // input
		expected EmotionLabel
	}{
		{
			"Empty",
			"",
			EmotionNeutral,
		},
		{
			"Blank",
			"   \n\t  ",
			EmotionNeutral,
		},
		{
			"NoKnownKeyword",
			"compute the checksum and return it",
			EmotionNeutral,
		},
		{
			"Frustrated",
			"this bug is so frustrating, nothing works",
			EmotionFrustrated,
		},
		{
			"Confident",
			"really proud of this clean implementation",
			EmotionConfident,
		},
		{
			"Confused",
			"no idea what this parameter does",
			EmotionConfused,
		},
		{
			"Excited",
			"finally got the pipeline running, awesome",
			EmotionExcited,
		},
		{
			"CaseInsensitiveUpper",
			"THIS IS SO FRUSTRATING",
			EmotionFrustrated,
		},
		{
			"CaseInsensitiveMixed",
			"FrUsTrAtEd again",
			EmotionFrustrated,
		},
		{
			"KeywordInsideSentence",
			"I guess I hate regex but here we are",
			EmotionFrustrated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := rules.Classify(tt.input)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	rules := DefaultRuleset()

	// "frustrated" is declared before "excited": first match wins
	label := rules.Classify("so frustrating but also awesome")
	assert.Equal(t, EmotionFrustrated, label)

	// And the other way around with a custom declaration order
	reversed := Ruleset{
		{Emotion: EmotionExcited, Triggers: []string{"awesome"}},
		{Emotion: EmotionFrustrated, Triggers: []string{"frustrating"}},
	}
	label = reversed.Classify("so frustrating but also awesome")
	assert.Equal(t, EmotionExcited, label)
}

func TestClassifyAll(t *testing.T) {
	rules := DefaultRuleset()

	// The commit message alone can determine the emotion
	label := rules.ClassifyAll("compute the checksum", "ughhh why is coding so hard today")
	assert.Equal(t, EmotionFrustrated, label)

	// All fragments empty
	label = rules.ClassifyAll("", "")
	assert.Equal(t, EmotionNeutral, label)
}

func TestRulesetValidate(t *testing.T) {
	t.Run("UnknownEmotion", func(t *testing.T) {
		rules := Ruleset{
			{Emotion: "melancholic", Triggers: []string{"sigh"}},
		}
		err := rules.Validate()
		require.Error(t, err)
		var configErr *ConfigurationError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("NoTrigger", func(t *testing.T) {
		rules := Ruleset{
			{Emotion: EmotionExcited},
		}
		err := rules.Validate()
		require.Error(t, err)
	})
}
