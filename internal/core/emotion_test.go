package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmotionLabelTitle(t *testing.T) {
	assert.Equal(t, "Frustrated", EmotionFrustrated.Title())
	assert.Equal(t, "Neutral", EmotionNeutral.Title())
}

func TestEmotionLabelKnown(t *testing.T) {
	for _, emotion := range Emotions {
		assert.True(t, emotion.Key.Known())
	}
	assert.False(t, EmotionLabel("melancholic").Known())
}

func TestLookupEmotion(t *testing.T) {
	emotion, ok := LookupEmotion(EmotionExcited)
	require.True(t, ok)
	assert.Equal(t, "⚡️", emotion.Emoji)

	_, ok = LookupEmotion("melancholic")
	assert.False(t, ok)
}

func TestEmotionsPriorityOrder(t *testing.T) {
	// The neutral fallback must stay last
	assert.Equal(t, EmotionNeutral, Emotions[len(Emotions)-1].Key)
}
