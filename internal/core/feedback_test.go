package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackTableCoversEveryEmotion(t *testing.T) {
	templates := DefaultFeedbackTable()
	require.NoError(t, templates.Validate())

	for _, emotion := range Emotions {
		t.Run(string(emotion.Key), func(t *testing.T) {
			message, err := templates.Generate(emotion.Key, "")
			require.NoError(t, err)
			assert.NotEmpty(t, message)
		})
	}
}

func TestGenerateSalutation(t *testing.T) {
	templates := DefaultFeedbackTable()

	generic, err := templates.Generate(EmotionFrustrated, "")
	require.NoError(t, err)
	personalized, err := templates.Generate(EmotionFrustrated, "Alex")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(generic, "Hey there,"))
	assert.True(t, strings.HasPrefix(personalized, "Hey Alex,"))

	// Only the salutation differs
	genericBody := strings.TrimPrefix(generic, "Hey there,")
	personalizedBody := strings.TrimPrefix(personalized, "Hey Alex,")
	assert.Equal(t, genericBody, personalizedBody)
}

func TestGenerateTrimsName(t *testing.T) {
	templates := DefaultFeedbackTable()

	message, err := templates.Generate(EmotionNeutral, "  Alex  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(message, "Hey Alex,"))

	// A blank name falls back on the generic salutation
	message, err = templates.Generate(EmotionNeutral, "   ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(message, "Hey there,"))
}

func TestGenerateUnknownLabel(t *testing.T) {
	templates := DefaultFeedbackTable()

	_, err := templates.Generate("melancholic", "Alex")
	require.Error(t, err)
	var configErr *ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestFeedbackTableValidate(t *testing.T) {
	t.Run("MissingTemplate", func(t *testing.T) {
		templates := DefaultFeedbackTable()
		delete(templates, EmotionConfused)
		require.Error(t, templates.Validate())
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		templates := DefaultFeedbackTable()
		templates[EmotionConfused] = &FeedbackTemplate{Emotion: EmotionConfused, Message: "  "}
		require.Error(t, templates.Validate())
	})
}
