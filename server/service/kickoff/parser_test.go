package kickoff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	t.Run("bare JSON", func(t *testing.T) {
		envelope, err := parseEnvelope(`{"artifacts":[],"tasks":[{"title":"T1","priority":"High"}],"welcomeMessage":"Hi"}`)
		require.NoError(t, err)
		require.Len(t, envelope.Tasks, 1)
		require.Equal(t, "T1", envelope.Tasks[0].Title)
		require.Equal(t, "Hi", envelope.WelcomeMessage)
	})

	t.Run("JSON wrapped in commentary and code fences", func(t *testing.T) {
		text := "Sure! ```json\n{\"artifacts\":[],\"tasks\":[{\"title\":\"T1\",\"priority\":\"High\"}],\"welcomeMessage\":\"Hi\"}\n```"
		envelope, err := parseEnvelope(text)
		require.NoError(t, err)
		require.Empty(t, envelope.Artifacts)
		require.Len(t, envelope.Tasks, 1)
		require.Equal(t, "High", envelope.Tasks[0].Priority)
		require.Equal(t, "Hi", envelope.WelcomeMessage)
	})

	t.Run("braces inside string values", func(t *testing.T) {
		envelope, err := parseEnvelope(`prefix {"artifacts":[{"type":"db","title":"Schema","content":"{ nested: braces }"}],"tasks":[],"welcomeMessage":"ok"} suffix`)
		require.NoError(t, err)
		require.Len(t, envelope.Artifacts, 1)
		require.Equal(t, "{ nested: braces }", envelope.Artifacts[0].Content)
	})

	t.Run("no JSON object at all", func(t *testing.T) {
		_, err := parseEnvelope("I cannot comply.")
		require.Error(t, err)
	})

	t.Run("malformed JSON fails closed", func(t *testing.T) {
		_, err := parseEnvelope(`{"artifacts": [unterminated`)
		require.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := parseEnvelope("")
		require.Error(t, err)
	})
}
