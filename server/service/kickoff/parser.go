package kickoff

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Envelope is the structured object the kickoff completion must embed.
type Envelope struct {
	Artifacts      []EnvelopeArtifact `json:"artifacts"`
	Tasks          []EnvelopeTask     `json:"tasks"`
	WelcomeMessage string             `json:"welcomeMessage"`
}

type EnvelopeArtifact struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type EnvelopeTask struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

// parseEnvelope extracts and decodes the JSON envelope from the completion
// text. The model may wrap the object in commentary or code fences, so the
// candidate is the outermost brace span. Decoding is strict: anything that
// does not unmarshal fails closed, with no secondary recovery heuristics.
func parseEnvelope(text string) (*Envelope, error) {
	candidate := strings.TrimSpace(text)
	candidate = strings.TrimPrefix(candidate, "```json")
	candidate = strings.TrimPrefix(candidate, "```")
	candidate = strings.TrimSuffix(candidate, "```")

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object found in response")
	}
	candidate = candidate[start : end+1]

	envelope := &Envelope{}
	if err := json.Unmarshal([]byte(candidate), envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode kickoff envelope")
	}
	return envelope, nil
}
