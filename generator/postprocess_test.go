package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMantra(t *testing.T) {
	tests := []struct {
		name        string
		msg         string
		wantText    string
		wantMeaning string
	}{
		{
			name:        "two lines",
			msg:         "I am the river.\nFlow without fear.",
			wantText:    "I am the river.",
			wantMeaning: "Flow without fear.",
		},
		{
			name:        "bullets and blank lines",
			msg:         "- I am the river.\n\n• Flow without fear.\n- Trust the current.",
			wantText:    "I am the river.",
			wantMeaning: "Flow without fear. Trust the current.",
		},
		{
			name:        "crlf line endings",
			msg:         "I am light.\r\nShine gently.\r\n",
			wantText:    "I am light.",
			wantMeaning: "Shine gently.",
		},
		{
			name:        "single line keeps whole message",
			msg:         "  I am Divine Flow. Ashe.  ",
			wantText:    "I am Divine Flow. Ashe.",
			wantMeaning: DefaultMantraMeaning,
		},
		{
			name:        "marker-only line does not count",
			msg:         "I am whole.\n-\n",
			wantText:    "I am whole.\n-",
			wantMeaning: DefaultMantraMeaning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, meaning := ParseMantra(tt.msg)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantMeaning, meaning)
		})
	}
}

func TestParseOracle(t *testing.T) {
	assert.Equal(t, "Water remembers.", ParseOracle("\n Water remembers. \n"))
}

func TestBuildMantraPrompt(t *testing.T) {
	p := BuildMantraPrompt(MantraRequest{Mood: "calm", Stage: "Healing", Theme: "roots"})

	assert.Equal(t, KindMantra, p.Kind)
	assert.Equal(t, mantraPersona, p.System)
	assert.Contains(t, p.User, "mood=calm, stage=Healing, theme=roots.")
	assert.Equal(t, 120, p.MaxTokens)
	assert.InDelta(t, 0.8, p.Temperature, 1e-9)
}

func TestBuildOraclePrompt(t *testing.T) {
	p := BuildOraclePrompt(OracleRequest{Prompt: "I dreamed of a river"})

	assert.Equal(t, KindOracle, p.Kind)
	assert.Equal(t, oraclePersona, p.System)
	assert.Contains(t, p.User, "Input:\nI dreamed of a river")
	assert.Equal(t, 300, p.MaxTokens)
}
