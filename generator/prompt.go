package generator

import (
	"fmt"
	"strings"
)

const (
	mantraPersona = "You are a wise African mystic blending Yoruba, Kikuyu and Kemetian wisdom in gentle, empowering language."
	oraclePersona = "You are The Lens Oracle, compassionate, culturally rooted, clear."

	mantraTemperature = 0.8
	mantraMaxTokens   = 120
	oracleTemperature = 0.8
	oracleMaxTokens   = 300
)

// Prompt is the message set sent to the LLM.
type Prompt struct {
	Kind        Kind
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// BuildMantraPrompt embeds the raw mood/stage/theme into the mantra instructions.
// Missing fields are left blank so the model chooses its own framing.
func BuildMantraPrompt(req MantraRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("Create a daily mantra in an African spiritual tone. ")
	sb.WriteString(fmt.Sprintf("Inputs: mood=%s, stage=%s, theme=%s. ", req.Mood, req.Stage, req.Theme))
	sb.WriteString("Output: Short mantra (1–2 lines) then a brief meaning.")

	return Prompt{
		Kind:        KindMantra,
		System:      mantraPersona,
		User:        sb.String(),
		Temperature: mantraTemperature,
		MaxTokens:   mantraMaxTokens,
	}
}

// BuildOraclePrompt wraps the user's prompt in the oracle instructions.
func BuildOraclePrompt(req OracleRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("Interpret this using African spiritual wisdom (Yoruba, Kikuyu, Kemet). ")
	sb.WriteString("Explain metaphysical cause and lesson. Input:\n")
	sb.WriteString(req.Prompt)

	return Prompt{
		Kind:        KindOracle,
		System:      oraclePersona,
		User:        sb.String(),
		Temperature: oracleTemperature,
		MaxTokens:   oracleMaxTokens,
	}
}
