package generator

import (
	"context"
	"strings"
)

// MockLLM answers locally without calling an external model; handy for
// exercising the provider branch during development.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	switch prompt.Kind {
	case KindMantra:
		sb.WriteString("- I rise with the river and rest with the stars. Ashe.\n")
		sb.WriteString("- Your breath is a bridge between ancestors and tomorrow.\n")
	default:
		sb.WriteString("The image you carry asks for stillness before motion. ")
		sb.WriteString("Sit with water nearby and listen:\n\n")
		sb.WriteString(prompt.User)
	}
	return sb.String(), nil
}
