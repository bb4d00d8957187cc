package generator

import "fmt"

// Neutral values substituted when a mantra request omits a field.
const (
	DefaultMood  = "centered"
	DefaultStage = "Awakening"
	DefaultTheme = "clarity"
)

const (
	fallbackMantraMeaning = "Let this guide your day with grounded presence and ancestral support."
	fallbackOracleText    = "This symbol speaks of alignment. Practice heart-centered breath and offer gratitude to ancestors."
)

var (
	fallbackOracleRefs = []string{"Ashe (vital force)", "Ngai (divine source)"}
	llmOracleRefs      = []string{"Wikipedia: Orishas", "Wikidata: Kemet symbols"}
)

// FallbackMantra formats a mantra from the request alone.
func FallbackMantra(req MantraRequest) (text, meaning string) {
	mood := orDefault(req.Mood, DefaultMood)
	stage := orDefault(req.Stage, DefaultStage)
	theme := orDefault(req.Theme, DefaultTheme)
	text = fmt.Sprintf("I walk in %s, breathing %s, embodying %s. Ashe.", theme, mood, stage)
	return text, fallbackMantraMeaning
}

// FallbackOracle returns the fixed interpretation and a fresh copy of its references.
func FallbackOracle() (interpretation string, references []string) {
	return fallbackOracleText, cloneRefs(fallbackOracleRefs)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func cloneRefs(refs []string) []string {
	out := make([]string, len(refs))
	copy(out, refs)
	return out
}
