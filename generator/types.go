package generator

// Kind identifies which generation mode produced a prompt or result.
type Kind string

const (
	KindMantra Kind = "mantra"
	KindOracle Kind = "oracle"
)

// Source records where generated content came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// MantraRequest carries the optional inputs of a daily mantra. Empty fields
// fall back to neutral defaults.
type MantraRequest struct {
	UserID string
	Mood   string
	Stage  string
	Theme  string
}

// MantraResult is a generated mantra. Text and Meaning are never empty.
// Mood, Stage and Theme echo the request as given.
type MantraResult struct {
	Text    string `json:"text"`
	Meaning string `json:"meaning"`
	Mood    string `json:"mood,omitempty"`
	Stage   string `json:"stage,omitempty"`
	Theme   string `json:"theme,omitempty"`
	// Date is the UTC generation day, YYYY-MM-DD.
	Date   string `json:"date"`
	Source Source `json:"-"`
}

// OracleRequest asks for an interpretation of a free-text prompt.
type OracleRequest struct {
	UserID string
	Prompt string
}

// OracleResult is a generated interpretation. References is never nil.
type OracleResult struct {
	Interpretation string   `json:"interpretation"`
	References     []string `json:"references"`
	Source         Source   `json:"-"`
}
