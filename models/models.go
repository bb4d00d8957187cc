// Package models defines the documents persisted by the API. Each type maps to
// one collection named after the lowercase type name.
package models

import "time"

// Collection names.
const (
	CollectionUser              = "user"
	CollectionJournalEntry      = "journalentry"
	CollectionMantra            = "mantra"
	CollectionOracleConsult     = "oracleconsult"
	CollectionMeditationSession = "meditationsession"
	CollectionPayment           = "payment"
)

// Stage is a user's position on the growth path.
const (
	StageAwakening     = "Awakening"
	StageHealing       = "Healing"
	StageEmbodiment    = "Embodiment"
	StageManifestation = "Manifestation"
	StageCommunion     = "Communion"
)

// User is a profile created through onboarding.
type User struct {
	DisplayName  string  `json:"display_name" bson:"display_name" validate:"required"`
	Email        string  `json:"email" bson:"email" validate:"required,email"`
	AuthProvider string  `json:"auth_provider" bson:"auth_provider" validate:"oneof=password google apple anonymous"`
	AuthUID      *string `json:"auth_uid" bson:"auth_uid"`
	Stage        string  `json:"stage" bson:"stage" validate:"oneof=Awakening Healing Embodiment Manifestation Communion"`
	Locale       string  `json:"locale" bson:"locale" validate:"oneof=en sw yo am"`
	AvatarURL    *string `json:"avatar_url" bson:"avatar_url"`
	PremiumTier  string  `json:"premium_tier" bson:"premium_tier" validate:"oneof=free premium master"`
}

// JournalEntry is a free-text (or voice) journal record.
type JournalEntry struct {
	UserID    string  `json:"user_id" bson:"user_id" validate:"required"`
	Content   string  `json:"content" bson:"content" validate:"required"`
	Mood      *string `json:"mood" bson:"mood"`
	AudioURL  *string `json:"audio_url" bson:"audio_url" validate:"omitempty,url"`
	Sentiment *string `json:"sentiment" bson:"sentiment"`
	Theme     *string `json:"theme" bson:"theme"`
}

// Mantra is an archived daily mantra.
type Mantra struct {
	UserID       string  `json:"user_id" bson:"user_id"`
	Text         string  `json:"text" bson:"text"`
	Meaning      string  `json:"meaning" bson:"meaning"`
	Stage        *string `json:"stage" bson:"stage"`
	Mood         *string `json:"mood" bson:"mood"`
	JournalTheme *string `json:"journal_theme" bson:"journal_theme"`
	// Date is YYYY-MM-DD.
	Date string `json:"date" bson:"date"`
}

// OracleConsult is an archived oracle question and its reading.
type OracleConsult struct {
	UserID         *string  `json:"user_id" bson:"user_id"`
	Prompt         string   `json:"prompt" bson:"prompt"`
	Interpretation string   `json:"interpretation" bson:"interpretation"`
	References     []string `json:"references" bson:"references"`
}

// MeditationSession logs the start of a guided meditation.
type MeditationSession struct {
	UserID          string     `json:"user_id" bson:"user_id" validate:"required"`
	Environment     string     `json:"environment" bson:"environment" validate:"oneof=forest mt_kenya desert_temple"`
	DurationMinutes int        `json:"duration_minutes" bson:"duration_minutes" validate:"gte=1,lte=240"`
	StartedAt       *time.Time `json:"started_at" bson:"started_at"`
	Completed       bool       `json:"completed" bson:"completed"`
}

// ApplyDefaults fills the fields the client may omit.
func (m *MeditationSession) ApplyDefaults() {
	if m.Environment == "" {
		m.Environment = "forest"
	}
	if m.DurationMinutes == 0 {
		m.DurationMinutes = 10
	}
}

// Lesson is a static teaching. Body is Markdown.
type Lesson struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`
	Badge    string `json:"badge,omitempty"`
}

// Payment is a recorded payment intent. Only "pending" is ever written; no
// provider is contacted.
type Payment struct {
	UserID      string `json:"user_id" bson:"user_id"`
	Provider    string `json:"provider" bson:"provider"`
	AmountCents int64  `json:"amount_cents" bson:"amount_cents"`
	Currency    string `json:"currency" bson:"currency"`
	Status      string `json:"status" bson:"status"`
	Reference   string `json:"reference" bson:"reference"`
}
