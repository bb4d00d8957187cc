package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	return User{
		DisplayName:  "Amara",
		Email:        "amara@example.com",
		AuthProvider: "anonymous",
		Stage:        StageAwakening,
		Locale:       "en",
		PremiumTier:  "free",
	}
}

func TestValidate_User(t *testing.T) {
	u := validUser()
	require.NoError(t, Validate(u))

	u.Stage = "Ascension"
	u.Email = "not-an-email"
	err := Validate(u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "stage must be one of: Awakening Healing Embodiment Manifestation Communion")
}

func TestValidate_JournalEntryRequiresContent(t *testing.T) {
	err := Validate(JournalEntry{UserID: "u1"})
	require.Error(t, err)
	assert.Equal(t, "content is required", err.Error())
}

func TestMeditationSession_ApplyDefaults(t *testing.T) {
	s := MeditationSession{UserID: "u1"}
	s.ApplyDefaults()

	assert.Equal(t, "forest", s.Environment)
	assert.Equal(t, 10, s.DurationMinutes)
	assert.NoError(t, Validate(s))

	s = MeditationSession{UserID: "u1", Environment: "mt_kenya", DurationMinutes: 25}
	s.ApplyDefaults()
	assert.Equal(t, "mt_kenya", s.Environment)
	assert.Equal(t, 25, s.DurationMinutes)
}

func TestValidate_MeditationEnvironment(t *testing.T) {
	err := Validate(MeditationSession{UserID: "u1", Environment: "beach", DurationMinutes: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment must be one of")
}
