package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"

	"wonderlens/models"
)

var seedLessons = []models.Lesson{
	{Slug: "law-of-vibration", Title: "Understanding the Law of Vibration", Body: "Everything is energy; align your frequency.", Badge: "Initiate"},
	{Slug: "energy-centers", Title: "African Energy Centers Explained", Body: "From crown to root, breathe *Ashe* through each center.", Badge: "Seer"},
	{Slug: "inner-child-ancestral", Title: "Healing the Inner Child through Ancestral Wisdom", Body: "Reparent with gentleness, honor lineage.", Badge: "Sage"},
}

// renderLessons converts each Markdown body to HTML once at startup.
func renderLessons(src []models.Lesson) ([]models.Lesson, error) {
	out := make([]models.Lesson, len(src))
	for i, l := range src {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(l.Body), &buf); err != nil {
			return nil, fmt.Errorf("render lesson %s: %w", l.Slug, err)
		}
		l.BodyHTML = buf.String()
		out[i] = l
	}
	return out, nil
}

func (s *Server) handleLessons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.lessons)
}
