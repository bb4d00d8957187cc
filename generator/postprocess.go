package generator

import (
	"strings"
)

// DefaultMantraMeaning is used when the model answers with a single line.
const DefaultMantraMeaning = "A reminder of your inner divinity and alignment with Ashe."

// markers stripped from both ends of every model line.
const lineCutset = "-• \t\r\n"

// ParseMantra splits a model reply into the mantra and its meaning. The first
// non-empty line is the mantra, the remaining lines joined by a space are the
// meaning. A single-line reply becomes the mantra with DefaultMantraMeaning.
func ParseMantra(msg string) (text, meaning string) {
	msg = strings.TrimSpace(msg)

	var parts []string
	for _, line := range strings.Split(msg, "\n") {
		line = strings.Trim(line, lineCutset)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}

	if len(parts) >= 2 {
		return parts[0], strings.Join(parts[1:], " ")
	}
	return msg, DefaultMantraMeaning
}

// ParseOracle returns the trimmed interpretation.
func ParseOracle(msg string) string {
	return strings.TrimSpace(msg)
}
