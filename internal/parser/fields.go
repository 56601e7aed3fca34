package parser

import (
	"regexp"
	"strings"
)

var (
	reCapitalizedName = regexp.MustCompile(`^[A-Z][a-z]+(\s[A-Z][a-z]+)+`)
	reEmail           = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reLocation        = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)*),\s*([A-Z]{2})`)

	// Tried in order; the first pattern with a match wins.
	rePhones = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+?\d{10,}`),
	}

	reExperience = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+experience`),
		regexp.MustCompile(`(?i)experience[:\s]+(\d+)\+?\s*(?:years?|yrs?)`),
	}
)

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// extractName scans the first five lines for a short capitalized-words line.
func extractName(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(strings.Fields(line)) <= 4 && len(line) > 3 && !strings.Contains(line, "@") {
			if reCapitalizedName.MatchString(line) {
				return line
			}
		}
	}
	return UnknownName
}

func extractEmail(text string) string {
	return reEmail.FindString(text)
}

func extractPhone(text string) string {
	for _, re := range rePhones {
		if match := re.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

func extractExperience(text string) string {
	for _, re := range reExperience {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1] + " years"
		}
	}
	return ""
}

func extractLocation(text string) string {
	if m := reLocation.FindStringSubmatch(text); m != nil {
		return m[1] + ", " + m[2]
	}
	return ""
}
