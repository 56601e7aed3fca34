package parser

import (
	"strings"
)

// Confidence rules are a fixed heuristic contract derived from format and
// validity checks, independent of how the value was extracted.

func nameConfidence(name string) float64 {
	if name != "" && name != UnknownName && len(name) > 3 {
		return 1.0
	}
	return 0.0
}

var trustedEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com"}

func emailConfidence(email string) float64 {
	if email == "" {
		return 0.0
	}
	lower := strings.ToLower(email)
	if !strings.Contains(lower, "@") {
		return 0.0
	}
	for _, domain := range trustedEmailDomains {
		if strings.Contains(lower, domain) {
			return 1.0
		}
	}
	return 0.85
}

// phoneConfidence checks digit counts against the three accepted shapes:
// "+" country code with 11-13 digits, leading 0 with 11 digits, or a plain
// 10-digit number. Anything else present scores 0.5.
func phoneConfidence(phone string) float64 {
	if phone == "" {
		return 0.0
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	switch {
	case strings.HasPrefix(phone, "+"):
		if digits >= 11 && digits <= 13 {
			return 1.0
		}
	case strings.HasPrefix(phone, "0"):
		if digits == 11 {
			return 1.0
		}
	case digits == 10:
		return 1.0
	}
	return 0.5
}

func skillsConfidence(skills []string) float64 {
	if len(skills) == 0 {
		return 0.0
	}
	matched := 0
	for _, s := range skills {
		if inSkillVocabulary(s) {
			matched++
		}
	}
	if matched == 0 {
		return 0.0
	}
	ratio := float64(matched) / float64(len(skills))
	if ratio >= 0.8 {
		return 1.0
	}
	return ratio
}

func degreeConfidence(degree string) float64 {
	if degree == "" {
		return 0.0
	}
	lower := strings.ToLower(degree)
	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return 1.0
		}
	}
	return 0.6
}

func presenceConfidence(value string, score float64) float64 {
	if value == "" {
		return 0.0
	}
	return score
}
