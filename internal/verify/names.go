package verify

import (
	"regexp"
	"strings"
)

var (
	reAadhaarGrouped = regexp.MustCompile(`\d{4}\s*\d{4}\s*\d{4}`)
	rePANInline      = regexp.MustCompile(`[A-Z]{5}\d{4}[A-Z]`)
	reAlphaName      = regexp.MustCompile(`^[A-Za-z\s]{3,50}$`)

	aadhaarHeaderWords = []string{"government", "india", "aadhaar", "uid"}
	panHeaderWords     = []string{"income", "tax", "department", "permanent", "account"}
)

func isHeaderLine(line string, headerWords []string) bool {
	lower := strings.ToLower(line)
	for _, w := range headerWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func looksLikeName(line string) bool {
	return reAlphaName.MatchString(line) && len(strings.Fields(line)) >= 2
}

// ExtractAadhaarName pulls the holder name from Aadhaar card OCR text. The
// name is usually the line directly above the 12-digit number; failing that,
// the first 2+ word alphabetic line among the first ten.
func ExtractAadhaarName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var name string
	for i, line := range lines {
		clean := strings.TrimSpace(line)
		if isHeaderLine(clean, aadhaarHeaderWords) {
			continue
		}
		if reAadhaarGrouped.MatchString(clean) {
			if i > 0 {
				name = strings.TrimSpace(lines[i-1])
			}
			break
		}
		if name == "" && looksLikeName(clean) {
			name = clean
		}
	}

	if name == "" {
		name = firstNameLike(lines)
	}
	return name
}

// ExtractPANName pulls the holder name from PAN card OCR text by scanning up
// to three lines above the PAN number for an alphabetic 2+ word line.
func ExtractPANName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var name string
	for i, line := range lines {
		clean := strings.TrimSpace(line)
		if isHeaderLine(clean, panHeaderWords) {
			continue
		}
		if rePANInline.MatchString(clean) {
			for j := i - 1; j >= 0 && j >= i-3; j-- {
				candidate := strings.TrimSpace(lines[j])
				if looksLikeName(candidate) {
					name = candidate
					break
				}
			}
			break
		}
	}

	if name == "" {
		name = firstNameLike(lines)
	}
	return name
}

func firstNameLike(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		clean := strings.TrimSpace(line)
		if len(clean) > 5 && looksLikeName(clean) {
			return clean
		}
	}
	return ""
}
