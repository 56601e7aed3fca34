package parser

import (
	"regexp"
	"strings"
)

// Recognized work-history headings and the headings that end that section.
var (
	experienceHeadings = []string{
		"work experience", "professional experience", "employment", "experience",
	}
	sectionEndHeadings = []string{
		"education", "skills", "projects", "certifications",
	}

	degreeKeywords = []string{
		"Bachelor", "Master", "PhD", "B.Tech", "M.Tech", "B.E", "M.E",
		"B.S", "M.S", "MBA", "BBA", "MCA", "BCA", "B.Sc", "M.Sc",
	}

	titleKeywords = []string{
		"Engineer", "Developer", "Manager", "Analyst", "Consultant",
		"Designer", "Architect", "Lead", "Senior", "Junior", "Director",
		"Specialist", "Coordinator", "Administrator", "Executive", "AI",
		"Software", "Data", "Product", "Project", "Technical", "Business",
	}

	reCompanyLine     = regexp.MustCompile(`^[A-Z][A-Za-z0-9\s&,.\-]+$`)
	reDesignationLine = regexp.MustCompile(`^[A-Z][A-Za-z\s]+$`)
	reDateLine        = regexp.MustCompile(`\b(?:\d{4}|Present)\b`)
)

func isHeading(line string, headings []string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.TrimRight(trimmed, ": \t")
	for _, h := range headings {
		if trimmed == h {
			return true
		}
	}
	return false
}

// experienceSection returns the lines between a recognized work-history
// heading and the next recognized section heading (or end of text).
func experienceSection(lines []string) ([]string, bool) {
	start := -1
	for i, line := range lines {
		if isHeading(line, experienceHeadings) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if isHeading(lines[i], sectionEndHeadings) {
			end = i
			break
		}
	}
	return lines[start:end], true
}

// extractCompany returns the first line of the experience section that looks
// like a company name: a capitalized phrase followed by a designation-shaped
// line and then a line carrying a year or "Present". Without an experience
// section there is no company.
func extractCompany(lines []string) string {
	section, ok := experienceSection(lines)
	if !ok {
		return ""
	}

	for i, line := range section {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "•") {
			continue
		}
		if !reCompanyLine.MatchString(line) {
			continue
		}
		if i+2 >= len(section) {
			continue
		}
		next := strings.TrimSpace(section[i+1])
		if !reDesignationLine.MatchString(next) {
			continue
		}
		if reDateLine.MatchString(strings.TrimSpace(section[i+2])) {
			return line
		}
	}
	return ""
}

// extractDesignation scans the first 15 lines of the experience section (the
// whole text when no section is found) for a line carrying a title keyword.
func extractDesignation(lines []string, text string) string {
	section, ok := experienceSection(lines)
	if !ok {
		section = splitLines(text)
	}

	limit := len(section)
	if limit > 15 {
		limit = 15
	}
	for _, line := range section[:limit] {
		lineLower := strings.ToLower(line)
		for _, keyword := range titleKeywords {
			if !strings.Contains(lineLower, strings.ToLower(keyword)) {
				continue
			}
			designation := strings.TrimSpace(line)
			if len(designation) >= 100 || len(designation) <= 3 || strings.Contains(designation, "@") {
				continue
			}
			if designation != strings.ToUpper(designation) || len(strings.Fields(designation)) <= 4 {
				return designation
			}
		}
	}
	return ""
}

// extractEducation finds the first line carrying a degree keyword, then looks
// up to three lines ahead for a university line.
func extractEducation(lines []string) (degree, university string) {
	for i, line := range lines {
		for _, keyword := range degreeKeywords {
			if strings.Contains(strings.ToLower(line), strings.ToLower(keyword)) {
				degree = strings.TrimSpace(line)
				for j := i + 1; j < len(lines) && j < i+4; j++ {
					candidate := strings.TrimSpace(lines[j])
					if len(candidate) > 5 && strings.Contains(strings.ToLower(candidate), "university") {
						university = candidate
						break
					}
				}
				break
			}
		}
		if degree != "" {
			break
		}
	}
	return degree, university
}
