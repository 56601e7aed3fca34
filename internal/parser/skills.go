package parser

import "strings"

// skillVocabulary is the fixed, ordered list of recognized skill tokens.
// Matches are collected in this order.
var skillVocabulary = []string{
	"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "PHP", "Swift",
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring",
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Oracle", "SQLite",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins",
	"Git", "GitHub", "GitLab", "Agile", "Scrum", "DevOps",
	"Machine Learning", "AI", "Deep Learning", "Data Science",
	"HTML", "CSS", "REST API", "GraphQL", "Microservices",
	"Linux", "Windows", "MacOS", "CI/CD", "Testing", "TDD",
}

const maxSkills = 10

// extractSkills does a case-insensitive substring search of each vocabulary
// term against the full text, truncated to the first ten matches.
func extractSkills(text string) []string {
	textLower := strings.ToLower(text)

	var found []string
	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) == maxSkills {
				break
			}
		}
	}
	return found
}

func inSkillVocabulary(skill string) bool {
	for _, s := range skillVocabulary {
		if s == skill {
			return true
		}
	}
	return false
}
