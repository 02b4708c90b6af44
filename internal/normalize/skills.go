package normalize

import (
	"regexp"
	"strings"
)

// skillGroups holds one case-insensitive pattern per skill family. Matches
// across all groups are unioned, lower-cased, and deduplicated.
var skillGroups = []*regexp.Regexp{
	// Languages and frameworks.
	regexp.MustCompile(`(?i)\b(golang|go|python|java|javascript|typescript|ruby|php|rust|kotlin|swift|scala|react|angular|vue|node\.?js|django|flask|spring|rails|laravel|express)\b`),
	regexp.MustCompile(`(?i)(c\+\+|c#|\.net)`),
	// Markup and styling.
	regexp.MustCompile(`(?i)\b(html5?|css3?|sass|less|tailwind|bootstrap)\b`),
	// Data stores.
	regexp.MustCompile(`(?i)\b(sql|mysql|postgresql|postgres|mongodb|redis|elasticsearch|cassandra|sqlite|oracle|dynamodb)\b`),
	// Cloud and devops tooling.
	regexp.MustCompile(`(?i)\b(aws|azure|gcp|google cloud|docker|kubernetes|terraform|ansible|jenkins|ci/cd|git|github|gitlab|linux)\b`),
	// Machine learning and data science.
	regexp.MustCompile(`(?i)\b(machine learning|deep learning|tensorflow|pytorch|pandas|numpy|data science|nlp|computer vision|spark|hadoop)\b`),
	// Process and methodology.
	regexp.MustCompile(`(?i)\b(agile|scrum|kanban|devops|tdd|microservices|rest|graphql|api)\b`),
	// Soft skills.
	regexp.MustCompile(`(?i)\b(leadership|communication|teamwork|problem solving|project management|time management|mentoring)\b`),
}

// ExtractSkills returns the deduplicated, lower-cased set of skill keywords
// found in free text, in first-match order.
func ExtractSkills(text string) []string {
	seen := make(map[string]struct{})
	var skills []string
	for _, re := range skillGroups {
		for _, match := range re.FindAllString(text, -1) {
			skill := strings.ToLower(match)
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			skills = append(skills, skill)
		}
	}
	return skills
}
