package normalize

import (
	"strings"

	"github.com/talentboard/harvester/internal/models"
)

// jobTypeKeywords is scanned in order over title+description; the first
// match wins, so the slice defines a total priority order. Matching is by
// substring, so short synonyms do not belong here ("intern" would match
// "international").
var jobTypeKeywords = []struct {
	keywords []string
	jobType  models.JobType
}{
	{[]string{"student"}, models.JobTypeStudent},
	{[]string{"graduate"}, models.JobTypeGraduate},
	{[]string{"experienced"}, models.JobTypeExperienced},
	{[]string{"internship"}, models.JobTypeInternship},
	{[]string{"apprenticeship"}, models.JobTypeApprenticeship},
	{[]string{"contract"}, models.JobTypeContract},
	{[]string{"temporary"}, models.JobTypeTemporary},
	{[]string{"volunteer"}, models.JobTypeVolunteer},
	{[]string{"part-time", "part time"}, models.JobTypePartTime},
	{[]string{"remote"}, models.JobTypeRemote},
	{[]string{"on-site", "onsite", "on site"}, models.JobTypeOnSite},
	{[]string{"hybrid"}, models.JobTypeHybrid},
}

// ClassifyJobType scans title and description for working-arrangement
// keywords in priority order. No match defaults to FULL_TIME.
func ClassifyJobType(title, description string) models.JobType {
	text := strings.ToLower(title + " " + description)
	for _, entry := range jobTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.jobType
			}
		}
	}
	return models.JobTypeFullTime
}

var eventTypeKeywords = []struct {
	keywords  []string
	eventType models.EventType
}{
	{[]string{"webinar"}, models.EventTypeWebinar},
	{[]string{"workshop"}, models.EventTypeWorkshop},
	{[]string{"seminar"}, models.EventTypeSeminar},
	{[]string{"networking", "meetup"}, models.EventTypeMeetup},
	{[]string{"conference"}, models.EventTypeConference},
	{[]string{"job fair", "career fair"}, models.EventTypeJobFair},
	{[]string{"job hunting", "recruitment"}, models.EventTypeRecruitment},
}

// ClassifyEventType scans title and description for event keywords.
// No match defaults to MEETUP.
func ClassifyEventType(title, description string) models.EventType {
	text := strings.ToLower(title + " " + description)
	for _, entry := range eventTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.eventType
			}
		}
	}
	return models.EventTypeMeetup
}
