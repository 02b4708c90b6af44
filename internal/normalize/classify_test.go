package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentboard/harvester/internal/models"
)

func TestClassifyJobType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description string
		want        models.JobType
	}{
		{"graduate role", "Graduate Software Engineer", "entry level position", models.JobTypeGraduate},
		{"remote only", "Remote Backend Role", "work from anywhere", models.JobTypeRemote},
		{"graduate beats remote", "Graduate Engineer", "fully remote team", models.JobTypeGraduate},
		{"student beats everything", "Student placement", "remote hybrid contract", models.JobTypeStudent},
		{"part-time beats remote", "Part-time analyst", "remote friendly", models.JobTypePartTime},
		{"contract from description", "Backend Engineer", "6 month contract position", models.JobTypeContract},
		{"default full time", "Backend Engineer", "build services", models.JobTypeFullTime},
		{"international is not internship", "International Sales Manager", "sell things", models.JobTypeFullTime},
		{"internal is not internship", "Internal Tools Engineer", "build tooling", models.JobTypeFullTime},
		{"intern alone is not internship", "Marketing Intern", "assist the team", models.JobTypeFullTime},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ClassifyJobType(tc.title, tc.description))
		})
	}
}

func TestClassifyEventType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  models.EventType
	}{
		{"Intro to Go Webinar", models.EventTypeWebinar},
		{"Hands-on Docker Workshop", models.EventTypeWorkshop},
		{"Tech Careers Job Fair", models.EventTypeJobFair},
		{"Monthly Networking Evening", models.EventTypeMeetup},
		{"GopherCon Conference", models.EventTypeConference},
		{"Something else entirely", models.EventTypeMeetup},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ClassifyEventType(tc.title, ""), tc.title)
	}
}

func TestExtractSkills(t *testing.T) {
	t.Parallel()

	text := "We use Go, Python and React with PostgreSQL and Docker on AWS. " +
		"Strong communication skills required. Go experience preferred."
	skills := ExtractSkills(text)

	require.Contains(t, skills, "go")
	require.Contains(t, skills, "python")
	require.Contains(t, skills, "react")
	require.Contains(t, skills, "postgresql")
	require.Contains(t, skills, "docker")
	require.Contains(t, skills, "aws")
	require.Contains(t, skills, "communication")

	// Dedup: "Go" appears twice in the text but once in the result.
	count := 0
	for _, s := range skills {
		if s == "go" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestExtractSkills_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, ExtractSkills("nothing relevant here at all"))
}
