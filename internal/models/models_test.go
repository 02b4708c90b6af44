package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func completeJobDraft() JobDraft {
	return JobDraft{
		Title:          "Backend Engineer",
		Description:    "Build and run services.",
		Company:        "Acme",
		Location:       "London, England, United Kingdom",
		JobType:        JobTypeFullTime,
		EmploymentType: "Full-time",
		SourceURL:      "https://network.example.com/jobs/view/1",
	}
}

func TestJobDraftValidate(t *testing.T) {
	t.Parallel()

	require.True(t, completeJobDraft().Validate())

	// Each required field is individually load-bearing: clearing any one of
	// them rejects the draft no matter how complete the rest is.
	tests := []struct {
		name   string
		mutate func(*JobDraft)
	}{
		{"missing title", func(d *JobDraft) { d.Title = "" }},
		{"missing description", func(d *JobDraft) { d.Description = "" }},
		{"missing company", func(d *JobDraft) { d.Company = "" }},
		{"missing location", func(d *JobDraft) { d.Location = "" }},
		{"missing job type", func(d *JobDraft) { d.JobType = "" }},
		{"missing employment type", func(d *JobDraft) { d.EmploymentType = "" }},
		{"missing source url", func(d *JobDraft) { d.SourceURL = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			draft := completeJobDraft()
			tc.mutate(&draft)
			require.False(t, draft.Validate())
			require.False(t, draft.Valid())
		})
	}
}

func TestJobDraftValidateIgnoresOptionalFields(t *testing.T) {
	t.Parallel()

	// Derived and optional fields play no part in the predicate.
	draft := completeJobDraft()
	draft.Salary = nil
	draft.Skills = nil
	draft.City, draft.State, draft.Country = "", "", ""
	draft.Category = ""
	require.True(t, draft.Validate())
}

func TestContentTypeValid(t *testing.T) {
	t.Parallel()

	for _, ct := range AllContentTypes() {
		require.True(t, ct.Valid(), string(ct))
	}
	require.False(t, ContentType("podcast").Valid())
	require.False(t, ContentType("").Valid())
}
