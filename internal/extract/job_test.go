package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talentboard/harvester/internal/models"
)

const searchPage = `
<html><body>
<ul class="jobs-search__results-list">
  <li><a class="base-card__full-link" href="https://network.example.com/jobs/view/backend-engineer-123?refId=abc">Backend Engineer</a></li>
  <li><a class="base-card__full-link" href="/jobs/view/data-scientist-456?trk=search">Data Scientist</a></li>
  <li><a class="base-card__full-link" href="https://network.example.com/jobs/view/backend-engineer-123?refId=dup">Backend Engineer</a></li>
</ul>
</body></html>`

const detailPage = `
<html><body>
<h1 class="top-card-layout__title">Graduate Software Engineer</h1>
<a class="topcard__org-name-link" href="/company/acme">Acme Ltd</a>
<span class="topcard__flavor--bullet">London, England, United Kingdom</span>
<span class="posted-time-ago__text">3 days ago</span>
<div class="salary">£30,000 - £40,000 yearly</div>
<div class="show-more-less-html__markup">
  Join our graduate scheme. We use Go, PostgreSQL and Docker.
</div>
<ul class="description__job-criteria-list">
  <li><h3>Seniority level</h3><span>Entry level</span></li>
  <li><h3>Employment type</h3><span>Full-time</span></li>
  <li><h3>Job function</h3><span>Engineering</span></li>
</ul>
<a data-tracking-control-name="public_jobs_apply-link-offsite" href="https://apply.example.com/123">Apply</a>
</body></html>`

func TestJobExtractor_Candidates(t *testing.T) {
	t.Parallel()

	e := NewJobExtractor("https://network.example.com")
	doc, err := Parse([]byte(searchPage))
	require.NoError(t, err)

	urls := e.Candidates(doc)
	require.Equal(t, []string{
		"https://network.example.com/jobs/view/backend-engineer-123",
		"https://network.example.com/jobs/view/data-scientist-456",
	}, urls)
}

func TestJobExtractor_Detail(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	e := NewJobExtractor("https://network.example.com")
	doc, err := Parse([]byte(detailPage))
	require.NoError(t, err)

	draft, err := e.Detail(doc, "https://network.example.com/jobs/view/backend-engineer-123", now)
	require.NoError(t, err)

	job, ok := draft.(*models.JobDraft)
	require.True(t, ok)
	require.Equal(t, "Graduate Software Engineer", job.Title)
	require.Equal(t, "Acme Ltd", job.Company)
	require.Equal(t, "Full-time", job.EmploymentType)
	require.Equal(t, "Engineering", job.Category)
	require.Equal(t, models.JobTypeGraduate, job.JobType)
	require.Equal(t, "London", job.City)
	require.Equal(t, "England", job.State)
	require.Equal(t, "United Kingdom", job.Country)
	require.Equal(t, now.AddDate(0, 0, -3), job.PostedAt)
	require.NotNil(t, job.Salary)
	require.Equal(t, models.SalaryRange, job.Salary.Mode)
	require.Equal(t, 30000.0, job.Salary.Min)
	require.Equal(t, 40000.0, job.Salary.Max)
	require.Equal(t, "GBP", job.Salary.Currency)
	require.Contains(t, job.Skills, "go")
	require.Contains(t, job.Skills, "postgresql")
	require.Contains(t, job.Skills, "docker")
	require.Equal(t, "external", job.ApplyMethod)
	require.Equal(t, "https://apply.example.com/123", job.ApplyURL)
	require.True(t, job.Valid())
}

func TestJobExtractor_DetailMissingTitle(t *testing.T) {
	t.Parallel()

	e := NewJobExtractor("https://network.example.com")
	doc, err := Parse([]byte(`<html><body><p>checkpoint</p></body></html>`))
	require.NoError(t, err)

	_, err = e.Detail(doc, "https://network.example.com/jobs/view/x", time.Now())
	require.Error(t, err)
}

func TestJobExtractor_SearchURL(t *testing.T) {
	t.Parallel()

	e := NewJobExtractor("https://network.example.com/")
	got := e.SearchURL(Query{Location: "London", Keyword: "software engineer", Offset: 25, DatePosted: "past-week"})
	require.Contains(t, got, "https://network.example.com/jobs/search?")
	require.Contains(t, got, "keywords=software+engineer")
	require.Contains(t, got, "location=London")
	require.Contains(t, got, "start=25")
	require.Contains(t, got, "f_TPR=r604800")
}

func TestFor(t *testing.T) {
	t.Parallel()

	e, ok := For(models.ContentJob, "https://network.example.com")
	require.True(t, ok)
	require.Equal(t, models.ContentJob, e.ContentType())

	_, ok = For(models.ContentEvent, "https://network.example.com")
	require.False(t, ok)
}
