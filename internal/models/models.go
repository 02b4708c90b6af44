// Package models defines the draft records produced by extraction and the
// enumerations shared across the harvesting engine.
package models

import "time"

// ContentType identifies one of the entity kinds the engine can harvest.
type ContentType string

// Supported content types.
const (
	ContentJob     ContentType = "job"
	ContentEvent   ContentType = "event"
	ContentPerson  ContentType = "person"
	ContentArticle ContentType = "article"
	ContentCompany ContentType = "company"
	ContentPost    ContentType = "post"
)

// AllContentTypes lists every content type in canonical order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentJob,
		ContentEvent,
		ContentPerson,
		ContentArticle,
		ContentCompany,
		ContentPost,
	}
}

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentJob, ContentEvent, ContentPerson, ContentArticle, ContentCompany, ContentPost:
		return true
	}
	return false
}

// JobType classifies the working arrangement of a job posting.
type JobType string

// Job type classifications ordered by scan priority; see normalize.ClassifyJobType.
const (
	JobTypeStudent        JobType = "STUDENT"
	JobTypeGraduate       JobType = "GRADUATE"
	JobTypeExperienced    JobType = "EXPERIENCED"
	JobTypeInternship     JobType = "INTERNSHIP"
	JobTypeApprenticeship JobType = "APPRENTICESHIP"
	JobTypeContract       JobType = "CONTRACT"
	JobTypeTemporary      JobType = "TEMPORARY"
	JobTypeVolunteer      JobType = "VOLUNTEER"
	JobTypePartTime       JobType = "PART_TIME"
	JobTypeRemote         JobType = "REMOTE"
	JobTypeOnSite         JobType = "ON_SITE"
	JobTypeHybrid         JobType = "HYBRID"
	JobTypeFullTime       JobType = "FULL_TIME"
)

// EventType classifies a harvested event.
type EventType string

// Event type classifications.
const (
	EventTypeWebinar     EventType = "WEBINAR"
	EventTypeWorkshop    EventType = "WORKSHOP"
	EventTypeSeminar     EventType = "SEMINAR"
	EventTypeMeetup      EventType = "MEETUP"
	EventTypeConference  EventType = "CONFERENCE"
	EventTypeJobFair     EventType = "JOB_FAIR"
	EventTypeRecruitment EventType = "RECRUITMENT"
)

// SalaryMode distinguishes how a salary figure was advertised.
type SalaryMode string

// Salary modes.
const (
	SalaryFixed       SalaryMode = "FIXED"
	SalaryRange       SalaryMode = "RANGE"
	SalaryCompetitive SalaryMode = "COMPETITIVE"
)

// SalaryPeriod is the advertised pay period.
type SalaryPeriod string

// Salary periods.
const (
	PeriodYearly  SalaryPeriod = "Yearly"
	PeriodMonthly SalaryPeriod = "Monthly"
	PeriodWeekly  SalaryPeriod = "Weekly"
	PeriodDaily   SalaryPeriod = "Daily"
	PeriodHourly  SalaryPeriod = "Hourly"
)

// Salary is the normalized form of a raw salary string.
type Salary struct {
	Min      float64      `json:"min,omitempty"`
	Max      float64      `json:"max,omitempty"`
	Currency string       `json:"currency,omitempty"`
	Period   SalaryPeriod `json:"period,omitempty"`
	Mode     SalaryMode   `json:"mode"`
}

// JobDraft is an unpersisted job record assembled from a detail page.
type JobDraft struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Country        string    `json:"country,omitempty"`
	State          string    `json:"state,omitempty"`
	City           string    `json:"city,omitempty"`
	JobType        JobType   `json:"job_type"`
	EmploymentType string    `json:"employment_type"`
	Category       string    `json:"category,omitempty"`
	Salary         *Salary   `json:"salary,omitempty"`
	SalaryRaw      string    `json:"salary_raw,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	ApplyMethod    string    `json:"apply_method,omitempty"`
	ApplyURL       string    `json:"apply_url,omitempty"`
	PostedAt       time.Time `json:"posted_at"`
	SourceURL      string    `json:"source_url"`
}

// Validate reports whether the draft carries every field required for
// persistence. It is a pure predicate over the seven required fields.
func (d JobDraft) Validate() bool {
	return d.Title != "" &&
		d.Description != "" &&
		d.Company != "" &&
		d.Location != "" &&
		d.JobType != "" &&
		d.EmploymentType != "" &&
		d.SourceURL != ""
}

// EventDraft is an unpersisted event record.
type EventDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Organizer   string    `json:"organizer"`
	Location    string    `json:"location"`
	EventType   EventType `json:"event_type"`
	StartsAt    time.Time `json:"starts_at"`
	SourceURL   string    `json:"source_url"`
}

// PersonDraft is an unpersisted professional-profile record.
type PersonDraft struct {
	Name      string   `json:"name"`
	Headline  string   `json:"headline"`
	Location  string   `json:"location"`
	Skills    []string `json:"skills,omitempty"`
	SourceURL string   `json:"source_url"`
}

// ArticleDraft is an unpersisted article record.
type ArticleDraft struct {
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	SourceURL   string    `json:"source_url"`
}

// CompanyDraft is an unpersisted company-profile record.
type CompanyDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry,omitempty"`
	Location    string `json:"location,omitempty"`
	Size        string `json:"size,omitempty"`
	SourceURL   string `json:"source_url"`
}

// PostDraft is an unpersisted feed-post record.
type PostDraft struct {
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	PostedAt  time.Time `json:"posted_at"`
	SourceURL string    `json:"source_url"`
}
