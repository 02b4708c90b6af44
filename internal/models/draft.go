package models

// Draft is an in-memory, unpersisted candidate record produced by
// extraction and normalization. SourceID is the external system's stable
// reference used to avoid duplicate persistence.
type Draft interface {
	Kind() ContentType
	SourceID() string
	Valid() bool
}

// Kind implements Draft.
func (d *JobDraft) Kind() ContentType { return ContentJob }

// SourceID implements Draft.
func (d *JobDraft) SourceID() string { return d.SourceURL }

// Valid implements Draft via the required-field predicate.
func (d *JobDraft) Valid() bool { return d.Validate() }

// Kind implements Draft.
func (d *EventDraft) Kind() ContentType { return ContentEvent }

// SourceID implements Draft.
func (d *EventDraft) SourceID() string { return d.SourceURL }

// Valid implements Draft.
func (d *EventDraft) Valid() bool {
	return d.Title != "" && d.Organizer != "" && d.SourceURL != ""
}

// Kind implements Draft.
func (d *PersonDraft) Kind() ContentType { return ContentPerson }

// SourceID implements Draft.
func (d *PersonDraft) SourceID() string { return d.SourceURL }

// Valid implements Draft.
func (d *PersonDraft) Valid() bool {
	return d.Name != "" && d.SourceURL != ""
}

// Kind implements Draft.
func (d *ArticleDraft) Kind() ContentType { return ContentArticle }

// SourceID implements Draft.
func (d *ArticleDraft) SourceID() string { return d.SourceURL }

// Valid implements Draft.
func (d *ArticleDraft) Valid() bool {
	return d.Title != "" && d.Body != "" && d.SourceURL != ""
}

// Kind implements Draft.
func (d *CompanyDraft) Kind() ContentType { return ContentCompany }

// SourceID implements Draft.
func (d *CompanyDraft) SourceID() string { return d.SourceURL }

// Valid implements Draft.
func (d *CompanyDraft) Valid() bool {
	return d.Name != "" && d.SourceURL != ""
}

// Kind implements Draft.
func (d *PostDraft) Kind() ContentType { return ContentPost }

// SourceID implements Draft.
func (d *PostDraft) SourceID() string { return d.SourceURL }

// Valid implements Draft.
func (d *PostDraft) Valid() bool {
	return d.Author != "" && d.Body != "" && d.SourceURL != ""
}
