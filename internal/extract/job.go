package extract

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/talentboard/harvester/internal/models"
	"github.com/talentboard/harvester/internal/normalize"
)

// JobExtractor maps job search and detail pages into JobDrafts.
type JobExtractor struct {
	baseURL string
}

// NewJobExtractor builds a JobExtractor rooted at the source's base URL.
func NewJobExtractor(baseURL string) *JobExtractor {
	return &JobExtractor{baseURL: strings.TrimRight(baseURL, "/")}
}

// ContentType implements Extractor.
func (e *JobExtractor) ContentType() models.ContentType { return models.ContentJob }

// datePostedParams maps the run-level filter onto the source's relative
// time window parameter (seconds).
var datePostedParams = map[string]string{
	"past-day":   "r86400",
	"past-week":  "r604800",
	"past-month": "r2592000",
}

// SearchURL implements Extractor. Pagination steps by result offset.
func (e *JobExtractor) SearchURL(q Query) string {
	v := url.Values{}
	v.Set("keywords", q.Keyword)
	v.Set("location", q.Location)
	v.Set("start", fmt.Sprintf("%d", q.Offset))
	if param, ok := datePostedParams[q.DatePosted]; ok {
		v.Set("f_TPR", param)
	}
	return fmt.Sprintf("%s/jobs/search?%s", e.baseURL, v.Encode())
}

// Candidates implements Extractor, pulling detail links from the results
// list. Query strings are stripped so the URL doubles as the dedup key.
func (e *JobExtractor) Candidates(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var urls []string
	doc.Find("ul.jobs-search__results-list li a.base-card__full-link, a.base-card__full-link").
		Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok {
				return
			}
			href = e.absolute(stripQuery(href))
			if href == "" {
				return
			}
			if _, dup := seen[href]; dup {
				return
			}
			seen[href] = struct{}{}
			urls = append(urls, href)
		})
	return urls
}

// Detail implements Extractor. Title and description are required markup;
// every other field is best-effort and left to validation.
func (e *JobExtractor) Detail(doc *goquery.Document, sourceURL string, now time.Time) (models.Draft, error) {
	title := text(doc, "h1.top-card-layout__title, h1.topcard__title, h1")
	description := text(doc, "div.show-more-less-html__markup, div.description__text")
	if title == "" {
		return nil, fmt.Errorf("job detail %s: title markup missing", sourceURL)
	}
	if description == "" {
		return nil, fmt.Errorf("job detail %s: description markup missing", sourceURL)
	}

	company := text(doc, "a.topcard__org-name-link, span.topcard__flavor")
	location := text(doc, "span.topcard__flavor--bullet")
	salaryRaw := text(doc, "div.salary, span.salary, div.compensation__salary")
	postedRaw := text(doc, "span.posted-time-ago__text")

	draft := &models.JobDraft{
		Title:       title,
		Description: description,
		Company:     company,
		Location:    location,
		SalaryRaw:   salaryRaw,
		SourceURL:   sourceURL,
	}

	// Criteria list carries seniority, employment type, and function labels.
	doc.Find("ul.description__job-criteria-list li").Each(func(_ int, sel *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(sel.Find("h3").Text()))
		value := strings.TrimSpace(sel.Find("span").Text())
		switch {
		case strings.Contains(label, "employment type"):
			draft.EmploymentType = value
		case strings.Contains(label, "job function"):
			draft.Category = value
		}
	})

	if applyURL, ok := doc.Find(`a[data-tracking-control-name*="apply"]`).Attr("href"); ok {
		draft.ApplyURL = e.absolute(applyURL)
		draft.ApplyMethod = "external"
	} else {
		draft.ApplyMethod = "on_platform"
	}

	draft.Salary = normalize.ParseSalary(salaryRaw)
	draft.PostedAt = normalize.ParseDate(postedRaw, now)
	draft.JobType = normalize.ClassifyJobType(title, description)
	draft.Skills = normalize.ExtractSkills(title + " " + description)

	parts := normalize.SplitLocation(location)
	draft.City = parts.City
	draft.State = parts.State
	draft.Country = parts.Country

	return draft, nil
}

func (e *JobExtractor) absolute(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return e.baseURL + href
	}
	return ""
}

func stripQuery(href string) string {
	if i := strings.IndexByte(href, '?'); i >= 0 {
		return href[:i]
	}
	return href
}

func text(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}
