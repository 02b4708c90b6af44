package scrape

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentboard/harvester/internal/extract"
	"github.com/talentboard/harvester/internal/fetch"
	"github.com/talentboard/harvester/internal/metrics"
	"github.com/talentboard/harvester/internal/models"
	"github.com/talentboard/harvester/internal/publish"
	"github.com/talentboard/harvester/internal/ratelimit"
	"github.com/talentboard/harvester/internal/snapshot"
	"github.com/talentboard/harvester/internal/store"
)

// ErrAlreadyRunning is returned by Start while a run is active.
var ErrAlreadyRunning = errors.New("a harvest run is already active")

// pageSize is the source's search result page size; pagination offsets
// step by this amount and a short page ends the pagination.
const pageSize = 25

// Deps wires the orchestrator's collaborators. Renderer, Detector,
// Snapshots, and Publisher are optional.
type Deps struct {
	Fetcher    fetch.Fetcher
	Renderer   fetch.Fetcher
	Detector   *fetch.Detector
	Gateway    store.Gateway
	Snapshots  snapshot.Store
	Publisher  publish.Publisher
	Extractors func(models.ContentType) (extract.Extractor, bool)
	Logger     *zap.Logger
	Now        func() time.Time
}

// Orchestrator drives the {location × content-type} crawl for one run at a
// time. Progress is mutated only by the run goroutine under the mutex;
// Snapshot hands out copies.
type Orchestrator struct {
	deps Deps

	mu       sync.Mutex
	progress Progress
	cancel   context.CancelFunc
	done     chan struct{}
}

// New constructs an Orchestrator. Fetcher, Gateway, and Extractors are
// required.
func New(deps Deps) *Orchestrator {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Orchestrator{
		deps:     deps,
		progress: IdleProgress(),
	}
}

// Start validates the config and launches the run goroutine. It fails with
// ErrAlreadyRunning while a run is active.
func (o *Orchestrator) Start(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.withDefaults()

	o.mu.Lock()
	if o.progress.IsRunning {
		o.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel
	o.done = make(chan struct{})
	o.progress = Progress{
		RunID:          uuid.NewString(),
		IsRunning:      true,
		TotalLocations: len(cfg.Locations),
		Counts:         make(map[models.ContentType]int, len(cfg.ContentTypes)),
		StartTime:      o.deps.Now(),
	}
	done := o.done
	o.mu.Unlock()

	metrics.SetRunActive(true)
	o.deps.Logger.Info("harvest run started",
		zap.Int("locations", len(cfg.Locations)),
		zap.Int("content_types", len(cfg.ContentTypes)),
	)

	go func() {
		defer close(done)
		o.run(ctx, cfg)
	}()
	return nil
}

// Stop requests cooperative cancellation. It is safe to call when idle and
// is idempotent; in-flight fetches are allowed to finish.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	cancel := o.cancel
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Running reports whether a run is active.
func (o *Orchestrator) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.progress.IsRunning
}

// Done returns a channel closed when the current run's goroutine exits, or
// nil if no run was started.
func (o *Orchestrator) Done() <-chan struct{} {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.done
}

// Snapshot returns a copy of the run progress.
func (o *Orchestrator) Snapshot() Progress {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.progress.clone()
}

func (o *Orchestrator) run(ctx context.Context, cfg RunConfig) {
	for _, location := range cfg.Locations {
		if ctx.Err() != nil {
			break
		}
		for _, contentType := range cfg.ContentTypes {
			if ctx.Err() != nil {
				break
			}
			o.setCurrent(location, contentType, fmt.Sprintf("searching %s in %s", contentType, location))

			res := o.scrapeUnit(ctx, cfg, location, contentType)
			if res.Unsupported {
				o.deps.Logger.Warn("content type extraction not implemented; skipping",
					zap.String("content_type", string(contentType)),
					zap.String("location", location),
				)
				o.setActivity(fmt.Sprintf("skipped %s: not supported", contentType))
			} else {
				persisted := o.persist(ctx, res)
				o.applyResult(res, persisted)
			}

			// Politeness gap before the next unit of work.
			if err := ratelimit.Sleep(ctx, cfg.Delay); err != nil {
				break
			}
		}
		if ctx.Err() == nil {
			o.completeLocation(location)
		}
	}
	o.finish(ctx.Err() == nil)
}

// scrapeUnit executes one (location, content type) unit of work. Candidate
// failures are isolated; a failed search page ends pagination for the unit.
func (o *Orchestrator) scrapeUnit(ctx context.Context, cfg RunConfig, location string, contentType models.ContentType) Result {
	res := Result{
		ContentType: contentType,
		Location:    location,
		StartedAt:   o.deps.Now(),
	}
	ext, ok := o.deps.Extractors(contentType)
	if !ok {
		res.Unsupported = true
		return res
	}

	for page := 0; page < cfg.MaxPages; page++ {
		if ctx.Err() != nil {
			break
		}
		if page > 0 {
			if err := ratelimit.Sleep(ctx, cfg.Delay); err != nil {
				break
			}
		}
		searchURL := ext.SearchURL(extract.Query{
			Location:   location,
			Keyword:    cfg.Keywords[contentType],
			Offset:     page * pageSize,
			DatePosted: cfg.DatePosted,
		})

		body, err := o.fetchPage(ctx, cfg, searchURL)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			metrics.ObserveError("network")
			metrics.ObservePageFetch(string(contentType), "error")
			break
		}
		res.Pages++
		metrics.ObservePageFetch(string(contentType), "ok")

		doc, err := extract.Parse(body)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			metrics.ObserveError("extraction")
			break
		}
		candidates := ext.Candidates(doc)

		for i, candidateURL := range candidates {
			if ctx.Err() != nil {
				break
			}
			// Jittered gap before every detail fetch; the token bucket alone
			// would pace requests on a predictable cadence.
			if err := ratelimit.Sleep(ctx, cfg.Delay); err != nil {
				break
			}
			o.setActivity(fmt.Sprintf("fetching %s detail %d/%d", contentType, i+1, len(candidates)))
			draft, err := o.fetchDetail(ctx, ext, candidateURL)
			if err != nil {
				// Single candidate failures must not lose the page.
				res.Errors = append(res.Errors, err.Error())
				o.deps.Logger.Warn("candidate dropped",
					zap.String("url", candidateURL), zap.Error(err))
				continue
			}
			if !draft.Valid() {
				metrics.ObserveError("validation")
				o.deps.Logger.Debug("draft failed validation", zap.String("url", candidateURL))
				continue
			}
			res.Drafts = append(res.Drafts, draft)
		}

		if len(candidates) < pageSize {
			break
		}
	}

	res.ItemsFound = len(res.Drafts)
	res.Elapsed = o.deps.Now().Sub(res.StartedAt)
	res.OK = len(res.Errors) == 0
	return res
}

// fetchPage retrieves a search page, retrying up to cfg.MaxRetries with a
// jittered pause between attempts. The retry budget is per page.
func (o *Orchestrator) fetchPage(ctx context.Context, cfg RunConfig, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			o.addRetry()
			metrics.ObserveRetry()
			if err := ratelimit.Sleep(ctx, cfg.Delay); err != nil {
				return nil, lastErr
			}
		}
		body, err := o.fetchDocument(ctx, models.ContentType(""), url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("page fetch exhausted retries: %w", lastErr)
}

// fetchDetail retrieves and extracts one candidate. Detail fetches are not
// retried; a failure drops only this candidate.
func (o *Orchestrator) fetchDetail(ctx context.Context, ext extract.Extractor, url string) (models.Draft, error) {
	body, err := o.fetchDocument(ctx, ext.ContentType(), url)
	if err != nil {
		return nil, err
	}
	doc, err := extract.Parse(body)
	if err != nil {
		return nil, err
	}
	return ext.Detail(doc, url, o.deps.Now())
}

// fetchDocument performs a single fetch with the headless fallback and,
// for detail pages, archives the raw markup.
func (o *Orchestrator) fetchDocument(ctx context.Context, contentType models.ContentType, url string) ([]byte, error) {
	res, err := o.deps.Fetcher.Fetch(ctx, url)
	if err != nil {
		var netErr *fetch.NetworkError
		if errors.As(err, &netErr) && netErr.RateLimited() {
			o.addRateLimitHit()
			metrics.ObserveRateLimitHit()
		}
		return nil, err
	}

	if o.deps.Detector != nil && o.deps.Renderer != nil && o.deps.Detector.ShouldRender(res) {
		rendered, rerr := o.deps.Renderer.Fetch(ctx, url)
		if rerr != nil {
			o.deps.Logger.Warn("headless render failed; using plain body",
				zap.String("url", url), zap.Error(rerr))
		} else {
			res = rendered
		}
	}

	if o.deps.Snapshots != nil && contentType != "" {
		if _, serr := o.deps.Snapshots.Save(ctx, contentType, url, res.Body); serr != nil {
			o.deps.Logger.Warn("snapshot save failed", zap.String("url", url), zap.Error(serr))
		}
	}
	return res.Body, nil
}

// persist writes validated drafts through the gateway and returns how many
// landed. Persistence errors are run-level errors but never abort the
// remaining queue.
func (o *Orchestrator) persist(ctx context.Context, res Result) int {
	persisted := 0
	for _, draft := range res.Drafts {
		if ctx.Err() != nil {
			break
		}
		if err := o.deps.Gateway.SaveDraft(ctx, draft); err != nil {
			o.recordError(fmt.Sprintf("persist %s: %v", draft.SourceID(), err))
			metrics.ObserveError("persistence")
			o.deps.Logger.Error("persist draft failed",
				zap.String("source_id", draft.SourceID()), zap.Error(err))
			continue
		}
		persisted++
		o.publishPersisted(ctx, draft)
	}
	metrics.ObservePersisted(string(res.ContentType), persisted)
	return persisted
}

func (o *Orchestrator) publishPersisted(ctx context.Context, draft models.Draft) {
	if o.deps.Publisher == nil {
		return
	}
	rec := publish.Record{
		RunID:       o.Snapshot().RunID,
		ContentType: draft.Kind(),
		SourceID:    draft.SourceID(),
		PersistedAt: o.deps.Now(),
	}
	if err := o.deps.Publisher.PublishPersisted(ctx, rec); err != nil {
		o.deps.Logger.Warn("publish persisted record failed",
			zap.String("source_id", rec.SourceID), zap.Error(err))
	}
}

// applyResult folds one unit's outcome into the progress. Counters reflect
// persisted, validated records only.
func (o *Orchestrator) applyResult(res Result, persisted int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress.Counts[res.ContentType] += persisted
	o.progress.Errors += len(res.Errors)
	if len(res.Errors) > 0 {
		o.progress.LastError = res.Errors[len(res.Errors)-1]
	}
	o.progress.CurrentActivity = fmt.Sprintf(
		"%s in %s: %d persisted, %d errors over %d pages",
		res.ContentType, res.Location, persisted, len(res.Errors), res.Pages,
	)
}

func (o *Orchestrator) setCurrent(location string, contentType models.ContentType, activity string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress.CurrentLocation = location
	o.progress.CurrentContentType = string(contentType)
	o.progress.CurrentActivity = activity
}

func (o *Orchestrator) setActivity(activity string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress.CurrentActivity = activity
}

func (o *Orchestrator) addRetry() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress.Retries++
}

func (o *Orchestrator) addRateLimitHit() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress.RateLimitHits++
}

func (o *Orchestrator) recordError(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress.Errors++
	o.progress.LastError = msg
}

func (o *Orchestrator) completeLocation(location string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress.CompletedLocations++
	o.progress.CurrentActivity = fmt.Sprintf("finished %s", location)
}

func (o *Orchestrator) finish(clean bool) {
	o.mu.Lock()
	o.progress.IsRunning = false
	o.progress.Completed = clean && o.progress.CompletedLocations == o.progress.TotalLocations
	if o.progress.Completed {
		o.progress.CurrentActivity = "run completed"
	} else {
		o.progress.CurrentActivity = "run stopped"
	}
	final := o.progress.clone()
	o.mu.Unlock()

	metrics.SetRunActive(false)
	o.deps.Logger.Info("harvest run finished",
		zap.Bool("completed", final.Completed),
		zap.Int("completed_locations", final.CompletedLocations),
		zap.Int("errors", final.Errors),
		zap.Int("retries", final.Retries),
	)
}
