// Package postgres implements the persistence gateway on PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/talentboard/harvester/internal/models"
)

// DB is the subset of pgxpool.Pool the gateway needs; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Gateway is a Postgres-backed store.Gateway.
type Gateway struct {
	db     DB
	logger *zap.Logger
}

// New connects a Gateway to the database at dsn.
func New(ctx context.Context, dsn string, logger *zap.Logger) (*Gateway, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewWithDB(pool, logger), nil
}

// NewWithDB wraps an existing connection; used by tests with pgxmock.
func NewWithDB(db DB, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{db: db, logger: logger}
}

// Close releases the connection pool.
func (g *Gateway) Close() error {
	g.db.Close()
	return nil
}

// SaveDraft implements store.Gateway. Source identifiers already present
// are silent no-ops via ON CONFLICT DO NOTHING.
func (g *Gateway) SaveDraft(ctx context.Context, draft models.Draft) error {
	switch d := draft.(type) {
	case *models.JobDraft:
		return g.saveJob(ctx, d)
	case *models.EventDraft:
		return g.saveEvent(ctx, d)
	case *models.PersonDraft:
		return g.savePerson(ctx, d)
	case *models.ArticleDraft:
		return g.saveArticle(ctx, d)
	case *models.CompanyDraft:
		return g.saveCompany(ctx, d)
	case *models.PostDraft:
		return g.savePost(ctx, d)
	default:
		return fmt.Errorf("save draft: unknown draft kind %T", draft)
	}
}

// findOrCreate resolves a foreign key by natural name, inserting the row if
// absent. The DO UPDATE no-op lets RETURNING work on conflict.
func (g *Gateway) findOrCreate(ctx context.Context, table, name string) (int64, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, table)
	var id int64
	if err := g.db.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("find or create %s %q: %w", table, name, err)
	}
	return id, nil
}

func (g *Gateway) saveJob(ctx context.Context, d *models.JobDraft) error {
	var categoryID, employerID *int64
	if d.Category != "" {
		id, err := g.findOrCreate(ctx, "categories", d.Category)
		if err != nil {
			return err
		}
		categoryID = &id
	}
	if d.Company != "" {
		id, err := g.findOrCreate(ctx, "employers", d.Company)
		if err != nil {
			return err
		}
		employerID = &id
	}

	var salaryMin, salaryMax *float64
	var salaryCurrency, salaryPeriod, salaryMode *string
	if d.Salary != nil {
		if d.Salary.Mode != models.SalaryCompetitive {
			salaryMin, salaryMax = &d.Salary.Min, &d.Salary.Max
		}
		currency, period, mode := d.Salary.Currency, string(d.Salary.Period), string(d.Salary.Mode)
		salaryCurrency, salaryPeriod, salaryMode = &currency, &period, &mode
	}

	query := `
		INSERT INTO jobs (
			title, description, company, location, country, state, city,
			job_type, employment_type, category_id, employer_id,
			salary_min, salary_max, salary_currency, salary_period, salary_mode,
			skills, apply_method, apply_url, posted_at, source_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (source_url) DO NOTHING`
	_, err := g.db.Exec(ctx, query,
		d.Title, d.Description, d.Company, d.Location, d.Country, d.State, d.City,
		string(d.JobType), d.EmploymentType, categoryID, employerID,
		salaryMin, salaryMax, salaryCurrency, salaryPeriod, salaryMode,
		d.Skills, d.ApplyMethod, d.ApplyURL, d.PostedAt, d.SourceURL,
	)
	if err != nil {
		return fmt.Errorf("insert job %s: %w", d.SourceURL, err)
	}
	return nil
}

func (g *Gateway) saveEvent(ctx context.Context, d *models.EventDraft) error {
	query := `
		INSERT INTO events (title, description, organizer, location, event_type, starts_at, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source_url) DO NOTHING`
	_, err := g.db.Exec(ctx, query,
		d.Title, d.Description, d.Organizer, d.Location, string(d.EventType), d.StartsAt, d.SourceURL)
	if err != nil {
		return fmt.Errorf("insert event %s: %w", d.SourceURL, err)
	}
	return nil
}

func (g *Gateway) savePerson(ctx context.Context, d *models.PersonDraft) error {
	query := `
		INSERT INTO people (name, headline, location, skills, source_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (source_url) DO NOTHING`
	_, err := g.db.Exec(ctx, query, d.Name, d.Headline, d.Location, d.Skills, d.SourceURL)
	if err != nil {
		return fmt.Errorf("insert person %s: %w", d.SourceURL, err)
	}
	return nil
}

func (g *Gateway) saveArticle(ctx context.Context, d *models.ArticleDraft) error {
	query := `
		INSERT INTO articles (title, body, author, published_at, source_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (source_url) DO NOTHING`
	_, err := g.db.Exec(ctx, query, d.Title, d.Body, d.Author, d.PublishedAt, d.SourceURL)
	if err != nil {
		return fmt.Errorf("insert article %s: %w", d.SourceURL, err)
	}
	return nil
}

func (g *Gateway) saveCompany(ctx context.Context, d *models.CompanyDraft) error {
	query := `
		INSERT INTO companies (name, description, industry, location, size, source_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (source_url) DO NOTHING`
	_, err := g.db.Exec(ctx, query, d.Name, d.Description, d.Industry, d.Location, d.Size, d.SourceURL)
	if err != nil {
		return fmt.Errorf("insert company %s: %w", d.SourceURL, err)
	}
	return nil
}

func (g *Gateway) savePost(ctx context.Context, d *models.PostDraft) error {
	query := `
		INSERT INTO posts (author, body, posted_at, source_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (source_url) DO NOTHING`
	_, err := g.db.Exec(ctx, query, d.Author, d.Body, d.PostedAt, d.SourceURL)
	if err != nil {
		return fmt.Errorf("insert post %s: %w", d.SourceURL, err)
	}
	return nil
}
