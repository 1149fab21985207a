package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
	_ "modernc.org/sqlite" // Local SQLite driver
)

type SQLiteRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

type Option func(r *SQLiteRepository)

// WithLogger sets the logger used to report unreadable stored data.
func WithLogger(logger *slog.Logger) Option {
	return func(r *SQLiteRepository) {
		r.logger = logger
	}
}

func NewSQLiteRepository(dbURL string, opts ...Option) (*SQLiteRepository, error) {
	driverName := "sqlite"
	if strings.Contains(dbURL, "libsql://") || strings.Contains(dbURL, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	r := &SQLiteRepository{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases the underlying connection pool.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS hubs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slug TEXT NOT NULL UNIQUE,
		owner_id TEXT NOT NULL,
		title TEXT,
		theme JSON,
		total_views INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_hubs_owner ON hubs(owner_id);

	CREATE TABLE IF NOT EXISTS links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hub_id INTEGER NOT NULL,
		original_url TEXT NOT NULL,
		title TEXT NOT NULL,
		priority REAL DEFAULT 0,
		is_active INTEGER DEFAULT 1,
		rules JSON,
		clicks INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(hub_id) REFERENCES hubs(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_links_hub_id ON links(hub_id);

	CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		link_id INTEGER NOT NULL,
		referer TEXT,
		user_agent TEXT,
		device TEXT,
		ip_hash TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(link_id) REFERENCES links(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_visits_link_id ON visits(link_id);
	`
	_, err := db.Exec(query)
	return err
}

// isUniqueViolation matches the constraint error text of both drivers.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// --- Hub Repository Implementation ---

const hubColumns = `id, slug, owner_id, title, theme, total_views, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanHub(row rowScanner) (*domain.Hub, error) {
	var h domain.Hub
	var themeJSON []byte
	if err := row.Scan(&h.ID, &h.Slug, &h.OwnerID, &h.Title, &themeJSON, &h.TotalViews, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	_ = json.Unmarshal(themeJSON, &h.Theme)
	return &h, nil
}

func (r *SQLiteRepository) CreateHub(ctx context.Context, hub *domain.Hub) error {
	return insertHub(ctx, r.db, hub)
}

func insertHub(ctx context.Context, ex execer, hub *domain.Hub) error {
	query := `INSERT INTO hubs (slug, owner_id, title, theme, total_views, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	themeJSON, err := json.Marshal(hub.Theme)
	if err != nil {
		return err
	}

	res, err := ex.ExecContext(ctx, query, hub.Slug, hub.OwnerID, hub.Title, themeJSON, hub.TotalViews, hub.CreatedAt, hub.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrSlugTaken
	}
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	hub.ID = id
	return nil
}

func (r *SQLiteRepository) GetHub(ctx context.Context, id int64) (*domain.Hub, error) {
	h, err := scanHub(r.db.QueryRowContext(ctx, `SELECT `+hubColumns+` FROM hubs WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return h, err
}

func (r *SQLiteRepository) GetHubBySlug(ctx context.Context, slug string) (*domain.Hub, error) {
	h, err := scanHub(r.db.QueryRowContext(ctx, `SELECT `+hubColumns+` FROM hubs WHERE slug = ?`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return h, err
}

func (r *SQLiteRepository) UpdateHub(ctx context.Context, hub *domain.Hub) error {
	query := `UPDATE hubs SET slug = ?, title = ?, theme = ?, updated_at = ? WHERE id = ?`

	themeJSON, err := json.Marshal(hub.Theme)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, hub.Slug, hub.Title, themeJSON, hub.UpdatedAt, hub.ID)
	if isUniqueViolation(err) {
		return domain.ErrSlugTaken
	}
	return err
}

// DeleteHub removes the hub with its links and their visits.
// Cascades are done explicitly since SQLite foreign keys are off by default.
func (r *SQLiteRepository) DeleteHub(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM visits WHERE link_id IN (SELECT id FROM links WHERE hub_id = ?)`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE hub_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM hubs WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) ListHubsByOwner(ctx context.Context, ownerID string) ([]domain.Hub, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+hubColumns+` FROM hubs WHERE owner_id = ? ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hubs := []domain.Hub{}
	for rows.Next() {
		h, err := scanHub(rows)
		if err != nil {
			return nil, err
		}
		hubs = append(hubs, *h)
	}
	return hubs, rows.Err()
}

func (r *SQLiteRepository) IncrementHubViews(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE hubs SET total_views = total_views + 1 WHERE id = ?`, id)
	return err
}

// --- Link Repository Implementation ---

const linkColumns = `id, hub_id, original_url, title, priority, is_active, rules, clicks, created_at, updated_at`

// scanLink reads one link row. A link whose stored rules cannot be decoded
// is returned inactive with no rules and a warning is logged.
func (r *SQLiteRepository) scanLink(row rowScanner) (*domain.Link, error) {
	var l domain.Link
	var rulesJSON []byte
	if err := row.Scan(&l.ID, &l.HubID, &l.OriginalURL, &l.Title, &l.Priority, &l.Active, &rulesJSON, &l.Clicks, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if len(rulesJSON) > 0 {
		if err := json.Unmarshal(rulesJSON, &l.Rules); err != nil {
			r.logger.Warn("unreadable link rules, link disabled", "link_id", l.ID, "hub_id", l.HubID, "error", err)
			l.Rules = nil
			l.Active = false
		}
	}
	if l.Rules == nil {
		l.Rules = []domain.Rule{}
	}
	return &l, nil
}

func marshalRules(rules []domain.Rule) ([]byte, error) {
	if rules == nil {
		rules = []domain.Rule{}
	}
	return json.Marshal(rules)
}

func (r *SQLiteRepository) CreateLink(ctx context.Context, link *domain.Link) error {
	return insertLink(ctx, r.db, link)
}

func insertLink(ctx context.Context, ex execer, link *domain.Link) error {
	query := `INSERT INTO links (hub_id, original_url, title, priority, is_active, rules, clicks, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	rulesJSON, err := marshalRules(link.Rules)
	if err != nil {
		return err
	}

	res, err := ex.ExecContext(ctx, query, link.HubID, link.OriginalURL, link.Title, link.Priority, link.Active, rulesJSON, link.Clicks, link.CreatedAt, link.UpdatedAt)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	link.ID = id
	return nil
}

func (r *SQLiteRepository) GetLink(ctx context.Context, id int64) (*domain.Link, error) {
	l, err := r.scanLink(r.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return l, err
}

// UpdateLink writes the editable fields. Clicks are owned by RecordVisit.
func (r *SQLiteRepository) UpdateLink(ctx context.Context, link *domain.Link) error {
	query := `UPDATE links SET original_url = ?, title = ?, priority = ?, is_active = ?, rules = ?, updated_at = ? WHERE id = ?`

	rulesJSON, err := marshalRules(link.Rules)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, link.OriginalURL, link.Title, link.Priority, link.Active, rulesJSON, link.UpdatedAt, link.ID)
	return err
}

func (r *SQLiteRepository) DeleteLink(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM visits WHERE link_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// ListLinksByHub returns a hub's links in creation order, which is the
// order resolution falls back to for equal scores.
func (r *SQLiteRepository) ListLinksByHub(ctx context.Context, hubID int64) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+linkColumns+` FROM links WHERE hub_id = ? ORDER BY id ASC`, hubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.Link{}
	for rows.Next() {
		l, err := r.scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *l)
	}
	return links, rows.Err()
}

func (r *SQLiteRepository) RecordVisit(ctx context.Context, visit *domain.Visit) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Insert Visit Record
	queryVisit := `INSERT INTO visits (link_id, referer, user_agent, device, ip_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, queryVisit, visit.LinkID, visit.Referer, visit.UserAgent, string(visit.Device), visit.IPHash, visit.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return err
	}

	// 2. Increment Link Clicks Counter (Atomic)
	queryCount := `UPDATE links SET clicks = clicks + 1 WHERE id = ?`
	if _, err = tx.ExecContext(ctx, queryCount, visit.LinkID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		visit.ID = id
	}
	return nil
}

func (r *SQLiteRepository) GetLinkStats(ctx context.Context, linkID int64) (*domain.LinkStats, error) {
	stats := &domain.LinkStats{
		Referrers:   make(map[string]int64),
		Devices:     make(map[string]int64),
		DailyClicks: []domain.DailyClick{},
	}

	// Total Clicks
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits WHERE link_id = ?`, linkID).Scan(&stats.TotalClicks)
	if err != nil {
		return nil, err
	}

	// Referrers
	if err := r.countBy(ctx, `SELECT COALESCE(referer, ''), COUNT(*) as c FROM visits WHERE link_id = ? GROUP BY referer ORDER BY c DESC LIMIT 10`, linkID, stats.Referrers, "Direct"); err != nil {
		return nil, err
	}

	// Devices
	if err := r.countBy(ctx, `SELECT COALESCE(device, ''), COUNT(*) FROM visits WHERE link_id = ? GROUP BY device`, linkID, stats.Devices, string(domain.DeviceDesktop)); err != nil {
		return nil, err
	}

	// Daily Clicks (Last 30 days)
	rows, err := r.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m-%d', created_at) as date, COUNT(*)
		FROM visits
		WHERE link_id = ?
		GROUP BY date
		ORDER BY date DESC
		LIMIT 30`, linkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var dc domain.DailyClick
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		stats.DailyClicks = append(stats.DailyClicks, dc)
	}

	return stats, rows.Err()
}

// countBy fills dst from a two-column (key, count) query. Empty keys become fallback.
func (r *SQLiteRepository) countBy(ctx context.Context, query string, linkID int64, dst map[string]int64, fallback string) error {
	rows, err := r.db.QueryContext(ctx, query, linkID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		if key == "" {
			key = fallback
		}
		dst[key] += count
	}
	return rows.Err()
}

// --- Migration Helpers ---

// Dump returns every hub with its links, for export.
func (r *SQLiteRepository) Dump(ctx context.Context) ([]domain.Hub, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+hubColumns+` FROM hubs ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}

	hubs := []domain.Hub{}
	for rows.Next() {
		h, err := scanHub(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		hubs = append(hubs, *h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range hubs {
		links, err := r.ListLinksByHub(ctx, hubs[i].ID)
		if err != nil {
			return nil, err
		}
		hubs[i].Links = links
	}
	return hubs, nil
}

// Restore inserts a hub and its links under fresh IDs, keeping click counts.
// The slug is normalized and every link's rules are validated before
// anything is written; the hub and its links commit together or not at all.
func (r *SQLiteRepository) Restore(ctx context.Context, hub domain.Hub) (*domain.Hub, error) {
	hub.Slug = domain.NormalizeSlug(hub.Slug)
	if hub.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", domain.ErrInvalidInput)
	}
	for _, l := range hub.Links {
		if err := domain.ValidateRules(l.Rules); err != nil {
			return nil, fmt.Errorf("hub %s link %q: %w", hub.Slug, l.Title, err)
		}
	}

	now := time.Now()
	if hub.CreatedAt.IsZero() {
		hub.CreatedAt = now
	}
	if hub.UpdatedAt.IsZero() {
		hub.UpdatedAt = now
	}
	links := hub.Links
	hub.Links = nil

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := insertHub(ctx, tx, &hub); err != nil {
		return nil, fmt.Errorf("hub %s: %w", hub.Slug, err)
	}
	for _, l := range links {
		l.HubID = hub.ID
		if l.CreatedAt.IsZero() {
			l.CreatedAt = now
		}
		if l.UpdatedAt.IsZero() {
			l.UpdatedAt = now
		}
		if err := insertLink(ctx, tx, &l); err != nil {
			return nil, fmt.Errorf("hub %s link %q: %w", hub.Slug, l.Title, err)
		}
		hub.Links = append(hub.Links, l)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &hub, nil
}

// Ensure interface compliance
var _ ports.Repository = (*SQLiteRepository)(nil)
