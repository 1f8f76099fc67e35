package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"altboard/internal/models"
)

// CreateSuggestion inserts a new suggestion after checking the submitter's
// quota. The count and the insert run in one transaction holding an advisory
// lock keyed on the submitter IP, so two racing submissions from the same
// address cannot both pass the quota check.
func (d *DB) CreateSuggestion(ctx context.Context, s *models.Suggestion, limit int, window time.Duration) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, s.SubmitterIP); err != nil {
		return err
	}

	since := time.Now().Add(-window)
	var count int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM suggestions
		WHERE submitter_ip = $1 AND created_at >= $2
	`, s.SubmitterIP, since).Scan(&count)
	if err != nil {
		return err
	}
	if count >= limit {
		return ErrSubmissionLimit
	}

	query := `
		INSERT INTO suggestions (established_platform, alternative_name, url, description, tag, submitter_email, submitter_ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at
	`
	err = tx.QueryRow(ctx, query,
		s.EstablishedPlatform,
		s.AlternativeName,
		s.URL,
		s.Description,
		s.Tag,
		s.SubmitterEmail,
		s.SubmitterIP,
	).Scan(&s.ID, &s.Status, &s.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CountRecentByIP returns the number of suggestions submitted from ip since
// the given time.
func (d *DB) CountRecentByIP(ctx context.Context, ip string, since time.Time) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM suggestions
		WHERE submitter_ip = $1 AND created_at >= $2
	`, ip, since).Scan(&count)
	return count, err
}

// GetSuggestionByID retrieves a single suggestion.
func (d *DB) GetSuggestionByID(ctx context.Context, id uuid.UUID) (*models.Suggestion, error) {
	var s models.Suggestion
	err := d.Pool.QueryRow(ctx, `
		SELECT id, established_platform, alternative_name, url, description, tag,
			submitter_email, submitter_ip, status, reviewed_at, reviewed_by, created_at
		FROM suggestions
		WHERE id = $1
	`, id).Scan(
		&s.ID, &s.EstablishedPlatform, &s.AlternativeName, &s.URL, &s.Description, &s.Tag,
		&s.SubmitterEmail, &s.SubmitterIP, &s.Status, &s.ReviewedAt, &s.ReviewedBy, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSuggestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSuggestions returns suggestions newest first, optionally filtered by
// status. An empty filter or "all" returns everything.
func (d *DB) ListSuggestions(ctx context.Context, status string) ([]models.Suggestion, error) {
	var rows pgx.Rows
	var err error

	if status == "" || status == "all" {
		rows, err = d.Pool.Query(ctx, `
			SELECT id, established_platform, alternative_name, url, description, tag,
				submitter_email, submitter_ip, status, reviewed_at, reviewed_by, created_at
			FROM suggestions
			ORDER BY created_at DESC
		`)
	} else {
		rows, err = d.Pool.Query(ctx, `
			SELECT id, established_platform, alternative_name, url, description, tag,
				submitter_email, submitter_ip, status, reviewed_at, reviewed_by, created_at
			FROM suggestions
			WHERE status = $1
			ORDER BY created_at DESC
		`, status)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []models.Suggestion
	for rows.Next() {
		var s models.Suggestion
		if err := rows.Scan(
			&s.ID, &s.EstablishedPlatform, &s.AlternativeName, &s.URL, &s.Description, &s.Tag,
			&s.SubmitterEmail, &s.SubmitterIP, &s.Status, &s.ReviewedAt, &s.ReviewedBy, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}

// ReviewSuggestion moves a pending suggestion to approved or rejected and
// stamps the reviewer. Suggestions that have already been decided are not
// touched; ErrAlreadyReviewed distinguishes them from unknown ids.
func (d *DB) ReviewSuggestion(ctx context.Context, id uuid.UUID, status string, reviewedBy *string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE suggestions
		SET status = $1, reviewed_at = $2, reviewed_by = $3
		WHERE id = $4 AND status = $5
	`, status, time.Now(), reviewedBy, id, models.StatusPending)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		var current string
		err := d.Pool.QueryRow(ctx, `SELECT status FROM suggestions WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSuggestionNotFound
		}
		if err != nil {
			return err
		}
		return ErrAlreadyReviewed
	}
	return nil
}

// CountByStatus returns the number of suggestions per status.
func (d *DB) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := d.Pool.Query(ctx, `SELECT status, COUNT(*) FROM suggestions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
