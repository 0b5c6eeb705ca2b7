package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/models"
)

var listingColumns = []string{
	"id", "title", "price", "description", "category", "condition",
	"location", "phone", "image_path", "posted_at", "views",
}

// listingRepository is the SQLite-backed implementation of
// [ListingRepository]. Queries are assembled with squirrel; listings are
// insert-only apart from the view counter.
type listingRepository struct {
	logger *logger.Logger
	db     *DB
	sq     sq.StatementBuilderType
}

// NewListingRepository constructs a [ListingRepository] backed by the
// provided database connection and logger.
func NewListingRepository(db *DB, logger *logger.Logger) ListingRepository {
	logger.Debug().Msg("creating listing repository")
	return &listingRepository{
		db:     db,
		logger: logger,
		sq:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// Create inserts a new listing.
func (r *listingRepository) Create(ctx context.Context, listing models.Listing) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sq.
		Insert(listing.TableName()).
		Columns(listingColumns...).
		Values(
			listing.ID, listing.Title, listing.Price, listing.Description,
			string(listing.Category), string(listing.Condition),
			listing.Location, listing.Phone, listing.ImagePath,
			listing.PostedAt, listing.Views,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "listingRepository.Create").Str("listing_id", listing.ID).Msg("failed to insert listing")
		return fmt.Errorf("failed to save listing (id=%s): %w", listing.ID, err)
	}

	return nil
}

// GetAll returns every listing, newest first.
func (r *listingRepository) GetAll(ctx context.Context) ([]models.Listing, error) {
	query, args, err := r.sq.
		Select(listingColumns...).
		From(models.Listing{}.TableName()).
		OrderBy("posted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return listings, nil
}

// GetByID returns a single listing by id.
func (r *listingRepository) GetByID(ctx context.Context, id string) (models.Listing, error) {
	query, args, err := r.sq.
		Select(listingColumns...).
		From(models.Listing{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Listing{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	listing, err := scanListing(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}

	return listing, nil
}

// IncrementViews bumps the view counter of one listing.
func (r *listingRepository) IncrementViews(ctx context.Context, id string) error {
	query, args, err := r.sq.
		Update(models.Listing{}.TableName()).
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrListingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var listing models.Listing
	var category, condition string
	err := row.Scan(
		&listing.ID, &listing.Title, &listing.Price, &listing.Description,
		&category, &condition, &listing.Location, &listing.Phone,
		&listing.ImagePath, &listing.PostedAt, &listing.Views,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, sql.ErrNoRows
	}
	if err != nil {
		return models.Listing{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	listing.Category = models.Category(category)
	listing.Condition = models.Condition(condition)
	return listing, nil
}
