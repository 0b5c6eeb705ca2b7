package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/store"
	"github.com/esawctha/esawctha/models"
)

// listingService implements [ListingService]. Listings are created and read;
// no update or delete operation exists.
type listingService struct {
	listings    store.ListingRepository
	logger      *logger.Logger
	submitDelay time.Duration
}

// NewListingService constructs a [ListingService].
func NewListingService(storages *store.Storages, submitDelay time.Duration, logger *logger.Logger) ListingService {
	return &listingService{
		listings:    storages.ListingRepository,
		logger:      logger,
		submitDelay: submitDelay,
	}
}

// Create assigns the identifier and posting timestamp, then persists the
// listing. Title and a non-negative price are required.
func (s *listingService) Create(ctx context.Context, listing models.Listing) (models.Listing, error) {
	if strings.TrimSpace(listing.Title) == "" || listing.Price < 0 {
		return models.Listing{}, ErrInvalidListing
	}

	sleep(ctx, s.submitDelay)

	listing.ID = uuid.NewString()
	listing.PostedAt = time.Now()
	listing.Views = 0

	if err := s.listings.Create(ctx, listing); err != nil {
		return models.Listing{}, fmt.Errorf("create listing: %w", err)
	}

	s.logger.Debug().Str("listing_id", listing.ID).Str("category", string(listing.Category)).Msg("listing created")
	return listing, nil
}

// All returns every listing, newest first.
func (s *listingService) All(ctx context.Context) ([]models.Listing, error) {
	return s.listings.GetAll(ctx)
}

// Open returns one listing and bumps its view counter. A failed counter
// update does not hide the listing from the caller.
func (s *listingService) Open(ctx context.Context, id string) (models.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return models.Listing{}, err
	}

	if err := s.listings.IncrementViews(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("listing_id", id).Msg("failed to count view")
	} else {
		listing.Views++
	}

	return listing, nil
}
