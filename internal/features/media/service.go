package media

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/xyz-asif/filmdeck/internal/features/queries"
	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
	"github.com/xyz-asif/filmdeck/internal/pkg/omdb"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

// LatestQueriesCount is how many records the latest-queries endpoint returns.
const LatestQueriesCount = 5

// Catalog outcomes as reported to the Observer.
const (
	OutcomeOK             = "ok"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
)

var (
	ErrMediaIDRequired  = apperrors.New(apperrors.ErrValidation, "Media id is required.")
	ErrTitleRequired    = apperrors.New(apperrors.ErrValidation, "Title is required.")
	ErrQueryRequired    = apperrors.New(apperrors.ErrValidation, "Query is required.")
	ErrCategoryRequired = apperrors.New(apperrors.ErrValidation, "Category is required.")
	ErrInvalidYear      = apperrors.New(apperrors.ErrValidation, "Year must be four digits.")
	ErrInvalidMediaType = apperrors.New(apperrors.ErrValidation, "Media type must be movie, series or episode.")
)

var yearRegex = regexp.MustCompile(`^\d{4}$`)

var mediaTypes = map[string]bool{
	"movie":   true,
	"series":  true,
	"episode": true,
}

// Catalog is the upstream lookup surface. *omdb.Client implements it.
type Catalog interface {
	ByID(ctx context.Context, id string) (*omdb.Result, error)
	ByTitle(ctx context.Context, title, year string) (*omdb.Result, error)
	BySearch(ctx context.Context, query string, page int) (*omdb.Result, error)
	ByTypeAndCategory(ctx context.Context, mediaType, category string, page int) (*omdb.Result, error)
}

// QueryLog is the part of queries.Log the media service uses.
type QueryLog interface {
	Record(ctx context.Context, query string)
	RecentN(ctx context.Context, n int) ([]queries.Record, error)
}

// Observer counts catalog calls by operation and outcome.
type Observer interface {
	ObserveCatalog(operation, outcome string)
}

type Service struct {
	catalog Catalog
	queries QueryLog
	obs     Observer
	log     *logger.Logger
}

// NewService wires the media orchestrator. obs may be nil.
func NewService(catalog Catalog, queries QueryLog, obs Observer, log *logger.Logger) *Service {
	return &Service{
		catalog: catalog,
		queries: queries,
		obs:     obs,
		log:     log.With("component", "media"),
	}
}

func (s *Service) ByID(ctx context.Context, id string) (*omdb.Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMediaIDRequired
	}
	res, err := s.catalog.ByID(ctx, id)
	return s.observe(ctx, "by_id", res, err)
}

// ByTitle records the title before calling upstream, so the record exists
// even when the lookup fails.
func (s *Service) ByTitle(ctx context.Context, title, year string) (*omdb.Result, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	year = strings.TrimSpace(year)
	if year != "" && !yearRegex.MatchString(year) {
		return nil, ErrInvalidYear
	}

	s.queries.Record(ctx, title)
	res, err := s.catalog.ByTitle(ctx, title, year)
	return s.observe(ctx, "by_title", res, err)
}

// BySearch records the query before calling upstream.
func (s *Service) BySearch(ctx context.Context, query string, page int) (*omdb.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	s.queries.Record(ctx, query)
	res, err := s.catalog.BySearch(ctx, query, page)
	return s.observe(ctx, "search", res, err)
}

func (s *Service) ByTypeAndCategory(ctx context.Context, mediaType, category string, page int) (*omdb.Result, error) {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if !mediaTypes[mediaType] {
		return nil, ErrInvalidMediaType
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrCategoryRequired
	}

	res, err := s.catalog.ByTypeAndCategory(ctx, mediaType, category, page)
	return s.observe(ctx, "list", res, err)
}

// LatestQueries returns the newest recorded queries.
func (s *Service) LatestQueries(ctx context.Context) ([]queries.Record, error) {
	return s.queries.RecentN(ctx, LatestQueriesCount)
}

func (s *Service) observe(ctx context.Context, op string, res *omdb.Result, err error) (*omdb.Result, error) {
	outcome := OutcomeOK
	switch {
	case errors.Is(err, apperrors.ErrTransport):
		outcome = OutcomeTransportError
		s.log.WarnContext(ctx, "catalog unreachable", "operation", op, "error", err)
	case err != nil:
		outcome = OutcomeTransportError
		s.log.WarnContext(ctx, "catalog request failed", "operation", op, "error", err)
	case !res.OK():
		outcome = OutcomeUpstreamError
		s.log.InfoContext(ctx, "catalog returned an error status", "operation", op, "status", res.StatusCode)
	}
	if s.obs != nil {
		s.obs.ObserveCatalog(op, outcome)
	}
	return res, err
}
