package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	cs "github.com/webtor-io/common-services"
	"github.com/webtor-io/video-collection/models"
	vl "github.com/webtor-io/video-collection/services/video_link"
)

var (
	ErrInvalidLink    = vl.ErrInvalidLink
	ErrDuplicateVideo = models.ErrDuplicateVideo
)

// FieldError reports a missing or oversized form field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %v", e.Field, e.Reason)
}

type AddArgs struct {
	Name  string
	URL   string
	Notes string
}

type Catalog struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Catalog {
	return &Catalog{
		store: store,
		now:   time.Now,
	}
}

// NewFromPG uses Postgres when it is configured and falls back to an
// in-memory store otherwise.
func NewFromPG(pg *cs.PG) *Catalog {
	if pg != nil {
		if db := pg.Get(); db != nil {
			return New(NewPGStore(db))
		}
	}
	log.Warn("DB not initialized, videos are kept in memory")
	return New(NewMemoryStore())
}

// Add validates args, derives the YouTube ID from the link and stores the
// video. Nothing is stored when any step fails.
func (s *Catalog) Add(ctx context.Context, args AddArgs) (*models.Video, error) {
	name := strings.TrimSpace(args.Name)
	link := args.URL
	if name == "" {
		return nil, &FieldError{Field: "name", Reason: "required"}
	}
	if link == "" {
		return nil, &FieldError{Field: "url", Reason: "required"}
	}
	if utf8.RuneCountInString(name) > models.VideoNameMaxLength {
		return nil, &FieldError{Field: "name", Reason: fmt.Sprintf("longer than %d characters", models.VideoNameMaxLength)}
	}
	if utf8.RuneCountInString(link) > models.VideoURLMaxLength {
		return nil, &FieldError{Field: "url", Reason: fmt.Sprintf("longer than %d characters", models.VideoURLMaxLength)}
	}
	id, err := vl.Parse(link)
	if err != nil {
		return nil, err
	}
	v := &models.Video{
		ID:        uuid.NewV4(),
		Name:      name,
		URL:       link,
		Notes:     args.Notes,
		YoutubeID: id,
		CreatedAt: s.now(),
	}
	err = s.store.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"youtube_id": v.YoutubeID,
		"name":       v.Name,
	}).Info("video added")
	return v, nil
}

// Search returns videos whose name contains term, ignoring case, sorted by
// name. A blank term lists the whole catalog.
func (s *Catalog) Search(ctx context.Context, term string) ([]*models.Video, error) {
	list, err := s.store.List(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search videos")
	}
	return list, nil
}

func (s *Catalog) Count(ctx context.Context) (int, error) {
	c, err := s.store.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count videos")
	}
	return c, nil
}
