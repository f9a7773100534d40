package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	"github.com/webtor-io/video-collection/models"
	"golang.org/x/text/cases"
)

// Store persists videos. Create must be atomic and must report a clash on
// the YouTube ID as models.ErrDuplicateVideo.
type Store interface {
	Create(ctx context.Context, v *models.Video) error
	List(ctx context.Context, term string) ([]*models.Video, error)
	Count(ctx context.Context) (int, error)
}

type pgStore struct {
	db *pg.DB
}

func NewPGStore(db *pg.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Create(ctx context.Context, v *models.Video) error {
	return models.CreateVideo(ctx, s.db, v)
}

func (s *pgStore) List(ctx context.Context, term string) ([]*models.Video, error) {
	return models.GetVideoList(ctx, s.db, term)
}

func (s *pgStore) Count(ctx context.Context) (int, error) {
	return models.CountVideos(ctx, s.db)
}

type memoryStore struct {
	mux    sync.RWMutex
	videos []*models.Video
	ids    map[string]struct{}
}

func NewMemoryStore() Store {
	return &memoryStore{
		ids: map[string]struct{}{},
	}
}

func (s *memoryStore) Create(_ context.Context, v *models.Video) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.ids[v.YoutubeID]; ok {
		return errors.Wrapf(models.ErrDuplicateVideo, "youtube_id %v", v.YoutubeID)
	}
	cp := *v
	s.videos = append(s.videos, &cp)
	s.ids[v.YoutubeID] = struct{}{}
	return nil
}

func (s *memoryStore) List(_ context.Context, term string) ([]*models.Video, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	list := make([]*models.Video, 0, len(s.videos))
	for _, v := range s.videos {
		cp := *v
		list = append(list, &cp)
	}
	return Search(list, term), nil
}

func (s *memoryStore) Count(_ context.Context) (int, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.videos), nil
}

// Search filters videos to those whose name contains term regardless of case
// and orders them by case-folded name. Videos with equal names keep their
// relative order.
func Search(videos []*models.Video, term string) []*models.Video {
	fold := cases.Fold()
	needle := fold.String(term)
	res := make([]*models.Video, 0, len(videos))
	keys := make(map[*models.Video]string, len(videos))
	for _, v := range videos {
		key := fold.String(v.Name)
		if !strings.Contains(key, needle) {
			continue
		}
		keys[v] = key
		res = append(res, v)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return keys[res[i]] < keys[res[j]]
	})
	return res
}
