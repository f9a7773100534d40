package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

const (
	VideoNameMaxLength      = 200
	VideoURLMaxLength       = 400
	videoNotesPreviewLength = 200
	uniqueViolationCode     = "23505"
)

var ErrDuplicateVideo = errors.New("video already added")

type Video struct {
	tableName struct{} `pg:"video"`

	ID        uuid.UUID `pg:"video_id,pk,type:uuid"`
	Name      string    `pg:"name,notnull"`
	URL       string    `pg:"url,notnull"`
	Notes     string    `pg:"notes"`
	YoutubeID string    `pg:"youtube_id,notnull,unique"`
	CreatedAt time.Time `pg:"created_at,notnull"`
}

func (v *Video) String() string {
	notes := v.Notes
	if notes == "" {
		notes = "No notes"
	} else if r := []rune(notes); len(r) > videoNotesPreviewLength {
		notes = string(r[:videoNotesPreviewLength])
	}
	return fmt.Sprintf("ID: %v, Name: %v, URL: %v, Notes: %v", v.ID, v.Name, v.URL, notes)
}

// CreateVideo inserts v. A clash on youtube_id is reported as ErrDuplicateVideo.
func CreateVideo(ctx context.Context, db *pg.DB, v *Video) error {
	_, err := db.Model(v).
		Context(ctx).
		Insert()
	if isUniqueViolation(err) {
		return errors.Wrapf(ErrDuplicateVideo, "youtube_id %v", v.YoutubeID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to insert video")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolationCode
	}
	return false
}

// GetVideoList returns videos whose name contains term, case-insensitively,
// ordered by lowercased name. An empty term matches everything.
func GetVideoList(ctx context.Context, db *pg.DB, term string) ([]*Video, error) {
	var list []*Video

	query := db.Model(&list).
		Context(ctx)

	if term != "" {
		query.Where("name ILIKE ?", "%"+escapeLike(term)+"%")
	}

	err := query.
		OrderExpr("lower(name) ASC").
		OrderExpr("created_at ASC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch video list")
	}

	return list, nil
}

func GetVideoByYoutubeID(ctx context.Context, db *pg.DB, id string) (*Video, error) {
	v := new(Video)
	err := db.Model(v).
		Context(ctx).
		Where("youtube_id = ?", id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch video")
	}
	return v, nil
}

func CountVideos(ctx context.Context, db *pg.DB) (int, error) {
	return db.Model((*Video)(nil)).
		Context(ctx).
		Count()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
