package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/video-collection/models"
	"github.com/webtor-io/video-collection/services/catalog"
	vl "github.com/webtor-io/video-collection/services/video_link"
)

type Video struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Notes     string    `json:"notes,omitempty"`
	YoutubeID string    `json:"youtube_id"`
	WatchURL  string    `json:"watch_url"`
	CreatedAt time.Time `json:"created_at"`
}

type ListResponse struct {
	Videos []Video `json:"videos"`
	Count  int     `json:"count"`
}

type Handler struct {
	catalog *catalog.Catalog
}

func RegisterHandler(r *gin.Engine, cat *catalog.Catalog) {
	h := &Handler{
		catalog: cat,
	}
	gr := r.Group("/api")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
	}))
	gr.GET("/videos", h.list)
}

func (s *Handler) list(c *gin.Context) {
	term := strings.TrimSpace(c.Query("search_term"))
	videos, err := s.catalog.Search(c.Request.Context(), term)
	if err != nil {
		log.WithError(err).Error("failed to list videos")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list videos"})
		return
	}
	c.JSON(http.StatusOK, makeListResponse(videos))
}

func makeListResponse(videos []*models.Video) *ListResponse {
	res := &ListResponse{
		Videos: make([]Video, 0, len(videos)),
		Count:  len(videos),
	}
	for _, v := range videos {
		res.Videos = append(res.Videos, Video{
			ID:        v.ID.String(),
			Name:      v.Name,
			URL:       v.URL,
			Notes:     v.Notes,
			YoutubeID: v.YoutubeID,
			WatchURL:  vl.Link(v.YoutubeID),
			CreatedAt: v.CreatedAt,
		})
	}
	return res
}
