package video

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/video-collection/models"
	"github.com/webtor-io/video-collection/services/web"
)

type ListArgs struct {
	SearchTerm string `form:"search_term"`
}

type ListData struct {
	Args   *ListArgs
	Videos []*models.Video
}

func (s *Handler) bindListArgs(c *gin.Context) *ListArgs {
	args := &ListArgs{}
	_ = c.ShouldBindQuery(args)
	args.SearchTerm = strings.TrimSpace(args.SearchTerm)
	return args
}

func (s *Handler) list(c *gin.Context) {
	args := s.bindListArgs(c)
	videos, err := s.catalog.Search(c.Request.Context(), args.SearchTerm)
	if err != nil {
		log.WithError(err).Error("failed to list videos")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	s.tb.Build("video/list").HTML(http.StatusOK, web.NewContext(c).WithData(&ListData{
		Args:   args,
		Videos: videos,
	}))
}
