package video

import (
	"github.com/gin-gonic/gin"
	"github.com/webtor-io/video-collection/services/catalog"
	"github.com/webtor-io/video-collection/services/template"
	"github.com/webtor-io/video-collection/services/web"
)

const (
	CheckDataMessage      = "Check the data entered"
	InvalidLinkMessage    = "Invalid YouTube URL"
	DuplicateVideoMessage = "You already added that video"
	VideoAddedMessage     = "Video added"
)

type Handler struct {
	tb      *template.Builder[*web.Context]
	catalog *catalog.Catalog
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], cat *catalog.Catalog) {
	h := &Handler{
		tb:      tm.MustRegisterViews("video/*").WithLayout("main"),
		catalog: cat,
	}
	r.GET("/add", h.addForm)
	r.POST("/add", h.add)
	r.GET("/videos", h.list)
}
