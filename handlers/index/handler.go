package index

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webtor-io/video-collection/services/template"
	"github.com/webtor-io/video-collection/services/web"
)

type Handler struct {
	tb *template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context]) {
	h := &Handler{
		tb: tm.MustRegisterViews("index/*").WithLayout("main"),
	}
	r.GET("/", h.index)
}

func (s *Handler) index(c *gin.Context) {
	s.tb.Build("index/home").HTML(http.StatusOK, web.NewContext(c))
}
