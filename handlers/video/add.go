package video

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/video-collection/services/catalog"
	"github.com/webtor-io/video-collection/services/web"
)

type AddForm struct {
	Name  string `form:"name" binding:"required,max=200"`
	URL   string `form:"url" binding:"required,max=400"`
	Notes string `form:"notes"`
}

type AddData struct {
	Form *AddForm
}

func (s *Handler) addForm(c *gin.Context) {
	s.renderAdd(c, &AddForm{})
}

func (s *Handler) add(c *gin.Context) {
	form := &AddForm{}
	if err := c.ShouldBind(form); err != nil {
		log.WithError(err).Debug("failed to bind video form")
		s.renderAdd(c, form, CheckDataMessage)
		return
	}
	v, err := s.catalog.Add(c.Request.Context(), catalog.AddArgs{
		Name:  form.Name,
		URL:   form.URL,
		Notes: form.Notes,
	})
	if err == nil {
		log.WithField("video", v.String()).Debug("video stored")
		web.RedirectWithSuccessAndMessage(c, "/videos", VideoAddedMessage)
		return
	}
	var fe *catalog.FieldError
	switch {
	case errors.Is(err, catalog.ErrInvalidLink):
		log.WithError(err).WithField("url", form.URL).Info("rejected video link")
		s.renderAdd(c, form, InvalidLinkMessage, CheckDataMessage)
	case errors.Is(err, catalog.ErrDuplicateVideo):
		log.WithError(err).Info("rejected duplicate video")
		s.renderAdd(c, form, DuplicateVideoMessage, CheckDataMessage)
	case errors.As(err, &fe):
		s.renderAdd(c, form, CheckDataMessage)
	default:
		log.WithError(err).Error("failed to add video")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
	}
}

func (s *Handler) renderAdd(c *gin.Context, form *AddForm, warnings ...string) {
	s.tb.Build("video/add").HTML(http.StatusOK, web.NewContext(c).
		WithWarning(warnings...).
		WithData(&AddData{Form: form}))
}
