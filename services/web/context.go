package web

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	csrf "github.com/utrack/gin-csrf"
)

type MessageLevel string

const (
	LevelSuccess MessageLevel = "success"
	LevelWarning MessageLevel = "warning"
)

var flashLevels = []MessageLevel{LevelSuccess, LevelWarning}

type Message struct {
	Level MessageLevel
	Text  string
}

// Context is passed to every rendered view.
type Context struct {
	Data     any
	CSRF     string
	Messages []Message
	Path     string

	c *gin.Context
}

func NewContext(c *gin.Context) *Context {
	ctx := &Context{
		c:        c,
		Path:     c.Request.URL.Path,
		Messages: popFlashes(c),
	}
	if c.GetBool(csrfEnabledKey) {
		ctx.CSRF = csrf.GetToken(c)
	}
	return ctx
}

func (s *Context) WithData(obj any) *Context {
	s.Data = obj
	return s
}

func (s *Context) WithWarning(texts ...string) *Context {
	for _, t := range texts {
		s.Messages = append(s.Messages, Message{Level: LevelWarning, Text: t})
	}
	return s
}

func (s *Context) GetGinContext() *gin.Context {
	return s.c
}

func hasSession(c *gin.Context) bool {
	_, ok := c.Get(sessions.DefaultKey)
	return ok
}

// Flash stores a message for the next rendered page.
func Flash(c *gin.Context, level MessageLevel, text string) {
	if !hasSession(c) {
		return
	}
	session := sessions.Default(c)
	session.AddFlash(text, string(level))
	if err := session.Save(); err != nil {
		log.WithError(err).Warn("failed to save flash message")
	}
}

func popFlashes(c *gin.Context) []Message {
	if !hasSession(c) {
		return nil
	}
	session := sessions.Default(c)
	var msgs []Message
	for _, l := range flashLevels {
		for _, f := range session.Flashes(string(l)) {
			msgs = append(msgs, Message{Level: l, Text: fmt.Sprint(f)})
		}
	}
	if len(msgs) > 0 {
		if err := session.Save(); err != nil {
			log.WithError(err).Warn("failed to save session")
		}
	}
	return msgs
}

func RedirectWithSuccessAndMessage(c *gin.Context, path string, msg string) {
	Flash(c, LevelSuccess, msg)
	c.Redirect(http.StatusFound, path)
}
