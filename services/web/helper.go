package web

import (
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	vl "github.com/webtor-io/video-collection/services/video_link"
)

const DefaultAppName = "Video Collection"

// Helper methods are exposed to templates.
type Helper struct {
	appName string
}

func NewHelper(appName string) *Helper {
	if appName == "" {
		appName = DefaultAppName
	}
	return &Helper{appName: appName}
}

func (s *Helper) AppName() string {
	return s.appName
}

// Pluralize renders "1 video", "2 videos" and so on.
func (s *Helper) Pluralize(n int, singular string) string {
	return english.Plural(n, singular, "")
}

func (s *Helper) Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

func (s *Helper) EmbedLink(id string) string {
	return vl.EmbedLink(id)
}

func (s *Helper) Truncate(str string, n int) string {
	if utf8.RuneCountInString(str) <= n {
		return str
	}
	return string([]rune(str)[:n]) + "…"
}
