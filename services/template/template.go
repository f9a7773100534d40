package template

import (
	"html/template"
	"path/filepath"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/yargevad/filepathx"
)

type Context interface {
	GetGinContext() *gin.Context
}

// Manager collects views registered by handlers and renders them into
// a multitemplate renderer on Init.
type Manager[T Context] struct {
	re       multitemplate.Renderer
	dir      string
	funcs    template.FuncMap
	builders []*Builder[T]
}

func NewManager[T Context](re multitemplate.Renderer, dir string) *Manager[T] {
	return &Manager[T]{
		re:    re,
		dir:   dir,
		funcs: template.FuncMap{},
	}
}

// WithHelper exposes every exported method of h to templates under its
// lowerCamel name.
func (s *Manager[T]) WithHelper(h any) *Manager[T] {
	v := reflect.ValueOf(h)
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		s.funcs[lowerFirst(t.Method(i).Name)] = v.Method(i).Interface()
	}
	return s
}

func (s *Manager[T]) MustRegisterViews(pattern string) *Builder[T] {
	b := &Builder[T]{
		pattern: pattern,
	}
	s.builders = append(s.builders, b)
	return b
}

func (s *Manager[T]) Init() error {
	partials, err := filepathx.Glob(filepath.Join(s.dir, "partials", "**", "*.html"))
	if err != nil {
		return errors.Wrap(err, "failed to glob partials")
	}
	viewsDir := filepath.Join(s.dir, "views")
	for _, b := range s.builders {
		views, err := filepathx.Glob(filepath.Join(viewsDir, b.pattern+".html"))
		if err != nil {
			return errors.Wrapf(err, "failed to glob views %v", b.pattern)
		}
		if len(views) == 0 {
			return errors.Errorf("no views found for %v", b.pattern)
		}
		for _, v := range views {
			rel, err := filepath.Rel(viewsDir, v)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.ToSlash(rel), ".html")
			var files []string
			if b.layout != "" {
				files = append(files, filepath.Join(s.dir, "layouts", b.layout+".html"))
			}
			files = append(files, partials...)
			files = append(files, v)
			s.re.AddFromFilesFuncs(name, s.funcs, files...)
			log.Debugf("registered view %v", name)
		}
	}
	return nil
}

type Builder[T Context] struct {
	pattern string
	layout  string
}

func (s *Builder[T]) WithLayout(name string) *Builder[T] {
	s.layout = name
	return s
}

func (s *Builder[T]) Build(name string) *View[T] {
	return &View[T]{name: name}
}

type View[T Context] struct {
	name string
}

func (s *View[T]) HTML(code int, ctx T) {
	ctx.GetGinContext().HTML(code, s.name, ctx)
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
