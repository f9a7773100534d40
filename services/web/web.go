package web

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	csrf "github.com/utrack/gin-csrf"
	"github.com/webtor-io/video-collection/services/common"
)

const (
	WebHostFlag = "host"
	WebPortFlag = "port"
	WebCSRFFlag = "csrf"

	sessionName    = "video-collection"
	csrfEnabledKey = "csrf-enabled"
)

type Web struct {
	host string
	port int
	ln   net.Listener
	r    *gin.Engine
}

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   WebHostFlag,
			Usage:  "listening host",
			Value:  "",
			EnvVar: "WEB_HOST",
		},
		cli.IntFlag{
			Name:   WebPortFlag,
			Usage:  "http listening port",
			Value:  8080,
			EnvVar: "WEB_PORT",
		},
		cli.BoolTFlag{
			Name:   WebCSRFFlag,
			Usage:  "protect form posts with csrf tokens",
			EnvVar: "WEB_CSRF",
		},
	)
}

// New installs session (and optionally csrf) middleware on r and returns a
// Servable serving it.
func New(c *cli.Context, r *gin.Engine) (*Web, error) {
	secret := c.String(common.SessionSecretFlag)
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	UseSessions(r, secret)
	if c.BoolT(WebCSRFFlag) {
		UseCSRF(r, secret)
	}
	return &Web{
		host: c.String(WebHostFlag),
		port: c.Int(WebPortFlag),
		r:    r,
	}, nil
}

func UseSessions(r *gin.Engine, secret string) {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
}

func UseCSRF(r *gin.Engine, secret string) {
	r.Use(csrf.Middleware(csrf.Options{
		Secret: secret,
		ErrorFunc: func(c *gin.Context) {
			log.Warn("csrf token mismatch")
			c.String(http.StatusBadRequest, "CSRF token mismatch")
			c.Abort()
		},
	}))
	r.Use(func(c *gin.Context) {
		c.Set(csrfEnabledKey, true)
	})
}

func (s *Web) Serve() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "failed to web listen to tcp connection")
	}
	s.ln = ln
	log.Infof("serving Web at %v", addr)
	return http.Serve(ln, s.r)
}

func (s *Web) Close() {
	log.Info("closing Web")
	defer func() {
		log.Info("Web closed")
	}()
	if s.ln != nil {
		_ = s.ln.Close()
	}
}
