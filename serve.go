package main

import (
	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
	wapi "github.com/webtor-io/video-collection/handlers/api"
	wi "github.com/webtor-io/video-collection/handlers/index"
	wv "github.com/webtor-io/video-collection/handlers/video"
	"github.com/webtor-io/video-collection/services/catalog"
	"github.com/webtor-io/video-collection/services/common"
	"github.com/webtor-io/video-collection/services/template"
	w "github.com/webtor-io/video-collection/services/web"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterPGFlags(c.Flags)
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = common.RegisterFlags(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting DB
	pg := cs.NewPG(c)
	defer pg.Close()

	// Setting Migrations
	err := runPGMigrations(pg, "up")
	if err != nil {
		return err
	}

	// Setting Catalog
	cat := catalog.NewFromPG(pg)

	// Setting template renderer
	re := multitemplate.NewRenderer()

	// Setting TemplateManager
	tm := template.NewManager[*w.Context](re, c.String(common.TemplatesDirFlag)).
		WithHelper(w.NewHelper(c.String(common.AppNameFlag)))

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.HTMLRender = re

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	servers = append(servers, web)
	defer web.Close()

	// Setting IndexHandler
	wi.RegisterHandler(r, tm)

	// Setting VideoHandler
	wv.RegisterHandler(r, tm, cat)

	// Setting ApiHandler
	wapi.RegisterHandler(r, cat)

	// Render templates
	err = tm.Init()
	if err != nil {
		return err
	}

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
