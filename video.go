package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize/english"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
	"github.com/webtor-io/video-collection/models"
	"github.com/webtor-io/video-collection/services/catalog"
)

const (
	videoNameFlag   = "name"
	videoURLFlag    = "url"
	videoNotesFlag  = "notes"
	videoSearchFlag = "search"
)

func makeVideoCMD() cli.Command {
	videoCMD := cli.Command{
		Name:    "video",
		Aliases: []string{"v"},
		Usage:   "Video catalog commands",
	}
	configureVideo(&videoCMD)
	return videoCMD
}

func configureVideo(c *cli.Command) {
	addCmd := cli.Command{
		Name:    "add",
		Aliases: []string{"a"},
		Usage:   "Adds video to the catalog",
		Action:  addVideo,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  videoNameFlag,
				Usage: "video name",
			},
			cli.StringFlag{
				Name:  videoURLFlag,
				Usage: "YouTube watch url",
			},
			cli.StringFlag{
				Name:  videoNotesFlag,
				Usage: "optional notes",
			},
		},
	}
	listCmd := cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "Lists videos sorted by name",
		Action:  listVideos,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  videoSearchFlag,
				Usage: "case-insensitive name filter",
			},
		},
	}
	c.Subcommands = []cli.Command{addCmd, listCmd}
	for k := range c.Subcommands {
		c.Subcommands[k].Flags = cs.RegisterPGFlags(c.Subcommands[k].Flags)
	}
}

func withCatalog(c *cli.Context, fn func(cat *catalog.Catalog) error) error {
	// Setting DB
	pg := cs.NewPG(c)
	defer pg.Close()

	// Setting Migrations
	err := runPGMigrations(pg, "up")
	if err != nil {
		return err
	}

	db := pg.Get()
	if db == nil {
		return errors.New("db not initialized")
	}

	return fn(catalog.New(catalog.NewPGStore(db)))
}

func addVideo(c *cli.Context) error {
	return withCatalog(c, func(cat *catalog.Catalog) error {
		v, err := cat.Add(context.Background(), catalog.AddArgs{
			Name:  c.String(videoNameFlag),
			URL:   c.String(videoURLFlag),
			Notes: c.String(videoNotesFlag),
		})
		if errors.Is(err, catalog.ErrDuplicateVideo) {
			log.WithError(err).Warn("video already in catalog")
			return err
		}
		if err != nil {
			return errors.Wrap(err, "failed to add video")
		}
		_, err = fmt.Fprintln(os.Stdout, v.String())
		return err
	})
}

func listVideos(c *cli.Context) error {
	return withCatalog(c, func(cat *catalog.Catalog) error {
		videos, err := cat.Search(context.Background(), c.String(videoSearchFlag))
		if err != nil {
			return err
		}
		return printVideos(os.Stdout, videos)
	})
}

func printVideos(out io.Writer, videos []*models.Video) error {
	if len(videos) == 0 {
		_, err := fmt.Fprintln(out, "No videos")
		return err
	}
	if _, err := fmt.Fprintln(out, english.Plural(len(videos), "video", "")); err != nil {
		return err
	}
	for _, v := range videos {
		if _, err := fmt.Fprintf(out, "%v\t%v\t%v\n", v.YoutubeID, v.Name, v.URL); err != nil {
			return err
		}
	}
	return nil
}
