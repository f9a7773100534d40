package main

import (
	"github.com/urfave/cli"
)

func configure(app *cli.App) {
	serveCMD := makeServeCMD()
	migrationCMD := makePGMigrationCMD()
	videoCMD := makeVideoCMD()
	app.Commands = []cli.Command{serveCMD, migrationCMD, videoCMD}
}
