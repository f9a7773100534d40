package common

import (
	"github.com/urfave/cli"
)

var (
	AppNameFlag       = "app-name"
	SessionSecretFlag = "secret"
	TemplatesDirFlag  = "templates-dir"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	f = append(f,
		cli.StringFlag{
			Name:   AppNameFlag,
			Usage:  "application name shown in page titles",
			Value:  "Video Collection",
			EnvVar: "APP_NAME",
		},
		cli.StringFlag{
			Name:   SessionSecretFlag,
			Usage:  "session secret",
			Value:  "secret123",
			EnvVar: "SESSION_SECRET",
		},
		cli.StringFlag{
			Name:   TemplatesDirFlag,
			Usage:  "templates directory",
			Value:  "templates",
			EnvVar: "TEMPLATES_DIR",
		},
	)

	return f
}
