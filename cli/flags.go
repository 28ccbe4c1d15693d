package main

import "github.com/urfave/cli/v2"

const (
	flagFile     = "file"
	flagInsecure = "insecure"
	flagName     = "name"
	flagOutput   = "output"
	flagPath     = "path"
	flagRootURL  = "root-url"
	flagToken    = "token"
	flagYes      = "yes"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in the specified format; supported formats: table, " +
			"yaml, json",
		Value: "table",
	}
	cliFlagPath = &cli.StringFlag{
		Name:    flagPath,
		Aliases: []string{"p"},
		Usage:   "The path, relative to the root URL, of the roles collection",
		Value:   "/roles",
	}
)
