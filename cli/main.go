package main

import (
	"fmt"
	"os"

	"github.com/openwms/openwms-go/internal/signals"
	"github.com/openwms/openwms-go/internal/version"
	"github.com/urfave/cli/v2"
)

func main() {
	fmt.Println()
	if err := newApp().RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "wmsctl"
	app.Usage = "Manage an OpenWMS installation from the command line"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		loginCommand,
		logoutCommand,
		roleCommand,
	}
	return app
}
