package main

import (
	"fmt"
	"strings"

	"github.com/openwms/openwms-go/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Store the root URL and token used to access OpenWMS",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     flagRootURL,
			Aliases:  []string{"r"},
			Usage:    "The root URL of the OpenWMS API (required)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     flagToken,
			Aliases:  []string{"t"},
			Usage:    "The authentication token to send with requests (required)",
			Required: true,
		},
	},
	Action: login,
}

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Forget the stored root URL and token",
	Action: logout,
}

func login(c *cli.Context) error {
	callCtx := core.CallContext{
		RootURL:   strings.TrimSuffix(c.String(flagRootURL), "/"),
		AuthToken: c.String(flagToken),
	}

	// Listing roles is the cheapest authenticated request available to us, so
	// it doubles as a check that the root URL and token actually work.
	client := core.NewAPIClient(c.Bool(flagInsecure))
	if _, err := client.Roles().GetAll(c.Context, callCtx); err != nil {
		return errors.Wrap(err, "error verifying root URL and token")
	}

	if err := saveConfig(
		&config{
			RootURL:   callCtx.RootURL,
			AuthToken: callCtx.AuthToken,
		},
	); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	fmt.Printf("Logged in to %s.\n", callCtx.RootURL)

	return nil
}

func logout(c *cli.Context) error {
	if err := deleteConfig(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
