package main

import (
	"github.com/openwms/openwms-go/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func getClient(c *cli.Context) (core.APIClient, core.CallContext, error) {
	config, err := getConfig()
	if err != nil {
		return nil, core.CallContext{},
			errors.Wrapf(err, "error retrieving configuration")
	}
	return core.NewAPIClient(c.Bool(flagInsecure)),
		core.CallContext{
			RootURL:   config.RootURL,
			AuthToken: config.AuthToken,
		},
		nil
}
