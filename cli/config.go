package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"github.com/openwms/openwms-go/internal/file"
	"github.com/pkg/errors"
)

const envconfigPrefix = "OPENWMS"

type config struct {
	RootURL   string `json:"rootURL"`
	AuthToken string `json:"authToken"`
}

// envOverrides are applied on top of whatever the config file holds, so that
// wmsctl can also be driven entirely from the environment, e.g. in CI.
type envOverrides struct {
	RootURL   string `envconfig:"ROOT_URL"`
	AuthToken string `envconfig:"AUTH_TOKEN"`
}

func getConfig() (*config, error) {
	config := &config{}

	openwmsHome, err := getOpenWMSHome()
	if err != nil {
		return nil, errors.Wrapf(err, "error finding openwms home")
	}
	openwmsConfigFile := path.Join(openwmsHome, "config")
	if file.Exists(openwmsConfigFile) {
		configBytes, err := ioutil.ReadFile(openwmsConfigFile)
		if err != nil {
			return nil, errors.Wrapf(
				err,
				"error reading openwms config file at %s",
				openwmsConfigFile,
			)
		}
		if err := json.Unmarshal(configBytes, config); err != nil {
			return nil, errors.Wrapf(
				err,
				"error parsing openwms config file at %s",
				openwmsConfigFile,
			)
		}
	}

	overrides := envOverrides{}
	if err := envconfig.Process(envconfigPrefix, &overrides); err != nil {
		return nil, errors.Wrap(
			err,
			"error getting openwms configuration from environment",
		)
	}
	if overrides.RootURL != "" {
		config.RootURL = overrides.RootURL
	}
	if overrides.AuthToken != "" {
		config.AuthToken = overrides.AuthToken
	}

	if config.RootURL == "" {
		return nil, errors.Errorf(
			"no openwms configuration was found at %s; please use "+
				"`wmsctl login` to continue",
			openwmsConfigFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	openwmsHome, err := getOpenWMSHome()
	if err != nil {
		return errors.Wrapf(err, "error finding openwms home")
	}
	if _, err = os.Stat(openwmsHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of openwms home at %s",
				openwmsHome,
			)
		}
		// The directory doesn't exist-- create it
		if err = os.MkdirAll(openwmsHome, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating openwms home at %s",
				openwmsHome,
			)
		}
	}
	openwmsConfigFile := path.Join(openwmsHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	// The file holds a token; keep it private to the user.
	if err :=
		ioutil.WriteFile(openwmsConfigFile, configBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", openwmsConfigFile)
	}
	return nil
}

func deleteConfig() error {
	openwmsHome, err := getOpenWMSHome()
	if err != nil {
		return errors.Wrapf(err, "error finding openwms home")
	}
	openwmsConfigFile := path.Join(openwmsHome, "config")

	if err := os.Remove(openwmsConfigFile); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}

	return nil
}

func getOpenWMSHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}

	return path.Join(homeDir, ".openwms"), nil
}
