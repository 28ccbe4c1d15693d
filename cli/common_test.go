package main

import (
	"io/ioutil"
	"net/http/httptest"
	"os"
	"path"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/openwms/openwms-go/internal/restmachinery"
	"github.com/openwms/openwms-go/internal/stub"
	"github.com/stretchr/testify/require"
)

const testAuthToken = "t1"

// withTempHome points the user's home directory at a fresh temporary
// directory for the duration of the test and clears any OPENWMS_*
// environment overrides.
func withTempHome(t *testing.T) string {
	homeDir, err := ioutil.TempDir("", "wmsctl")
	require.NoError(t, err)
	homedir.DisableCache = true
	oldHome := os.Getenv("HOME")
	require.NoError(t, os.Setenv("HOME", homeDir))
	oldRootURL, rootURLSet := os.LookupEnv("OPENWMS_ROOT_URL")
	oldToken, tokenSet := os.LookupEnv("OPENWMS_AUTH_TOKEN")
	os.Unsetenv("OPENWMS_ROOT_URL")
	os.Unsetenv("OPENWMS_AUTH_TOKEN")
	t.Cleanup(func() {
		os.Setenv("HOME", oldHome)
		if rootURLSet {
			os.Setenv("OPENWMS_ROOT_URL", oldRootURL)
		}
		if tokenSet {
			os.Setenv("OPENWMS_AUTH_TOKEN", oldToken)
		}
		os.RemoveAll(homeDir)
	})
	return homeDir
}

func newStubServer(t *testing.T) *httptest.Server {
	server, err := stub.NewServer(
		restmachinery.NewConfigWithDefaults(testAuthToken),
		stub.DefaultRoles(),
	)
	require.NoError(t, err)
	testServer := httptest.NewServer(server.Handler())
	t.Cleanup(testServer.Close)
	return testServer
}

func writeTempFile(t *testing.T, dir string, name string, contents string) string {
	filename := path.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(filename, []byte(contents), 0600))
	return filename
}
