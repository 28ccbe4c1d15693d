package core

import (
	"crypto/tls"
	"net/http"
	"testing"

	"github.com/openwms/openwms-go/sdk/internal/restmachinery"
	"github.com/stretchr/testify/require"
)

const (
	testAuthToken           = "t1"
	testClientAllowInsecure = true
)

func requireBaseClient(t *testing.T, baseClient *restmachinery.BaseClient) {
	require.IsType(t, &http.Client{}, baseClient.HTTPClient)
	require.IsType(t, &http.Transport{}, baseClient.HTTPClient.Transport)
	require.IsType(
		t,
		&tls.Config{},
		baseClient.HTTPClient.Transport.(*http.Transport).TLSClientConfig,
	)
	require.Equal(
		t,
		testClientAllowInsecure,
		baseClient.HTTPClient.Transport.(*http.Transport).TLSClientConfig.InsecureSkipVerify, // nolint: lll
	)
}
