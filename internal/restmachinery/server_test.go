package restmachinery

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenAndServeRequiresTLSFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "stub-tls")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	certPath := path.Join(dir, "tls.crt")
	require.NoError(t, ioutil.WriteFile(certPath, []byte("cert"), 0600))
	keyPath := path.Join(dir, "tls.key")

	testCases := []struct {
		name        string
		certPath    string
		keyPath     string
		missingPath string
	}{
		{
			name:        "cert missing",
			certPath:    path.Join(dir, "missing.crt"),
			keyPath:     keyPath,
			missingPath: path.Join(dir, "missing.crt"),
		},
		{
			name:        "key missing",
			certPath:    certPath,
			keyPath:     keyPath,
			missingPath: keyPath,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := NewServer(
				&config{
					PortAttr:        0,
					AuthTokenAttr:   testAuthToken,
					TLSEnabledAttr:  true,
					TLSCertPathAttr: testCase.certPath,
					TLSKeyPathAttr:  testCase.keyPath,
				},
				nil,
			)
			err := server.ListenAndServe()
			require.Error(t, err)
			require.Contains(t, err.Error(), testCase.missingPath)
		})
	}
}
