package creds

import (
	"fmt"

	"github.com/spf13/afero"
)

// DEF_SAMPLE_FILE is where the init command writes the sample
// credentials file.
const DEF_SAMPLE_FILE = "config_sample.json"

const sampleConfig = `{
  "bearer_token": "YOUR_BEARER_TOKEN_HERE",
  "csrf_token": "YOUR_CSRF_TOKEN_HERE",
  "ct0": "YOUR_CT0_VALUE_FROM_COOKIES",
  "auth_token": "YOUR_AUTH_TOKEN_FROM_COOKIES"
}
`

// WriteSample writes a credentials file template with placeholder
// values. It refuses to overwrite an existing file.
func WriteSample(fs afero.Fs, path string) error {
	if path == "" {
		path = DEF_SAMPLE_FILE
	}
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}
	return afero.WriteFile(fs, path, []byte(sampleConfig), 0600)
}
