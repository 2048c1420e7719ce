package creds

import (
	"os"

	"github.com/p13nctl/p13nctl/pkg/p13n"
)

// Environment variable names. A .env file in the working directory is
// loaded automatically at startup.
const (
	ENV_BEARER_TOKEN = "P13NCTL_BEARER_TOKEN"
	ENV_CSRF_TOKEN   = "P13NCTL_CSRF_TOKEN"
	ENV_AUTH_TOKEN   = "P13NCTL_AUTH_TOKEN"
	ENV_CT0          = "P13NCTL_CT0"
)

// FromEnv builds credentials from the environment. The second return
// value reports whether the environment held a complete set.
func FromEnv() (p13n.Credentials, bool) {
	c := p13n.Credentials{
		BearerToken: os.Getenv(ENV_BEARER_TOKEN),
		CSRFToken:   os.Getenv(ENV_CSRF_TOKEN),
		AuthToken:   os.Getenv(ENV_AUTH_TOKEN),
		CT0:         os.Getenv(ENV_CT0),
	}.WithDefaults()
	return c, c.Validate() == nil
}
