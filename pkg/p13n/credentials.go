package p13n

// Credentials holds the four opaque tokens of one logged-in browser
// session. All values are supplied by the operator; the client never
// acquires or refreshes them.
//
// CSRFToken travels as the x-csrf-token header and CT0 as the ct0
// cookie. The platform expects the two to agree, so each one defaults
// to the other when only one is supplied.
type Credentials struct {
	BearerToken string `json:"bearer_token"`
	CSRFToken   string `json:"csrf_token"`
	AuthToken   string `json:"auth_token"`
	CT0         string `json:"ct0,omitempty"`
}

// WithDefaults returns a copy with CT0 and CSRFToken filled in from
// each other when only one of the two is set.
func (c Credentials) WithDefaults() Credentials {
	if c.CT0 == "" {
		c.CT0 = c.CSRFToken
	}
	if c.CSRFToken == "" {
		c.CSRFToken = c.CT0
	}
	return c
}

// Validate returns a CredentialError naming the first missing field,
// or nil when the set is complete.
func (c Credentials) Validate() error {
	switch {
	case c.BearerToken == "":
		return &CredentialError{Field: "bearer_token"}
	case c.CSRFToken == "":
		return &CredentialError{Field: "csrf_token"}
	case c.AuthToken == "":
		return &CredentialError{Field: "auth_token"}
	case c.CT0 == "":
		return &CredentialError{Field: "ct0"}
	}
	return nil
}
