package creds

import (
	"encoding/json"
	"errors"

	"github.com/zalando/go-keyring"

	"github.com/p13nctl/p13nctl/pkg/p13n"
)

// Keyring stores the credential set as a single JSON secret in the OS
// keyring. The secret service does the protecting; nothing is written
// to disk by this package.
type Keyring struct {
	Service string
	Account string
}

var (
	keyringSet    = keyring.Set
	keyringGet    = keyring.Get
	keyringDelete = keyring.Delete
)

// ErrKeyringEmpty is returned by Load when no credentials were saved.
var ErrKeyringEmpty = errors.New("no credentials stored in keyring")

// NewKeyring returns the store under the fixed p13nctl service name.
func NewKeyring() *Keyring {
	return &Keyring{
		Service: "p13nctl",
		Account: "session",
	}
}

// Save validates and stores the credential set.
func (k *Keyring) Save(c p13n.Credentials) error {
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return keyringSet(k.Service, k.Account, string(data))
}

// Load returns the stored credential set, or ErrKeyringEmpty when none
// was saved.
func (k *Keyring) Load() (p13n.Credentials, error) {
	raw, err := keyringGet(k.Service, k.Account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return p13n.Credentials{}, ErrKeyringEmpty
		}
		return p13n.Credentials{}, err
	}
	var c p13n.Credentials
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return p13n.Credentials{}, err
	}
	return c.WithDefaults(), nil
}

// Delete removes the stored credential set. Deleting when nothing is
// stored returns ErrKeyringEmpty.
func (k *Keyring) Delete() error {
	err := keyringDelete(k.Service, k.Account)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrKeyringEmpty
	}
	return err
}
