package p13n

import (
	"encoding/json"
	"errors"
	"sort"

	"golang.org/x/exp/maps"
)

// InterestSet is a set of opaque interest category ids. Ids are never
// parsed or validated; two ids are the same interest iff the strings
// are equal.
type InterestSet map[string]bool

// NewInterestSet builds a set from the given ids, dropping duplicates.
func NewInterestSet(ids ...string) InterestSet {
	s := make(InterestSet, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Has reports whether id is in the set.
func (s InterestSet) Has(id string) bool { return s[id] }

// IDs returns the ids in sorted order. Sorting keeps serialized
// payloads and log lines stable across runs.
func (s InterestSet) IDs() []string {
	ids := maps.Keys(s)
	sort.Strings(ids)
	return ids
}

// Union returns a new set containing every id present in either a or b.
func Union(a, b InterestSet) InterestSet {
	u := make(InterestSet, len(a)+len(b))
	for id := range a {
		u[id] = true
	}
	for id := range b {
		u[id] = true
	}
	return u
}

// InterestEntry is one interest category as the platform reports it.
// Only Id matters to the API; DisplayName is carried for humans.
type InterestEntry struct {
	Id          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
}

type interestRecord struct {
	Id *string `json:"id"`
}

type interestsResponse struct {
	InterestedIn []interestRecord `json:"interested_in"`
}

type preferencesResponse struct {
	InterestPreferences struct {
		DisabledInterests []string `json:"disabled_interests"`
	} `json:"interest_preferences"`
}

type interestPreferences struct {
	InterestedIn             []InterestEntry `json:"interested_in,omitempty"`
	DisabledInterests        []string        `json:"disabled_interests"`
	DisabledPartnerInterests []string        `json:"disabled_partner_interests"`
}

// preferencesUpdate is the write payload of the preferences endpoint.
// Both disabled lists must be present, as [] rather than null, even when
// empty; the platform treats a missing list as "leave unchanged".
type preferencesUpdate struct {
	Preferences struct {
		InterestPreferences interestPreferences `json:"interest_preferences"`
	} `json:"preferences"`
}

func newPreferencesUpdate(entries []InterestEntry, disabled []string) *preferencesUpdate {
	if disabled == nil {
		disabled = []string{}
	}
	u := &preferencesUpdate{}
	u.Preferences.InterestPreferences = interestPreferences{
		InterestedIn:             entries,
		DisabledInterests:        disabled,
		DisabledPartnerInterests: []string{},
	}
	return u
}

var errNoInterestId = errors.New("interest entry has no id")

func parseInterests(op string, body []byte) (InterestSet, error) {
	var resp interestsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, shapeErr(op, err)
	}
	set := make(InterestSet, len(resp.InterestedIn))
	for _, rec := range resp.InterestedIn {
		if rec.Id == nil {
			return nil, &ShapeError{Op: op, Field: "interested_in.id", Err: errNoInterestId}
		}
		set[*rec.Id] = true
	}
	return set, nil
}

func parseDisabled(op string, body []byte) (InterestSet, error) {
	var resp preferencesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, shapeErr(op, err)
	}
	return NewInterestSet(resp.InterestPreferences.DisabledInterests...), nil
}

// shapeErr wraps a JSON decode failure, naming the offending field when
// the decoder identified one.
func shapeErr(op string, err error) error {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return &ShapeError{Op: op, Field: te.Field, Err: err}
	}
	return &ShapeError{Op: op, Field: "body", Err: err}
}
