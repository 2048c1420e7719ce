package cmd

import (
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/internal/creds"
	"github.com/p13nctl/p13nctl/pkg/p13n"
)

const (
	testInterestsBody = `{"interested_in":[{"id":"a","display_name":"Alpha"},{"id":"b","display_name":"Beta"}]}`
	testPrefsBody     = `{"interest_preferences":{"disabled_interests":["b","c"],"disabled_partner_interests":[]}}`
)

type fakeStore struct {
	creds   p13n.Credentials
	loadErr error
	saveErr error
	delErr  error
	saved   []p13n.Credentials
	deletes int
}

func (f *fakeStore) Save(c p13n.Credentials) error {
	f.saved = append(f.saved, c)
	return f.saveErr
}

func (f *fakeStore) Load() (p13n.Credentials, error) {
	if f.loadErr != nil {
		return p13n.Credentials{}, f.loadErr
	}
	return f.creds, nil
}

func (f *fakeStore) Delete() error {
	f.deletes++
	return f.delErr
}

// setupCmdTest points the command package at an in-memory filesystem,
// an empty fake keyring and the given API base URL, resets every flag
// variable and clears the credential environment. Everything is
// restored when the test finishes. Tests that never reach the network
// may pass an unroutable URL.
func setupCmdTest(t *testing.T, baseURL string) *fakeStore {
	t.Helper()
	oldBase, oldFs := apiBaseURL, appFs
	oldStore, oldPrompt := newSessionStore, promptCredentials
	oldConfig, oldCookies := configPath, cookiesPath
	oldManual, oldProxy, oldVerbose := manualLogin, proxyAddr, verbose
	oldExport, oldExample := exportPath, writeExample
	t.Cleanup(func() {
		apiBaseURL, appFs = oldBase, oldFs
		newSessionStore, promptCredentials = oldStore, oldPrompt
		configPath, cookiesPath = oldConfig, oldCookies
		manualLogin, proxyAddr, verbose = oldManual, oldProxy, oldVerbose
		exportPath, writeExample = oldExport, oldExample
	})

	apiBaseURL = baseURL
	appFs = afero.NewMemMapFs()
	store := &fakeStore{loadErr: creds.ErrKeyringEmpty}
	newSessionStore = func() sessionStore { return store }
	configPath, cookiesPath = "", ""
	manualLogin, proxyAddr, verbose = false, "", false
	exportPath, writeExample = DEF_EXPORT_FILE, false

	t.Setenv(creds.ENV_BEARER_TOKEN, "")
	t.Setenv(creds.ENV_CSRF_TOKEN, "")
	t.Setenv(creds.ENV_AUTH_TOKEN, "")
	t.Setenv(creds.ENV_CT0, "")
	return store
}

func writeTestConfig(t *testing.T) {
	t.Helper()
	body := `{"bearer_token":"AAAAtest","csrf_token":"csrf123","auth_token":"auth789"}`
	if err := afero.WriteFile(appFs, creds.DEF_CONFIG_FILE, []byte(body), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// newAPIServer answers both personalization endpoints with the given
// bodies and records every POST body it receives.
func newAPIServer(t *testing.T, interestsBody, prefsBody string, posts *[][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if posts != nil {
				*posts = append(*posts, body)
			}
			_, _ = w.Write([]byte(`{}`))
			return
		}
		switch r.URL.Path {
		case "/1.1/account/personalization/twitter_interests.json":
			_, _ = w.Write([]byte(interestsBody))
		case "/1.1/account/personalization/p13n_preferences.json":
			_, _ = w.Write([]byte(prefsBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// cmdContext builds the context a command action receives when the
// dispatcher invokes it with the given arguments.
func cmdContext(t *testing.T, name string, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		t.Fatalf("parse %s args: %v", name, err)
	}
	ctx := cli.NewContext(cli.NewApp(), set, nil)
	ctx.Command = cli.Command{Name: name}
	return ctx
}

// runMain runs the whole app the way main does and fails the test on
// any error.
func runMain(t *testing.T, args ...string) {
	t.Helper()
	build := BuildArgs{Version: "0.1.0", BuildType: "test"}
	if err := Execute(append([]string{"p13nctl"}, args...), build); err != nil {
		t.Fatalf("run %v: %v", args, err)
	}
}

type postedUpdate struct {
	Preferences struct {
		InterestPreferences struct {
			InterestedIn             []p13n.InterestEntry `json:"interested_in"`
			DisabledInterests        []string             `json:"disabled_interests"`
			DisabledPartnerInterests []string             `json:"disabled_partner_interests"`
		} `json:"interest_preferences"`
	} `json:"preferences"`
}

func decodePost(t *testing.T, body []byte) postedUpdate {
	t.Helper()
	var u postedUpdate
	if err := json.Unmarshal(body, &u); err != nil {
		t.Fatalf("decode posted body: %v", err)
	}
	return u
}

func TestCleanCommand(t *testing.T) {
	var posts [][]byte
	srv := newAPIServer(t, testInterestsBody, testPrefsBody, &posts)
	setupCmdTest(t, srv.URL)
	writeTestConfig(t)

	ctx := cmdContext(t, "clean")
	if err := clean(ctx); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 write, got %d", len(posts))
	}
	got := decodePost(t, posts[0])
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got.Preferences.InterestPreferences.DisabledInterests, want) {
		t.Errorf("expected disabled %v, got %v", want, got.Preferences.InterestPreferences.DisabledInterests)
	}
	if len(got.Preferences.InterestPreferences.InterestedIn) != 0 {
		t.Errorf("disable write must not carry an interest list, got %v",
			got.Preferences.InterestPreferences.InterestedIn)
	}
}

func TestCleanNoCredentials(t *testing.T) {
	var posts [][]byte
	srv := newAPIServer(t, testInterestsBody, testPrefsBody, &posts)
	setupCmdTest(t, srv.URL)

	ctx := cmdContext(t, "clean")
	if err := clean(ctx); err == nil {
		t.Fatal("expected error without credentials")
	}
	if len(posts) != 0 {
		t.Errorf("expected no writes, got %d", len(posts))
	}
}

func TestCleanAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	setupCmdTest(t, srv.URL)
	writeTestConfig(t)

	ctx := cmdContext(t, "clean")
	if err := clean(ctx); err == nil {
		t.Fatal("expected error on server failure")
	}
}

func TestReportCommand(t *testing.T) {
	var posts [][]byte
	srv := newAPIServer(t, testInterestsBody, testPrefsBody, &posts)
	setupCmdTest(t, srv.URL)
	writeTestConfig(t)

	ctx := cmdContext(t, "report")
	if err := report(ctx); err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("report must not write, got %d writes", len(posts))
	}
}

func TestResetCommand(t *testing.T) {
	// Reads fail on purpose. reset never looks at the current state, so
	// the write must still go through.
	var posts [][]byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		posts = append(posts, body)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	setupCmdTest(t, srv.URL)
	writeTestConfig(t)

	ctx := cmdContext(t, "reset")
	if err := reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 write, got %d", len(posts))
	}
	got := decodePost(t, posts[0])
	if len(got.Preferences.InterestPreferences.DisabledInterests) != 0 {
		t.Errorf("expected empty disabled list, got %v",
			got.Preferences.InterestPreferences.DisabledInterests)
	}
}

func TestExecuteVersion(t *testing.T) {
	runMain(t, "version")
}

func TestExecuteCleanDefault(t *testing.T) {
	var posts [][]byte
	srv := newAPIServer(t, testInterestsBody, testPrefsBody, &posts)
	setupCmdTest(t, srv.URL)
	writeTestConfig(t)

	runMain(t)
	if len(posts) != 1 {
		t.Fatalf("expected 1 write, got %d", len(posts))
	}
}

func TestExecuteHelp(t *testing.T) {
	oldShow := showAppHelpAndExit
	showAppHelpAndExit = func(ctx *cli.Context, code int) {
		_ = cli.ShowAppHelp(ctx)
	}
	defer func() { showAppHelpAndExit = oldShow }()

	runMain(t, "help")
}

func TestExecuteHelpTopic(t *testing.T) {
	runMain(t, "help", "clean")
}
