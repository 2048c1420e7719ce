package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/internal/creds"
	"github.com/p13nctl/p13nctl/internal/prompt"
	"github.com/p13nctl/p13nctl/pkg/p13n"
)

var (
	configPath  string
	cookiesPath string
	manualLogin bool
	proxyAddr   string
	verbose     bool

	sessionFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "config, c",
			Usage:       "load credentials from the given file instead of ./config.json",
			Destination: &configPath,
		},
		cli.StringFlag{
			Name:        "cookies, k",
			Usage:       "import session cookies from a cookies.sqlite or cookies.txt file, or \"auto\" to scan browser profiles",
			Destination: &cookiesPath,
		},
		cli.BoolFlag{
			Name:        "manual, m",
			Usage:       "enter the session tokens interactively",
			Destination: &manualLogin,
		},
		cli.StringFlag{
			Name:        "proxy, x",
			Usage:       "route requests through an http, https or socks5 proxy url",
			Destination: &proxyAddr,
		},
		cli.BoolFlag{
			Name:        "verbose, V",
			Usage:       "log every request and response at debug level",
			Destination: &verbose,
		},
	}
)

// Seams the tests swap out. The base URL points command actions at an
// httptest server, appFs keeps file output in memory and
// promptCredentials replaces the interactive form.
var (
	apiBaseURL        = p13n.DEF_BASE_URL
	appFs             = afero.NewOsFs()
	promptCredentials = prompt.Run
)

type sessionStore interface {
	Save(p13n.Credentials) error
	Load() (p13n.Credentials, error)
	Delete() error
}

var newSessionStore = func() sessionStore { return creds.NewKeyring() }

var errNoCredentials = errors.New("no credentials found")

type session struct {
	client *p13n.Client
	ctx    context.Context
	log    zerolog.Logger
}

func newSession() (*session, error) {
	logger := newLogger(verbose)
	c, err := resolveCredentials(logger)
	if err != nil {
		return nil, err
	}
	client, err := p13n.NewClient(c, &p13n.ClientOpts{
		BaseURL:  apiBaseURL,
		ProxyURL: proxyAddr,
		Timeout:  DEF_TIMEOUT,
		Logger:   &logger,
	})
	if err != nil {
		return nil, err
	}
	return &session{
		client: client,
		ctx:    context.Background(),
		log:    logger,
	}, nil
}

// printSessionErr reports a failed session setup and, when no source
// yielded credentials at all, tells the user how to provide some.
func printSessionErr(ctx *cli.Context, cmd string, err error) {
	printRuntimeErr(ctx, cmd, "session", err)
	if errors.Is(err, errNoCredentials) {
		fmt.Println(`hint: run "p13nctl init" to create a credentials file`)
		fmt.Println(`hint: run "p13nctl login" to store a session in the OS keyring`)
		fmt.Println("hint: pass --manual to enter the tokens interactively")
	}
}

// resolveCredentials picks the session source. An explicitly requested
// source must work or the run fails; the implicit fallbacks are tried
// in order and skipped silently when absent.
func resolveCredentials(logger zerolog.Logger) (p13n.Credentials, error) {
	switch {
	case manualLogin:
		c, ok, err := promptCredentials()
		if err != nil {
			return p13n.Credentials{}, fmt.Errorf("interactive login: %w", err)
		}
		if !ok {
			return p13n.Credentials{}, errors.New("interactive login cancelled")
		}
		logger.Debug().Msg("using interactively entered credentials")
		return c, nil
	case cookiesPath == "auto":
		logger.Debug().Msg("scanning browser profiles for session cookies")
		return creds.FromBrowser()
	case cookiesPath != "":
		logger.Debug().Str("path", cookiesPath).Msg("importing session cookies")
		return creds.FromCookieStore(cookiesPath)
	case configPath != "":
		logger.Debug().Str("path", configPath).Msg("loading credentials file")
		return creds.Load(appFs, configPath)
	}

	if ok, _ := afero.Exists(appFs, creds.DEF_CONFIG_FILE); ok {
		logger.Debug().Str("path", creds.DEF_CONFIG_FILE).Msg("loading credentials file")
		return creds.Load(appFs, creds.DEF_CONFIG_FILE)
	}
	c, err := newSessionStore().Load()
	if err == nil {
		logger.Debug().Msg("using session stored in the OS keyring")
		return c, nil
	}
	if !errors.Is(err, creds.ErrKeyringEmpty) {
		logger.Debug().Err(err).Msg("keyring lookup failed")
	}
	if c, ok := creds.FromEnv(); ok {
		logger.Debug().Msg("using credentials from the environment")
		return c, nil
	}
	return p13n.Credentials{}, errNoCredentials
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	var out io.Writer = console
	if f, err := appFs.OpenFile(DEF_LOG_FILE, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
		out = zerolog.MultiLevelWriter(console, f)
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return logger
}
