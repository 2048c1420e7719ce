package cmd

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/imax9000/errors"
	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/pkg/p13n"
)

// Stubbed in tests; the real cli helpers call os.Exit.
var (
	showAppHelpAndExit = cli.ShowAppHelpAndExit
	showCommandHelp    = cli.ShowCommandHelp
)

// errExit carries exit status 1 without a message of its own. Actions
// print their diagnostics before returning it.
func errExit() error {
	return cli.NewExitError("", 1)
}

func help(ctx *cli.Context) error {
	topic := ctx.Args().First()
	if topic == "" || topic == "help" {
		fmt.Printf("%s %s\n", ctx.App.HelpName, ctx.App.Version)
		showAppHelpAndExit(ctx, 0)
		return nil
	}
	if err := showCommandHelp(ctx, topic); err != nil {
		return printUsageErr(ctx, err, appHelp(ctx))
	}
	return nil
}

func getVersion(ctx *cli.Context) error {
	fmt.Printf("%s %s (%s/%s)\n", ctx.App.Name, ctx.App.Version, runtime.GOOS, runtime.GOARCH)
	if currentBuildArgs.Commit != "" {
		fmt.Printf("commit %s, built %s\n", currentBuildArgs.Commit, currentBuildArgs.Date)
	}
	return nil
}

// printRuntimeErr reports a failed step of a running command on stderr.
func printRuntimeErr(ctx *cli.Context, cmd, step string, err error) {
	if err == nil {
		return
	}
	name := os.Args[0]
	if ctx != nil {
		name = ctx.App.HelpName
	}
	fmt.Fprintf(os.Stderr, "%s: %s: %s: %v\n", name, cmd, step, err)
	if hint := operatorHint(err); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}
}

// operatorHint maps well-known failure types to a line telling the
// operator what to do next. Unknown errors get no hint.
func operatorHint(err error) string {
	if terr, ok := errors.As[*p13n.TransportError](err); ok {
		switch terr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "hint: the session is stale or incomplete; collect fresh tokens and log in again"
		case http.StatusTooManyRequests:
			return "hint: the API is rate limiting this account; wait a minute and retry"
		}
		return ""
	}
	if cerr, ok := errors.As[*p13n.CredentialError](err); ok {
		return fmt.Sprintf("hint: add %s to your credentials; \"p13nctl init\" shows where each token comes from", cerr.Field)
	}
	return ""
}

// appHelp and cmdHelp are the follow-ups printUsageErr shows after
// reporting a bad invocation.
func appHelp(ctx *cli.Context) func() {
	return func() { showAppHelpAndExit(ctx, 1) }
}

func cmdHelp(ctx *cli.Context) func() {
	return func() {
		if err := showCommandHelp(ctx, ctx.Command.Name); err != nil {
			fmt.Println(err)
		}
	}
}

// printUsageErr reports a bad invocation, then shows the relevant help.
// Help and version requests surface as flag-parse errors, so those are
// answered instead of reported.
func printUsageErr(ctx *cli.Context, err error, showHelp func()) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if msg == "flag: help requested" {
		return help(ctx)
	}
	if strings.HasSuffix(msg, ": -version") || strings.HasSuffix(msg, ": -v") {
		return getVersion(ctx)
	}
	fmt.Printf("%s: %v\n\n", ctx.App.HelpName, err)
	showHelp()
	return errExit()
}

func usageErrorCallback(ctx *cli.Context, err error, _ bool) error {
	if ctx.Command.Name != "" {
		return printUsageErr(ctx, err, cmdHelp(ctx))
	}
	return printUsageErr(ctx, err, appHelp(ctx))
}
