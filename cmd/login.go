package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

func login(ctx *cli.Context) error {
	c, ok, err := promptCredentials()
	if err != nil {
		printRuntimeErr(ctx, "login", "prompt", err)
		return errExit()
	}
	if !ok {
		fmt.Println("Login cancelled, nothing stored")
		return nil
	}
	if err = newSessionStore().Save(c); err != nil {
		printRuntimeErr(ctx, "login", "keyring", err)
		return errExit()
	}
	fmt.Println("Session stored in the OS keyring")
	return nil
}
