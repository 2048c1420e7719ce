package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/internal/creds"
)

func logout(ctx *cli.Context) error {
	err := newSessionStore().Delete()
	if errors.Is(err, creds.ErrKeyringEmpty) {
		fmt.Println("No session stored")
		return nil
	}
	if err != nil {
		printRuntimeErr(ctx, "logout", "keyring", err)
		return errExit()
	}
	fmt.Println("Removed the stored session")
	return nil
}
