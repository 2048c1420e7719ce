package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/internal/creds"
)

func initConfig(ctx *cli.Context) error {
	err := creds.WriteSample(appFs, creds.DEF_SAMPLE_FILE)
	if err != nil {
		printRuntimeErr(ctx, "init", "write", err)
		return errExit()
	}
	fmt.Printf("Created %s\n", creds.DEF_SAMPLE_FILE)
	fmt.Println("Collect the values from a logged-in x.com browser tab:")
	fmt.Println("  bearer_token : Authorization request header, without the \"Bearer \" prefix")
	fmt.Println("  csrf_token   : x-csrf-token request header")
	fmt.Println("  ct0          : ct0 cookie, usually the same value as csrf_token")
	fmt.Println("  auth_token   : auth_token cookie")
	fmt.Printf("Rename the file to %s when done.\n", creds.DEF_CONFIG_FILE)
	return nil
}
