package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/pkg/p13n"
)

var resetFlags = sessionFlags

func reset(ctx *cli.Context) error {
	s, err := newSession()
	if err != nil {
		printSessionErr(ctx, "reset", err)
		return errExit()
	}
	err = s.client.ReplaceDisabledInterests(s.ctx, p13n.NewInterestSet())
	if err != nil {
		printRuntimeErr(ctx, "reset", "write", err)
		return errExit()
	}
	s.log.Info().Msg("disabled interests cleared")
	fmt.Println("Cleared the disabled interests list")
	return nil
}
