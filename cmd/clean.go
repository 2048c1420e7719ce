package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/pkg/p13n"
)

var cleanFlags = sessionFlags

func clean(ctx *cli.Context) error {
	s, err := newSession()
	if err != nil {
		printSessionErr(ctx, "clean", err)
		return errExit()
	}
	current, err := s.client.CurrentInterests(s.ctx)
	if err != nil {
		printRuntimeErr(ctx, "clean", "interests", err)
		return errExit()
	}
	disabled, err := s.client.DisabledInterests(s.ctx)
	if err != nil {
		printRuntimeErr(ctx, "clean", "disabled", err)
		return errExit()
	}
	merged := p13n.Union(current, disabled)
	err = s.client.ReplaceDisabledInterests(s.ctx, merged)
	if err != nil {
		printRuntimeErr(ctx, "clean", "write", err)
		return errExit()
	}
	s.log.Info().
		Int("current", len(current)).
		Int("previously_disabled", len(disabled)).
		Int("disabled", len(merged)).
		Msg("interest cleanup complete")
	fmt.Printf("Disabled %d interests (%d active, %d already disabled)\n",
		len(merged), len(current), len(disabled))
	return nil
}
