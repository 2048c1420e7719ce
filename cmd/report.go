package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/pkg/p13n"
)

var reportFlags = sessionFlags

func report(ctx *cli.Context) error {
	s, err := newSession()
	if err != nil {
		printSessionErr(ctx, "report", err)
		return errExit()
	}
	current, err := s.client.CurrentInterests(s.ctx)
	if err != nil {
		printRuntimeErr(ctx, "report", "interests", err)
		return errExit()
	}
	disabled, err := s.client.DisabledInterests(s.ctx)
	if err != nil {
		printRuntimeErr(ctx, "report", "disabled", err)
		return errExit()
	}
	merged := p13n.Union(current, disabled)
	fmt.Println("Summary:")
	fmt.Printf("  Active interests : %d\n", len(current))
	fmt.Printf("  Already disabled : %d\n", len(disabled))
	fmt.Printf("  Clean would write: %d\n", len(merged))
	if len(merged) > 0 {
		fmt.Println("Interest ids:")
		for _, id := range merged.IDs() {
			fmt.Println("  " + id)
		}
	}
	return nil
}
