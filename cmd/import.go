package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/p13nctl/p13nctl/pkg/p13n"
)

var (
	writeExample bool

	importFlags = append([]cli.Flag{
		cli.BoolFlag{
			Name:        "example, e",
			Usage:       "write " + DEF_EXAMPLE_FILE + " with one sample entry and exit",
			Destination: &writeExample,
		},
	}, sessionFlags...)
)

type interestsFile struct {
	Interests []p13n.InterestEntry `json:"interests"`
}

const exampleInterests = `{
  "interests": [
    {
      "id": "DAALDAABDAABCgABEiA7xGgVAAEAAAsAAwAAAAdGYWNlQXBwAgAEAAgABQAAAAEAAA==",
      "display_name": "FaceApp"
    }
  ]
}
`

func importInterests(ctx *cli.Context) error {
	if writeExample {
		if ok, _ := afero.Exists(appFs, DEF_EXAMPLE_FILE); ok {
			printRuntimeErr(ctx, "import", "example", fmt.Errorf("%s already exists", DEF_EXAMPLE_FILE))
			return errExit()
		}
		err := afero.WriteFile(appFs, DEF_EXAMPLE_FILE, []byte(exampleInterests), 0644)
		if err != nil {
			printRuntimeErr(ctx, "import", "example", err)
			return errExit()
		}
		fmt.Printf("Created %s\n", DEF_EXAMPLE_FILE)
		fmt.Println("Edit it to list the interests you want, then run:")
		fmt.Printf("        p13nctl import %s\n", DEF_EXAMPLE_FILE)
		return nil
	}

	path := ctx.Args().First()
	if path == "" {
		return printUsageErr(ctx, errors.New("no interests file provided"), cmdHelp(ctx))
	} else if path == "help" {
		return showCommandHelp(ctx, ctx.Command.Name)
	}

	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		printRuntimeErr(ctx, "import", "read", err)
		return errExit()
	}
	var file interestsFile
	if err = json.Unmarshal(data, &file); err != nil {
		printRuntimeErr(ctx, "import", "parse", fmt.Errorf("%s: invalid JSON: %v", path, err))
		return errExit()
	}
	if len(file.Interests) == 0 {
		printRuntimeErr(ctx, "import", "parse", fmt.Errorf("%s lists no interests", path))
		return errExit()
	}
	for i, entry := range file.Interests {
		if entry.Id == "" {
			printRuntimeErr(ctx, "import", "parse", fmt.Errorf("%s: interest %d has no id", path, i))
			return errExit()
		}
	}

	s, err := newSession()
	if err != nil {
		printSessionErr(ctx, "import", err)
		return errExit()
	}
	if err = s.client.ReplaceInterestList(s.ctx, file.Interests); err != nil {
		printRuntimeErr(ctx, "import", "write", err)
		return errExit()
	}
	current, err := s.client.CurrentInterests(s.ctx)
	if err != nil {
		printRuntimeErr(ctx, "import", "verify", err)
		return errExit()
	}
	s.log.Info().
		Int("pushed", len(file.Interests)).
		Int("reported", len(current)).
		Msg("interest list replaced")
	fmt.Printf("Pushed %d interests, account now reports %d\n", len(file.Interests), len(current))
	return nil
}
