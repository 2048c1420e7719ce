package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

var (
	exportPath string

	exportFlags = append([]cli.Flag{
		cli.StringFlag{
			Name:        "output, o",
			Usage:       "write the interests payload to this file",
			Value:       DEF_EXPORT_FILE,
			Destination: &exportPath,
		},
	}, sessionFlags...)
)

func export(ctx *cli.Context) error {
	s, err := newSession()
	if err != nil {
		printSessionErr(ctx, "export", err)
		return errExit()
	}
	raw, err := s.client.RawInterests(s.ctx)
	if err != nil {
		printRuntimeErr(ctx, "export", "interests", err)
		return errExit()
	}
	var pretty bytes.Buffer
	if err = json.Indent(&pretty, raw, "", "  "); err != nil {
		printRuntimeErr(ctx, "export", "encode", err)
		return errExit()
	}
	pretty.WriteByte('\n')
	err = afero.WriteFile(appFs, exportPath, pretty.Bytes(), 0644)
	if err != nil {
		printRuntimeErr(ctx, "export", "write", err)
		return errExit()
	}
	fmt.Printf("Saved %d interests to %s\n", countInterests(raw), exportPath)
	return nil
}

// countInterests reports how many entries the interested_in field
// carries. The payload was already shape-checked by the client, so a
// missing field simply counts as zero.
func countInterests(raw []byte) int {
	var body struct {
		InterestedIn []json.RawMessage `json:"interested_in"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0
	}
	return len(body.InterestedIn)
}
