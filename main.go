package main

import (
	"fmt"
	"os"

	"github.com/p13nctl/p13nctl/cmd"
)

// Filled by the linker on release builds.
var (
	version   = "devel"
	commit    = ""
	date      = ""
	buildType = "source"
)

func main() {
	build := cmd.BuildArgs{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuildType: buildType,
	}
	if err := cmd.Execute(os.Args, build); err != nil {
		fmt.Fprintf(os.Stderr, "p13nctl: %v\n", err)
		os.Exit(1)
	}
}
