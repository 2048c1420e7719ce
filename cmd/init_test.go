package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/p13nctl/p13nctl/internal/creds"
)

func TestInitCommand(t *testing.T) {
	setupCmdTest(t, "http://127.0.0.1:1")

	ctx := cmdContext(t, "init")
	if err := initConfig(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	data, err := afero.ReadFile(appFs, creds.DEF_SAMPLE_FILE)
	if err != nil {
		t.Fatalf("read sample file: %v", err)
	}
	if !strings.Contains(string(data), "YOUR_") {
		t.Errorf("sample file missing placeholders: %s", data)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	setupCmdTest(t, "http://127.0.0.1:1")

	ctx := cmdContext(t, "init")
	if err := initConfig(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := initConfig(ctx); err == nil {
		t.Fatal("expected error when the sample file already exists")
	}
}
