package cmd

import "time"

const (
	DEF_TIMEOUT      = time.Second * 30
	DEF_EXPORT_FILE  = "current_interests.json"
	DEF_EXAMPLE_FILE = "interests_example.json"
	DEF_LOG_FILE     = "p13nctl.log"
)

const DESCRIPTION = `
p13nctl manages the interest categories X keeps on your account.
It can disable every interest in one go, report what would change,
push a curated interest list, and store your session tokens in the
OS keyring so you only have to collect them once.
`

const (
	CleanDescription = `The clean command fetches your current and already disabled
interests, merges both lists and writes the merged list back as
disabled, so the account ends up with every interest switched off.
Running it again after X re-derives new interests disables those
too without re-enabling anything.

Example:
        p13nctl clean
                  OR
        p13nctl

`
	ReportDescription = `The report command performs a dry run of clean: it fetches
both interest lists and prints how many interests are active, how
many are already disabled and the ids the merged write would
contain. Nothing is written to the account.

Example:
        p13nctl report

`
	ResetDescription = `The reset command clears the disabled interests list on the
account, undoing previous clean runs. X will start deriving
interests again from your activity.

Example:
        p13nctl reset

`
	ExportDescription = `The export command saves the raw interests payload exactly as
the API returned it, pretty printed, so you can inspect or archive
the interest ids before cleaning.

Example:
        p13nctl export -o my_interests.json

`
	ImportDescription = `The import command reads an interests file and replaces the
account interest list with its entries, then fetches the list
again to report what the account ended up with. Use --example to
write a starter file you can edit.

Example:
        p13nctl import -e
        p13nctl import interests_example.json

`
	InitDescription = `The init command writes a sample credentials file with
placeholder values and prints where each token comes from. Fill it
in and rename it to config.json, or keep it elsewhere and pass
--config.

Example:
        p13nctl init

`
	LoginDescription = `The login command opens a masked form for the four session
tokens and stores them in the OS keyring. Later runs pick the
stored session up automatically, so no credentials file is needed.

Example:
        p13nctl login

`
	LogoutDescription = `The logout command removes the session stored by login from
the OS keyring.

Example:
        p13nctl logout

`
)

const (
	HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`
	CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`
)
