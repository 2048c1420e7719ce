package cmd

import (
	"fmt"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var currentBuildArgs BuildArgs

func Execute(args []string, bArgs BuildArgs) error {
	currentBuildArgs = bArgs
	app := cli.App{
		Name:                  "p13nctl",
		HelpName:              "p13nctl",
		Usage:                 "A cleaner for the interests X keeps on your account.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "p13nctl <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "clean",
				Usage:                  "disable every interest on the account",
				Action:                 clean,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            CleanDescription,
				Flags:                  cleanFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "report",
				Aliases:                []string{"r"},
				Usage:                  "show what clean would disable, without writing",
				Action:                 report,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ReportDescription,
				Flags:                  reportFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "reset",
				Usage:                  "clear the disabled interests list",
				Action:                 reset,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ResetDescription,
				Flags:                  resetFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "export",
				Aliases:                []string{"e"},
				Usage:                  "save the raw interests payload to a file",
				Action:                 export,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ExportDescription,
				Flags:                  exportFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "import",
				Aliases:                []string{"i"},
				Usage:                  "replace the interest list from a file",
				Action:                 importInterests,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ImportDescription,
				Flags:                  importFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:               "init",
				Usage:              "create a sample credentials file",
				Action:             initConfig,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        InitDescription,
			},
			{
				Name:               "login",
				Usage:              "store a session in the OS keyring",
				Action:             login,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        LoginDescription,
			},
			{
				Name:               "logout",
				Usage:              "remove the stored session",
				Action:             logout,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        LogoutDescription,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints the installed version of p13nctl",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             getVersion,
			},
		},
		Action:                 clean,
		Flags:                  cleanFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	return app.Run(args)
}
