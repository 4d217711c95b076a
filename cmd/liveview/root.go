package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/liveview/errext"
	"github.com/sonnes/liveview/launcher"
	"github.com/sonnes/liveview/session/file"
)

func (a *app) rootCmd() *cli.Command {
	return &cli.Command{
		Name:      "liveview",
		Usage:     "Bedrock-AgentCore Browser Live Viewer",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Description: `Starts a local web server showing a live view of a remote browser
session. The session's presigned live view URL is read from Parameter
Store (/browser-session/<id>) or from a local sessions file.

The Amazon DCV Web Client SDK must be installed under <static-dir>/dcvjs;
run 'liveview check' to verify.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "browser_session_id",
				Usage:   "Browser session ID to view",
				Sources: cli.EnvVars("LIVEVIEW_SESSION_ID"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Server port",
				Value:   launcher.DefaultPort,
				Sources: cli.EnvVars("LIVEVIEW_PORT"),
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "Interface to bind (empty for all)",
				Sources: cli.EnvVars("LIVEVIEW_HOST"),
			},
			&cli.StringFlag{
				Name:    "static-dir",
				Usage:   "Directory containing the dcvjs/ SDK files",
				Value:   "static",
				Sources: cli.EnvVars("LIVEVIEW_STATIC_DIR"),
			},
			&cli.StringFlag{
				Name:    "session-store",
				Usage:   "Where to look up sessions: ssm, file",
				Value:   "ssm",
				Sources: cli.EnvVars("LIVEVIEW_SESSION_STORE"),
			},
			&cli.StringFlag{
				Name:    "sessions-file",
				Usage:   "Sessions file used by --session-store=file and register",
				Value:   file.DefaultPath(),
				Sources: cli.EnvVars("LIVEVIEW_SESSIONS_FILE"),
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, errext.ArgumentError(err)
			}
			log.SetLevel(level)
			return ctx, nil
		},
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return errext.ArgumentError(err)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			l := &launcher.Launcher{
				Printer:   a.printer,
				NewServer: a.serverFactory(ctx, cmd),
			}
			return l.Run(ctx, launcher.Options{
				SessionID: cmd.String("browser_session_id"),
				Port:      int(cmd.Int("port")),
			})
		},
		Commands: []*cli.Command{
			a.registerCmd(),
			a.checkCmd(),
		},
	}
}
