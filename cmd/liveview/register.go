package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/liveview/core"
	"github.com/sonnes/liveview/errext"
	"github.com/sonnes/liveview/session/file"
)

func (a *app) registerCmd() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Record a session's live view URL in the local sessions file",
		Description: `Stores the presigned live view URL of a browser session so the viewer
can run with --session-store=file, without access to Parameter Store.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "live_view_url",
				Usage:    "Presigned live view URL of the session",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.String("browser_session_id")
			if id == "" {
				return errext.ArgumentError(errors.New("--browser_session_id is required"))
			}
			raw := cmd.String("live_view_url")
			u, err := url.Parse(raw)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return errext.ArgumentError(fmt.Errorf("invalid --live_view_url %q", raw))
			}

			now := time.Now().UTC()
			store := &file.Store{Path: cmd.String("sessions-file")}
			if err := store.Put(core.Session{ID: id, LiveViewURL: raw, UpdatedAt: &now}); err != nil {
				return fmt.Errorf("register session: %w", err)
			}

			a.printer.Success("Registered session %s", id)
			a.printer.Dim("Sessions file: %s", store.Path)
			return nil
		},
	}
}
