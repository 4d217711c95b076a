package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/liveview/console"
	"github.com/sonnes/liveview/errext"
	"github.com/sonnes/liveview/launcher"
	"github.com/sonnes/liveview/server"
	"github.com/sonnes/liveview/session"
	"github.com/sonnes/liveview/session/file"
	"github.com/sonnes/liveview/session/paramstore"
)

// app holds the session store registry and server constructor used by CLI
// commands. Tests swap them for fakes.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	printer *console.Printer

	stores    map[string]func(ctx context.Context, cmd *cli.Command) (session.Store, error)
	newServer func(cfg server.Config) (launcher.Server, error)
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{
		stdout:  stdout,
		stderr:  stderr,
		printer: console.New(stdout),
		stores: map[string]func(ctx context.Context, cmd *cli.Command) (session.Store, error){
			"ssm": func(ctx context.Context, cmd *cli.Command) (session.Store, error) {
				return paramstore.New(ctx)
			},
			"file": func(ctx context.Context, cmd *cli.Command) (session.Store, error) {
				return &file.Store{Path: cmd.String("sessions-file")}, nil
			},
		},
	}
	a.newServer = func(cfg server.Config) (launcher.Server, error) {
		srv, err := server.New(cfg)
		if err != nil {
			return nil, err
		}
		a.printer.SDKReport(srv.SDK())
		return srv, nil
	}
	return a
}

func (a *app) store(ctx context.Context, cmd *cli.Command) (session.Store, error) {
	name := cmd.String("session-store")
	fn, ok := a.stores[name]
	if !ok {
		return nil, errext.ArgumentError(fmt.Errorf("unknown session store %q", name))
	}
	return fn(ctx, cmd)
}

// serverFactory returns a launcher.Factory that builds the viewer server
// from the command's flags.
func (a *app) serverFactory(ctx context.Context, cmd *cli.Command) launcher.Factory {
	return func(port int) (launcher.Server, error) {
		store, err := a.store(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return a.newServer(server.Config{
			Host:      cmd.String("host"),
			Port:      port,
			StaticDir: cmd.String("static-dir"),
			Store:     store,
			Logger:    log.Default(),
		})
	}
}
