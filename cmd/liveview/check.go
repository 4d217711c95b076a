package main

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/liveview/dcv"
	"github.com/sonnes/liveview/errext"
	renderjson "github.com/sonnes/liveview/render/json"
)

func (a *app) checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check that the DCV Web Client SDK is installed",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the report as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := filepath.Join(cmd.String("static-dir"), "dcvjs")
			report := dcv.Inspect(afero.NewOsFs(), dir)
			if cmd.Bool("json") {
				r := &renderjson.Renderer{Indent: true}
				if err := r.Render(a.stdout, report); err != nil {
					return err
				}
			} else {
				a.printer.SDKReport(report)
			}
			if !report.OK() {
				return errext.WithHint(
					errors.New("DCV SDK is "+report.Status.String()),
					"download it from "+dcv.SDKDownloadURL,
				)
			}
			return nil
		},
	}
}
