// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/chdiff/chdiff/internal/config"
	"github.com/chdiff/chdiff/internal/differ"
	"github.com/chdiff/chdiff/internal/guard"
	"github.com/chdiff/chdiff/internal/log"
	"github.com/chdiff/chdiff/internal/textdiff"
)

// InitApp builds the chdiff CLI command.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	app := &cli.Command{
		Name:      "chdiff",
		Usage:     "preview what a change will do to a file",
		ArgsUsage: "OLD NEW",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "context",
				Aliases: []string{"C"},
				Usage:   "unchanged lines shown around each change",
				Value:   contextFromConfig(),
			},
			&cli.BoolFlag{
				Name:    "report",
				Aliases: []string{"r"},
				Usage:   "print the reporting view instead of diff lines",
				Value:   false,
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "colorize output: auto, always or never",
				Value: "auto",
			},
		},
		Action: diffAction,
	}

	return app, nil
}

// diffAction runs one comparison and prints the requested view.
func diffAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return cli.Exit("chdiff: expected exactly two arguments: OLD NEW", 2)
	}

	limits := LimitsFromConfig()
	log.Debugf("limits: disabled=%t filesize=%d output=%d",
		limits.Disabled, limits.FileSizeThreshold, limits.OutputThreshold)

	encName, _ := config.GetString("diff.encoding", "utf-8")
	enc, err := guard.LookupEncoding(encName)
	if err != nil {
		return cli.Exit(fmt.Sprintf("chdiff: %v", err), 2)
	}

	d := differ.New(limits,
		differ.WithContext(cmd.Int("context")),
		differ.WithEncoding(enc))
	status := d.Diff(args[0], args[1])
	log.Debugf("diff status: %s", status)

	if cmd.Bool("report") {
		if r := d.ForReporting(); r != "" {
			fmt.Fprintln(os.Stdout, r)
		}
	} else {
		for _, line := range differ.Render(d.ForOutput(), useColor(cmd.String("color"))) {
			fmt.Fprintln(os.Stdout, line)
		}
	}

	if status != differ.StatusAvailable && status != differ.StatusNoDiff {
		return cli.Exit("", 1)
	}
	return nil
}

// LimitsFromConfig resolves the guard thresholds from configuration,
// falling back to the stock defaults. The engine itself never reads
// config; policy flows down as an explicit value.
func LimitsFromConfig() guard.Limits {
	limits := guard.DefaultLimits
	if v, err := config.GetBool("diff.disabled", false); err == nil {
		limits.Disabled = v
	}
	if v, err := config.GetInt("diff.filesize_threshold", int(guard.DefaultLimits.FileSizeThreshold)); err == nil {
		limits.FileSizeThreshold = int64(v)
	}
	if v, err := config.GetInt("diff.output_threshold", guard.DefaultLimits.OutputThreshold); err == nil {
		limits.OutputThreshold = v
	}
	return limits
}

func contextFromConfig() int {
	n, err := config.GetInt("diff.context", textdiff.DefaultContext)
	if err != nil || n < 0 {
		return textdiff.DefaultContext
	}
	return n
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
