package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tizenfx/go-tizen-api"
	"github.com/urfave/cli/v2"
)

const (
	flagFile     = "file"
	flagKind     = "kind"
	flagKey      = "key"
	flagLogLevel = "log-level"
)

func newApp() *cli.App {
	fileFlag := &cli.StringFlag{
		Name:     flagFile,
		Aliases:  []string{"f"},
		Usage:    "JSON file holding the notification",
		EnvVars:  []string{"TIZEN_INSPECT_FILE"},
		Required: true,
	}

	return &cli.App{
		Name:  "tizen-inspect",
		Usage: "Inspect a notification snapshot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "Log level (panic, fatal, error, warning, info, debug, trace)",
				Value:   "warning",
				EnvVars: []string{"TIZEN_INSPECT_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String(flagLogLevel))
			if err != nil {
				return err
			}

			logrus.SetLevel(level)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the notification summary with its style and extension keys",
				Flags:  []cli.Flag{fileFlag},
				Action: showAction,
			},
			{
				Name:  "style",
				Usage: "Print one style of the notification",
				Flags: []cli.Flag{
					fileFlag,
					&cli.StringFlag{
						Name:     flagKind,
						Usage:    "Style kind (active, lock, indicator, bigpicture)",
						Required: true,
					},
				},
				Action: styleAction,
			},
			{
				Name:  "extension",
				Usage: "Print one extension bundle of the notification",
				Flags: []cli.Flag{
					fileFlag,
					&cli.StringFlag{
						Name:     flagKey,
						Usage:    "Extension key",
						Required: true,
					},
				},
				Action: extensionAction,
			},
		},
	}
}

func showAction(c *cli.Context) error {
	args, err := readEventArgs(c.String(flagFile))
	if err != nil {
		return err
	}

	styles := make([]string, 0, len(args.StyleKeys()))

	for _, key := range args.StyleKeys() {
		styles = append(styles, string(key))
	}

	fmt.Fprintln(c.App.Writer, args.String())
	fmt.Fprintf(c.App.Writer, "styles: %v\n", strings.Join(styles, ", "))
	fmt.Fprintf(c.App.Writer, "extensions: %v\n", strings.Join(args.ExtensionKeys(), ", "))

	return nil
}

func styleAction(c *cli.Context) error {
	args, err := readEventArgs(c.String(flagFile))
	if err != nil {
		return err
	}

	key, err := tizen.ParseStyleKey(c.String(flagKind))
	if err != nil {
		return fmt.Errorf("unknown style kind: %w", err)
	}

	style, err := getStyle(args, key)
	if err != nil {
		return err
	}

	return writeJSON(c, style)
}

func extensionAction(c *cli.Context) error {
	args, err := readEventArgs(c.String(flagFile))
	if err != nil {
		return err
	}

	bundle, err := args.GetExtension(c.String(flagKey))
	if err != nil {
		return err
	}

	return writeJSON(c, bundle)
}

func getStyle(args tizen.EventArgs, key tizen.StyleKey) (tizen.Style, error) {
	switch key {
	case tizen.ActiveStyleKey:
		return tizen.GetStyle[tizen.ActiveStyle](args)

	case tizen.LockStyleKey:
		return tizen.GetStyle[tizen.LockStyle](args)

	case tizen.IndicatorStyleKey:
		return tizen.GetStyle[tizen.IndicatorStyle](args)

	case tizen.BigPictureStyleKey:
		return tizen.GetStyle[tizen.BigPictureStyle](args)

	default:
		return nil, tizen.ErrInvalidParameter
	}
}

func readEventArgs(path string) (tizen.EventArgs, error) {
	file, err := os.Open(path)
	if err != nil {
		return tizen.EventArgs{}, err
	}
	defer file.Close()

	logrus.WithField("file", path).Debug("Reading notification")

	return tizen.DecodeEventArgs(file)
}

func writeJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)

	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
