/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/webstd/weburl"
	"github.com/webstd/weburl/internal/batch"
)

// Execute runs the weburl CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "weburl",
		Usage:                  "Parse, resolve, and inspect URLs per the WHATWG URL Standard",
		Version:                version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			parseCommand(),
			canParseCommand(),
			normalizeCommand(),
			originCommand(),
			queryCommand(),
			batchCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func baseFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "base",
		Aliases: []string{"b"},
		Usage:   "Base URL to resolve the reference against",
	}
}

func parseURLArg(cmd *cli.Command) (*weburl.URL, error) {
	if cmd.NArg() < 1 {
		return nil, fmt.Errorf("usage: weburl %s [-b base] <url>", cmd.Name)
	}
	var base *weburl.URL
	if b := cmd.String("base"); b != "" {
		var err error
		base, err = weburl.New(b)
		if err != nil {
			return nil, fmt.Errorf("invalid base: %w", err)
		}
	}
	return weburl.Parse(cmd.Args().First(), base)
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a URL and print its components",
		ArgsUsage: "<url>",
		Flags:     []cli.Flag{baseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			u, err := parseURLArg(cmd)
			if err != nil {
				return err
			}
			printComponents(os.Stdout, u)
			return nil
		},
	}
}

func printComponents(w *os.File, u *weburl.URL) {
	bold, reset := "", ""
	if term.IsTerminal(int(w.Fd())) {
		bold, reset = "\033[1m", "\033[0m"
	}
	fmt.Fprintf(w, "%shref:%s     %s\n", bold, reset, u.Href())
	fmt.Fprintf(w, "%sprotocol:%s %s\n", bold, reset, u.Protocol())
	fmt.Fprintf(w, "%shost:%s     %s\n", bold, reset, u.Host())
	fmt.Fprintf(w, "%shostname:%s %s\n", bold, reset, u.Hostname())
	fmt.Fprintf(w, "%sport:%s     %s\n", bold, reset, u.Port())
	fmt.Fprintf(w, "%spathname:%s %s\n", bold, reset, u.Pathname())
	fmt.Fprintf(w, "%ssearch:%s   %s\n", bold, reset, u.Search())
	fmt.Fprintf(w, "%shash:%s     %s\n", bold, reset, u.Hash())
	fmt.Fprintf(w, "%sorigin:%s   %s\n", bold, reset, u.Origin())
}

func canParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "canparse",
		Usage:     "Report (via exit code) whether a URL reference would parse",
		ArgsUsage: "<url>",
		Flags:     []cli.Flag{baseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return fmt.Errorf("usage: weburl canparse [-b base] <url>")
			}
			var base *weburl.URL
			if b := cmd.String("base"); b != "" {
				var err error
				base, err = weburl.New(b)
				if err != nil {
					return fmt.Errorf("invalid base: %w", err)
				}
			}
			if !weburl.CanParse(cmd.Args().First(), base) {
				fmt.Println("false")
				os.Exit(1)
			}
			fmt.Println("true")
			return nil
		},
	}
}

func normalizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Parse a URL and print its canonical serialization",
		ArgsUsage: "<url>",
		Flags:     []cli.Flag{baseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			u, err := parseURLArg(cmd)
			if err != nil {
				return err
			}
			fmt.Println(u.Href())
			return nil
		},
	}
}

func originCommand() *cli.Command {
	return &cli.Command{
		Name:      "origin",
		Usage:     "Print a URL's tuple origin, or \"null\"",
		ArgsUsage: "<url>",
		Flags:     []cli.Flag{baseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			u, err := parseURLArg(cmd)
			if err != nil {
				return err
			}
			fmt.Println(u.Origin())
			return nil
		},
	}
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Inspect or edit a URL's query string",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			baseFlag(),
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "name=value pair to set (replacing any existing value), may repeat",
			},
			&cli.StringSliceFlag{
				Name:  "append",
				Usage: "name=value pair to append, may repeat",
			},
			&cli.StringSliceFlag{
				Name:  "delete",
				Usage: "name to delete entirely, may repeat",
			},
			&cli.BoolFlag{
				Name:  "sort",
				Usage: "sort query parameters by name before printing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			u, err := parseURLArg(cmd)
			if err != nil {
				return err
			}
			sp := u.SearchParams()
			for _, name := range cmd.StringSlice("delete") {
				sp.Delete(name, nil)
			}
			for _, kv := range cmd.StringSlice("set") {
				name, value := splitPair(kv)
				sp.Set(name, value)
			}
			for _, kv := range cmd.StringSlice("append") {
				name, value := splitPair(kv)
				sp.Append(name, value)
			}
			if cmd.Bool("sort") {
				sp.Sort()
			}
			fmt.Println(u.Href())
			return nil
		},
	}
}

func splitPair(s string) (name, value string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Resolve every entry of a YAML batch file and print the results",
		ArgsUsage: "<file.yaml>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return fmt.Errorf("usage: weburl batch <file.yaml>")
			}
			logger := newBatchLogger()
			f, err := batch.Load(cmd.Args().First())
			if err != nil {
				logger.Error("load batch file failed", "path", cmd.Args().First(), "error", err)
				return err
			}
			logger.Info("batch starting", "entries", len(f.Entries))
			failures := 0
			for _, entry := range f.Entries {
				var base *weburl.URL
				if entry.Base != "" {
					base, err = weburl.New(entry.Base)
					if err != nil {
						logger.Error("invalid base", "entry", entry.Name, "base", entry.Base, "error", err)
						failures++
						continue
					}
				}
				u, err := weburl.Parse(entry.Ref, base)
				if err != nil {
					logger.Error("parse failed", "entry", entry.Name, "ref", entry.Ref, "error", err)
					failures++
					continue
				}
				if len(entry.Append) > 0 {
					sp := u.SearchParams()
					for name, value := range entry.Append {
						sp.Append(name, value)
					}
				}
				fmt.Printf("%s: %s\n", entry.Name, u.Href())
			}
			logger.Info("batch finished", "entries", len(f.Entries), "failures", failures)
			if failures > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}

// newBatchLogger builds the structured logger used for batch-run
// diagnostics. Per-entry results still go to stdout via fmt.Printf so they
// stay easy to pipe; slog carries everything about the run itself
// (start/finish counts, load failures, per-entry errors) to stderr.
func newBatchLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
