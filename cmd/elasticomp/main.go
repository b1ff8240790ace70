// Package main is the entry point for the elasticomp CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ecli "github.com/elasticomp/elasticomp/internal/cli"
	"github.com/elasticomp/elasticomp/internal/setup"
	"github.com/elasticomp/elasticomp/pkg/version"
	"github.com/urfave/cli/v3"
)

// templateCachePath resolves the XDG cache file holding template names.
func templateCachePath() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, _ := os.UserHomeDir()
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "elasticomp", "templates.yml")
}

// completionWords extracts the shell's words from os.Args. cmd.Args()
// cannot be used here because urfave/cli swallows "--", which bash always
// inserts as a separator before COMP_WORDS.
func completionWords(args []string) []string {
	var words []string
	foundComplete := false
	skipFirstDoubleDash := true
	for _, arg := range args {
		if arg == "complete" && !foundComplete {
			foundComplete = true
			continue
		}
		if foundComplete {
			if arg == "--" && skipFirstDoubleDash {
				skipFirstDoubleDash = false
				continue
			}
			words = append(words, arg)
		}
	}
	return words
}

func newApp() *cli.Command {
	cachePath := templateCachePath()

	return &cli.Command{
		Name:                  "elasticomp",
		Usage:                 "Shell completion helper for the elasticluster CLI",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("ELASTICOMP_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to elasticomp configuration file",
				Sources: cli.EnvVars("ELASTICOMP_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:            "complete",
				Usage:           "Compute completion candidates for an elasticluster command line",
				ArgsUsage:       "[words...]",
				Hidden:          true, // Used internally by the shell hook
				SkipFlagParsing: true, // Words may start with "-" and belong to elasticluster
				HideHelp:        true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					words := completionWords(os.Args)

					// COMP_CWORD arrives via the environment, set by the hook.
					cword := len(words) - 1
					if cwordStr := os.Getenv("ELASTICOMP_COMP_CWORD"); cwordStr != "" {
						_, _ = fmt.Sscanf(cwordStr, "%d", &cword)
					}

					return ecli.Complete(ecli.CompleteParams{
						ConfigPath: cmd.String("config"),
						CachePath:  cachePath,
						LogLevel:   cmd.String("log-level"),
						Words:      words,
						CWord:      cword,
						Out:        os.Stdout,
					})
				},
			},
			{
				Name:  "clusters",
				Usage: "List cluster names found in the storage directory",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ecli.Clusters(ecli.ListParams{
						ConfigPath: cmd.String("config"),
						CachePath:  cachePath,
						LogLevel:   cmd.String("log-level"),
						Out:        os.Stdout,
					})
				},
			},
			{
				Name:  "templates",
				Usage: "List configuration templates known to elasticluster",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "Bypass the template cache and query elasticluster directly",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ecli.Templates(ecli.ListParams{
						ConfigPath: cmd.String("config"),
						CachePath:  cachePath,
						LogLevel:   cmd.String("log-level"),
						NoCache:    cmd.Bool("no-cache"),
						Out:        os.Stdout,
					})
				},
			},
			{
				Name:  "hook",
				Usage: "Print shell completion code for manual installation",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   "auto",
						Usage:   "Shell type: bash, zsh, or auto",
						Sources: cli.EnvVars("ELASTICOMP_SHELL"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ecli.Hook(ecli.HookParams{
						Shell: ecli.DetectShell(cmd.String("shell")),
						Out:   os.Stdout,
					})
				},
			},
			{
				Name:  "setup",
				Usage: "Automatically install or uninstall the shell hook",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   "auto",
						Usage:   "Shell type: bash, zsh, or auto",
						Sources: cli.EnvVars("ELASTICOMP_SHELL"),
					},
					&cli.BoolFlag{
						Name:    "uninstall",
						Aliases: []string{"u"},
						Usage:   "Uninstall the shell hook instead of installing it",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					shell := ecli.DetectShell(cmd.String("shell"))

					var result *setup.Result
					var err error

					if cmd.Bool("uninstall") {
						result, err = setup.UninstallHook(shell)
					} else {
						result, err = setup.InstallHook(shell)
					}

					if err != nil {
						return err
					}

					fmt.Println(result.Message)
					if result.Updated && !cmd.Bool("uninstall") {
						fmt.Println("\nTo activate in current shell, run:")
						fmt.Printf("  source %s\n", result.RCFile)
					}

					return nil
				},
			},
			{
				Name:  "status",
				Usage: "Show current elasticomp configuration status",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   "auto",
						Usage:   "Shell type: bash, zsh, or auto",
						Sources: cli.EnvVars("ELASTICOMP_SHELL"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ecli.Status(ecli.StatusParams{
						ConfigPath: cmd.String("config"),
						CachePath:  cachePath,
						LogLevel:   cmd.String("log-level"),
						Shell:      cmd.String("shell"),
						Out:        os.Stdout,
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate an elasticomp configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := cmd.String("config")
					if configPath == "" && cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return ecli.Validate(configPath, os.Stdout)
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
