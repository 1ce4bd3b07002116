package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shoesandsocks/postgraph/internal/config"
	"github.com/shoesandsocks/postgraph/internal/output"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var globalFlag bool
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a starter config file with the default source and options.

By default the file is ./postgraph.yaml. With --global it is written to the
user config dir and applies wherever no project file exists. An existing
file is left untouched.

Examples:
  postgraph init                                 # ./postgraph.yaml
  postgraph init --global                        # ~/.config/postgraph/config.yaml
  postgraph init --path site/postgraph.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, pathFlag, globalFlag)
		},
	}

	cmd.Flags().BoolVar(&globalFlag, "global", false, "Write the user-wide config instead of ./postgraph.yaml")
	cmd.Flags().StringVar(&pathFlag, "path", "", "Write the config to this path")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, pathFlag string, globalFlag bool) error {
	printer := newPrinter(cmd)

	path, err := initPath(pathFlag, globalFlag)
	if err != nil {
		return reportError(printer, err)
	}

	file, created, err := config.LoadOrCreateAt(path)
	if err != nil {
		return reportError(printer, classifyError("writing config", err))
	}

	message := fmt.Sprintf("Created %s", path)
	if !created {
		message = fmt.Sprintf("%s already exists", path)
	}
	if err := printer.Success(map[string]any{
		"message": message,
		"path":    path,
		"created": created,
		"content": file.ContentDir,
	}); err != nil {
		return err
	}

	if !printer.IsJSON() {
		printer.Section("Source")
		printer.KeyValue("Content", orNone(file.ContentDir))
		printer.KeyValue("Posts", orNone(file.PostsFile))
		printer.KeyValue("Data", orNone(file.DataFile))
	}
	return nil
}

func orNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}

// initPath picks the config path from the flags.
func initPath(pathFlag string, globalFlag bool) (string, error) {
	switch {
	case pathFlag != "" && globalFlag:
		return "", output.NewUserError("cannot use both --path and --global")
	case pathFlag != "":
		return pathFlag, nil
	case globalFlag:
		dir := config.Dir()
		if dir == "" {
			return "", output.NewSystemError("cannot determine the user config directory")
		}
		return filepath.Join(dir, config.GlobalFile), nil
	default:
		return config.LocalFile, nil
	}
}
