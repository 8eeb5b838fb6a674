package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/loglite/loglite/logger"
)

// Demo of the loglite logger.
//
// Usage:
//
//	loglite                      # buffered demo, dump to stdout
//	loglite --file app.log       # dump to a file (truncating it)
//	loglite --file app.log --append
//	loglite --color --disable INFO,WARNING
func main() {
	var (
		filePath string
		appendTo bool
		colorize bool
		disabled []string
	)

	root := &cobra.Command{
		Use:          "loglite",
		Short:        "Demo of the loglite categorized logger",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			l := logger.NewWithCapacity(8)

			if colorize {
				// A colored header is just a header string.
				l.SetHeader(logger.Info, color.GreenString("[INFO]"))
				l.SetHeader(logger.Warning, color.YellowString("[WARNING]"))
				l.SetHeader(logger.Error, color.RedString("[ERROR]"))
				l.SetHeader(logger.Fatal, color.MagentaString("[FATAL]"))
			}
			for _, name := range disabled {
				c, err := logger.ParseCategory(name)
				if err != nil {
					return err
				}
				l.SetEnabled(c, false)
			}

			// Immediate write, bypassing the buffer.
			if err := l.LogTo(logger.Info, "starting up", out); err != nil {
				return err
			}

			// Buffered logging batches work; a dump flushes it in one shot.
			l.Log(logger.Info, "cache warmed")
			l.Log(logger.Warning, "disk low")
			l.Log(logger.Error, "upstream timeout")

			if filePath != "" {
				mode := logger.Truncate
				if appendTo {
					mode = logger.Append
				}
				if err := l.DumpFile(filePath, mode); err != nil {
					return err
				}
				fmt.Fprintf(out, "dumped buffered logs to %s\n", filePath)
			} else if err := l.Dump(out); err != nil {
				return err
			}

			// Package-level variant: fixed prefixes, shared flags.
			return logger.GlobalLog(logger.Fatal, "shutting down", out)
		},
	}

	root.Flags().StringVarP(&filePath, "file", "f", "", "dump buffered logs to this file instead of stdout")
	root.Flags().BoolVar(&appendTo, "append", false, "append to the dump file instead of truncating it")
	root.Flags().BoolVar(&colorize, "color", false, "colorize category headers")
	root.Flags().StringSliceVar(&disabled, "disable", nil, "categories to disable (INFO, WARNING, ERROR, FATAL)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
