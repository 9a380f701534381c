package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/cascade/pkg/style"
)

func init() {
	registerCommand(newPropsCmd)
}

func newPropsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "props [filter]",
		Short: "List style properties",
		Long: `List every style property with its value kind, default and propagation
flags. A filter keeps the properties whose name contains it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}
			var rows [][]string
			for _, p := range style.Props() {
				meta := p.Meta()
				if !strings.Contains(meta.Name, filter) {
					continue
				}
				rows = append(rows, []string{meta.Name, meta.Kind.String(), formatValue(p, meta.Default), flagNames(meta.Flags)})
			}
			renderTable(cmd.OutOrStdout(), []string{"PROPERTY", "KIND", "DEFAULT", "FLAGS"}, rows)
			return nil
		},
	}
}
