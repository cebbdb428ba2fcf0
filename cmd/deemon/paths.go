package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digitalec/deemon/internal/appdata"
	"github.com/digitalec/deemon/internal/messages"
)

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.PathsUse,
		Short: messages.PathsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := appdata.Resolve(newSystem())
			rows := [][2]string{
				{messages.PathsRootLabel, p.Root},
				{messages.PathsDirLabel, p.Dir},
				{messages.PathsConfig, p.ConfigFile},
				{messages.PathsDatabase, p.DatabaseFile},
				{messages.PathsLogFile, p.LogFile},
				{messages.PathsBackups, p.BackupDir},
			}
			for _, row := range rows {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), messages.PathsLineFmt, row[0], row[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
