package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull the remote question set and merge it with local data",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.Close()

			if !application.cfg.Remote.Enabled() {
				return fmt.Errorf("no sync endpoint configured: set REVTRACK_SYNC_URL or remote.base_url")
			}

			if application.syncer.Run(context.Background()) {
				fmt.Println("Merged remote data into the local set.")
			} else {
				fmt.Println("Local data is already authoritative; nothing merged.")
			}
			return nil
		},
	}
}
