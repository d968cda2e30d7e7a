package main

import (
	"context"

	"github.com/spf13/cobra"

	"pawmatch/cmd/paws/chat"
)

// chatCmd starts the interactive interview. It is also the default when
// paws is run without a subcommand.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive breed-matching chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd.Context())
	},
}

func runChat(ctx context.Context) error {
	rt, err := buildRuntime(ctx, logger)
	if err != nil {
		return err
	}
	engine, err := rt.buildEngine(ctx, logger)
	if err != nil {
		return err
	}
	return chat.Run(engine, logger)
}
