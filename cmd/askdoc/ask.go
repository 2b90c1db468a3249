package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/askdoc/internal/format"
	"pkt.systems/askdoc/schema"
)

func newAskCmd() *cobra.Command {
	flags := sessionFlags{}
	var uploadPath string
	var showSources bool
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the document a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, _, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			if uploadPath != "" {
				if _, err := uploadFile(ctx, session, uploadPath); err != nil {
					return err
				}
			}
			if showSources {
				if _, err := session.ToggleSources(ctx, schema.ToggleSourcesRequest{}); err != nil {
					return err
				}
			}
			resp, err := session.SubmitQuery(ctx, schema.SubmitQueryRequest{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			renderer := format.NewPlainRenderer()
			for _, line := range renderer.FormatMessage(resp.Message, showSources) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&flags.serverURL, "server", "", "backend base URL")
	cmd.Flags().StringVar(&flags.sessionID, "session", "", "session id")
	cmd.Flags().StringVarP(&uploadPath, "file", "f", "", "PDF to upload before asking")
	cmd.Flags().BoolVar(&showSources, "sources", false, "print source excerpts with the answer")
	return cmd
}
