package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pkt.systems/askdoc"
	"pkt.systems/askdoc/internal/format"
	"pkt.systems/askdoc/schema"
	"pkt.systems/pslog"
)

func newChatCmd() *cobra.Command {
	flags := sessionFlags{}
	var uploadPath string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive document chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, cfg, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderer := format.NewPlainRenderer()

			banner := color.New(color.FgGreen, color.Bold).SprintFunc()
			fmt.Fprintln(out, banner("askdoc"))
			fmt.Fprintf(out, "backend: %s, session: %s\n", cfg.Server.BaseURL, session.SessionID())
			if err := session.Health(ctx); err != nil {
				pslog.Ctx(ctx).Warn("backend health probe failed", "err", err)
				fmt.Fprintln(out, "warning: backend is not reachable; uploads and questions will fail")
			}
			fmt.Fprintln(out, "type a question, or /help for commands")
			fmt.Fprintln(out)

			events, cancelEvents := session.Subscribe()
			defer cancelEvents()
			done := make(chan struct{})
			defer close(done)
			go printEvents(out, renderer, events, done)

			if uploadPath != "" {
				if _, err := uploadFile(ctx, session, uploadPath); err != nil {
					return err
				}
			}

			return repl(ctx, cmd.InOrStdin(), out, session)
		},
	}
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&flags.serverURL, "server", "", "backend base URL")
	cmd.Flags().StringVar(&flags.sessionID, "session", "", "session id")
	cmd.Flags().StringVarP(&uploadPath, "file", "f", "", "PDF to upload before the first prompt")
	return cmd
}

// printEvents renders session events as they arrive. Source visibility
// applies to messages printed after the toggle; scrolled-by output is not
// rewritten.
func printEvents(out io.Writer, renderer *format.PlainRenderer, events <-chan schema.SessionEvent, done <-chan struct{}) {
	visible := false
	for {
		select {
		case <-done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			switch event.Type {
			case schema.SessionEventTimeline:
				for _, line := range renderer.FormatMessage(event.Timeline.Message, visible) {
					fmt.Fprintln(out, line)
				}
			case schema.SessionEventStatus:
				if line := renderer.FormatStatus(event.Status); line != "" {
					fmt.Fprintln(out, line)
				}
			case schema.SessionEventDocument:
				fmt.Fprintln(out, renderer.FormatDocument(event.Document.Document))
			case schema.SessionEventSources:
				visible = event.Sources.Visible
				if visible {
					fmt.Fprintln(out, "sources shown")
				} else {
					fmt.Fprintln(out, "sources hidden")
				}
			}
		}
	}
}

func repl(ctx context.Context, in io.Reader, out io.Writer, session askdoc.Session) error {
	prompt := color.New(color.FgCyan, color.Bold).SprintFunc()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		fmt.Fprint(out, prompt("> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case trimmed == "/quit", trimmed == "/exit", trimmed == "exit":
			return nil
		case trimmed == "/help":
			printHelp(out)
		case trimmed == "/sources":
			if _, err := session.ToggleSources(ctx, schema.ToggleSourcesRequest{}); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case trimmed == "/history":
			resp, err := session.History(ctx, schema.HistoryRequest{})
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			for i, entry := range resp.Entries {
				fmt.Fprintf(out, "%3d  %s\n", i+1, entry)
			}
		case strings.HasPrefix(trimmed, "/upload"):
			path := strings.TrimSpace(strings.TrimPrefix(trimmed, "/upload"))
			if path == "" {
				fmt.Fprintln(out, "usage: /upload <path-to-pdf>")
				continue
			}
			// Runs in the background; a system message lands on the timeline
			// when the backend finishes processing.
			go func() {
				if _, err := uploadFile(ctx, session, path); err != nil {
					fmt.Fprintf(out, "upload failed: %v\n", err)
				}
			}()
		case strings.HasPrefix(trimmed, "/"):
			fmt.Fprintf(out, "unknown command %q; try /help\n", trimmed)
		default:
			if _, err := session.SubmitQuery(ctx, schema.SubmitQueryRequest{Text: line}); err != nil {
				switch {
				case errors.Is(err, schema.ErrNoDocument):
					fmt.Fprintln(out, "upload a document first: /upload <path-to-pdf>")
				case errors.Is(err, schema.ErrSessionBusy):
					fmt.Fprintln(out, "still working on the previous request")
				default:
					fmt.Fprintf(out, "error: %v\n", err)
				}
			}
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  /upload <path>  upload a PDF to the session")
	fmt.Fprintln(out, "  /sources        toggle source excerpts on answers")
	fmt.Fprintln(out, "  /history        list previously asked questions")
	fmt.Fprintln(out, "  /quit           leave the session")
	fmt.Fprintln(out, "anything else is sent to the document as a question")
}
