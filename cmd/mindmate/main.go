package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mindmate/internal/app"
	"mindmate/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	repoURL = "https://github.com/mindmate/mindmate"
)

var (
	configPath string
	logTags    []string
	logNote    string
)

func loadApplication() (*app.Application, error) {
	path := configPath
	if path == "" {
		path = app.DefaultConfigPath()
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if cfg.LookupBaseURL == "" {
		cfg.LookupBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("MINDMATE_LOOKUP_URL")), "/")
	}
	return app.NewApplication(cfg)
}

func resolveTags(inputs []string) ([]string, error) {
	var tags []string
	for _, in := range inputs {
		tag, ok := app.NormalizeTag(in)
		if !ok {
			return nil, fmt.Errorf("unknown tag %q (choose from: %s)", in, strings.Join(app.TagVocabulary, ", "))
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func main() {
	root := &cobra.Command{
		Use:     "mindmate",
		Short:   "MindMate - a local wellness companion",
		Long:    "MindMate is a local-first wellness companion: log daily activities and chat with context-aware, supportive replies.\n\nRun without arguments for the interactive chat panel.\n\nFor more information, visit: " + repoURL,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := loadApplication()
			if err != nil {
				return err
			}
			defer application.Close()

			p := tea.NewProgram(tui.New(application), tea.WithAltScreen())
			application.Activities.Subscribe(func() {
				p.Send(tui.ActivitiesChangedMsg{})
			})
			_, err = p.Run()
			return err
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record a daily activity entry",
		Long:  "Record a daily activity entry with quick tags and an optional note.\n\nExamples:\n  - mindmate log -t workout -t walk\n  - mindmate log -t meditation -n \"ten quiet minutes\"\n  - mindmate log -n \"slow morning, still showed up\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := resolveTags(logTags)
			if err != nil {
				return err
			}
			application, err := loadApplication()
			if err != nil {
				return err
			}
			defer application.Close()

			entry, err := application.Activities.Add(tags, logNote)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s", entry.Date)
			if len(entry.Tags) > 0 {
				fmt.Printf(" — %s", strings.Join(entry.Tags, ", "))
			}
			if entry.Note != "" {
				fmt.Printf(" (%s)", entry.Note)
			}
			fmt.Println()
			return nil
		},
	}
	logCmd.Flags().StringArrayVarP(&logTags, "tag", "t", nil, "Activity tag (repeatable): "+strings.Join(app.TagVocabulary, "|"))
	logCmd.Flags().StringVarP(&logNote, "note", "n", "", "Optional free-text note")
	root.AddCommand(logCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print today's activity summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := loadApplication()
			if err != nil {
				return err
			}
			defer application.Close()

			part := app.DaypartOf(time.Now())
			fmt.Printf("%s %s, MindMate\n", part.Emoji(), part.Greeting())
			fmt.Println(application.Activities.Summary().Banner())
			for _, e := range application.Activities.Today() {
				line := "  " + e.CreatedAt.Format("15:04")
				if len(e.Tags) > 0 {
					line += "  " + strings.Join(e.Tags, ", ")
				}
				if e.Note != "" {
					line += "  " + e.Note
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	root.AddCommand(summaryCmd)

	sendCmd := &cobra.Command{
		Use:   "send [message]",
		Short: "Send one chat message and print the reply",
		Long:  "Send a single chat message without the interactive panel. Reads from stdin when no message argument is given; this is also the hook a voice frontend uses to deliver finalized transcripts.\n\nExamples:\n  - mindmate send \"what did I do today\"\n  - echo \"I feel anxious\" | mindmate send",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigChan
				cancel()
			}()

			text := ""
			if len(args) > 0 {
				text = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				text = strings.TrimSpace(string(data))
			}
			if text == "" {
				return fmt.Errorf("no message provided")
			}

			application, err := loadApplication()
			if err != nil {
				return err
			}
			defer application.Close()

			_, reply, err := application.Session.Send(ctx, text)
			if err != nil {
				return err
			}
			fmt.Println(reply)
			return nil
		},
	}
	root.AddCommand(sendCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
