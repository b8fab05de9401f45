package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hyprnurture/internal/app"
	"hyprnurture/internal/config"
	"hyprnurture/internal/model"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var pipeline *app.App

	root := &cobra.Command{
		Use:          "outreach",
		Short:        "Generate personalized sales outreach from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// stdout carries the JSON result
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()})))

			pipeline = app.New(cfg)
			return nil
		},
	}

	get := func() *app.App { return pipeline }

	root.AddCommand(
		newGenerateCmd(get),
		newNewsCmd(get),
		newCompanyCmd(get),
	)

	return root
}

func newGenerateCmd(pipeline func() *app.App) *cobra.Command {
	var req model.GenerationRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draft a LinkedIn message and email for a prospect",
		Long: `Enrich the prospect with recent company news, company and person search
results, then ask the language model for a LinkedIn message and an HTML email.

Example:
  outreach generate --name "Jane Doe" --position CFO --company Acme --size 200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := pipeline().Generator.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Prospect name")
	cmd.Flags().StringVar(&req.Position, "position", "", "Prospect position")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company name")
	cmd.Flags().StringVar(&req.CompanySize, "size", "", "Company size")
	cmd.Flags().StringVar(&req.Note, "note", "", "Optional note for the model")
	for _, f := range []string{"name", "position", "company", "size"} {
		cmd.MarkFlagRequired(f)
	}

	return cmd
}

func newNewsCmd(pipeline func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "news <company>",
		Short: "List last week's business news for a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(pipeline().News.Recent(cmd.Context(), args[0]))
		},
	}
}

func newCompanyCmd(pipeline func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "company <company>",
		Short: "Look up a company profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(pipeline().Company.Lookup(cmd.Context(), args[0]))
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
