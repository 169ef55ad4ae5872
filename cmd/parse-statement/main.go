package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"credit-backoffice/internal/config"
	"credit-backoffice/internal/dto"
	"credit-backoffice/internal/services"
	"credit-backoffice/internal/statement"

	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

type fileReport struct {
	File   string                   `json:"file"`
	Report dto.IncomeReportResponse `json:"report"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("parse-statement", flag.ContinueOnError)
	flags.SetOutput(stderr)
	layout := flags.String("layout", statement.LayoutEnglish, "statement layout: english or kaspi")
	exclude := flags.String("exclude", "", "comma-separated phrases marking transfers from the applicant's own accounts")
	verbose := flags.Bool("v", false, "log skipped rows to stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	parser, err := services.NewStatementParser(config.StatementConfig{
		Layout:          *layout,
		ExcludedSources: splitList(*exclude),
	}, logger)
	if err != nil {
		return err
	}

	files := flags.Args()
	if len(files) == 0 {
		files = []string{stdinName}
	}

	reports := make([]fileReport, len(files))

	g, ctx := errgroup.WithContext(context.Background())
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			text, err := readStatement(name, stdin)
			if err != nil {
				return err
			}

			reports[i] = fileReport{
				File:   name,
				Report: dto.NewIncomeReportResponse(parser.Parse(text)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if len(reports) == 1 {
		return encoder.Encode(reports[0].Report)
	}
	return encoder.Encode(reports)
}

func readStatement(name string, stdin io.Reader) (string, error) {
	if name == stdinName {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", name, err)
	}
	return string(content), nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
