package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"pdfnest/pdf"
)

func pagesCommand() *cli.Command {
	return &cli.Command{
		Name:      "pages",
		Usage:     "Print the pages a selector such as \"1-5,8\" refers to",
		ArgsUsage: "<selector>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "page-count",
				Usage: "Drop pages beyond this document length",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			selector, err := requireArg(cmd, "selector")
			if err != nil {
				return err
			}
			pages := pdf.ParsePageNumbers(selector)
			if n := cmd.Int("page-count"); n > 0 {
				if pages, err = pdf.FilterPages(pages, n); err != nil {
					return err
				}
			}
			if len(pages) == 0 {
				return pdf.ErrNoValidPages
			}
			fmt.Fprintln(cmd.Root().Writer, pdf.FormatPageNumbers(pages))
			return nil
		},
	}
}

func rangesCommand() *cli.Command {
	return &cli.Command{
		Name:      "ranges",
		Usage:     "Print the split ranges a selector such as \"1-5,6-10\" refers to",
		ArgsUsage: "<selector>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			selector, err := requireArg(cmd, "selector")
			if err != nil {
				return err
			}
			ranges := pdf.ParseSplitRanges(selector)
			if len(ranges) == 0 {
				return pdf.ErrNoValidRanges
			}
			for _, r := range ranges {
				fmt.Fprintln(cmd.Root().Writer, r)
			}
			return nil
		},
	}
}

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Copy selected pages into a new PDF",
		ArgsUsage: "<input.pdf>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pages", Aliases: []string{"p"}, Usage: "Page selector, e.g. 1,3,5-7", Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output PDF path"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := requireArg(cmd, "input")
			if err != nil {
				return err
			}
			pages := pdf.ParsePageNumbers(cmd.String("pages"))
			if len(pages) == 0 {
				return pdf.ErrNoValidPages
			}

			src, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			data, err := pdf.ExtractPages(ctx, bytes.NewReader(src), pages, progressPrinter(cmd))
			if err != nil {
				return err
			}

			output := cmd.String("output")
			if output == "" {
				output = filepath.Join(filepath.Dir(input), "extracted-pages-"+filepath.Base(input))
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintf(cmd.Root().ErrWriter, "Wrote %s\n", output)
			return nil
		},
	}
}

func splitCommand() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Split a PDF into one document per range; two or more are zipped",
		ArgsUsage: "<input.pdf>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ranges", Aliases: []string{"r"}, Usage: "Range selector, e.g. 1-5,6-10", Required: true},
			&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "Directory for the output", Value: "."},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := requireArg(cmd, "input")
			if err != nil {
				return err
			}
			ranges := pdf.ParseSplitRanges(cmd.String("ranges"))
			if len(ranges) == 0 {
				return pdf.ErrNoValidRanges
			}

			src, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			result, err := pdf.SplitPDF(ctx, bytes.NewReader(src), ranges, progressPrinter(cmd))
			if err != nil {
				return err
			}
			for _, r := range result.Skipped {
				fmt.Fprintf(cmd.Root().ErrWriter, "Skipped range %s: beyond the last page\n", r)
			}

			artifact, err := pdf.Bundle(result.Files, pdf.DefaultArchiveName)
			if err != nil {
				return err
			}
			outDir := cmd.String("output-dir")
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			output := filepath.Join(outDir, artifact.Filename)
			if err := os.WriteFile(output, artifact.Data, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintf(cmd.Root().ErrWriter, "Wrote %s\n", output)
			return nil
		},
	}
}

func progressPrinter(cmd *cli.Command) pdf.ProgressFunc {
	return func(p pdf.ProcessingProgress) {
		fmt.Fprintf(cmd.Root().ErrWriter, "[%3.0f%%] %s\n", p.Progress, strings.TrimSpace(p.Status))
	}
}
