package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/epeers/rsiv/internal/export"
	"github.com/epeers/rsiv/internal/handlers"
	"github.com/epeers/rsiv/internal/logger"
	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/renderer"
	"github.com/epeers/rsiv/internal/services"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage")

// holdingList collects repeated -holding score:amount flags
type holdingList []models.HoldingRequest

func (l *holdingList) String() string {
	parts := make([]string, len(*l))
	for i, h := range *l {
		parts[i] = fmt.Sprintf("%g:%g", *h.StrengthScore, *h.InvestedAmount)
	}
	return strings.Join(parts, ",")
}

func (l *holdingList) Set(value string) error {
	score, amount, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("holding %q must be score:amount", value)
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(score), 64)
	if err != nil {
		return fmt.Errorf("invalid score in %q", value)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return fmt.Errorf("invalid amount in %q", value)
	}
	*l = append(*l, models.HoldingRequest{StrengthScore: &s, InvestedAmount: &a})
	return nil
}

type analyzeCmd struct {
	safety      int
	cash        float64
	holdings    holdingList
	file        string
	format      string
	out         string
	lang        string
	currency    string
	maxHoldings int
	plain       bool
	verbose     bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a portfolio and print the RSIV report" }
func (*analyzeCmd) Usage() string {
	return `rsiv analyze -safety <0-9> [-cash <amount>] (-holding <score:amount>... | -f <holdings.csv>) [-format md|extended|json|csv|pdf] [-o <file>]

  Computes the weighted strength score of the portfolio, the suggested holding
  ratio for the given index safety level and the rebalancing action.
  Holdings are given with repeated -holding flags or a CSV file with
  strength_score and invested_amount columns.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.safety, "safety", -1, "Index safety level (0-9)")
	f.Float64Var(&c.cash, "cash", 0, "Cash balance")
	f.Var(&c.holdings, "holding", "Holding as score:amount (repeatable)")
	f.StringVar(&c.file, "f", "", "CSV file with strength_score,invested_amount columns")
	f.StringVar(&c.format, "format", "md", "Output format: md, extended, json, csv, pdf")
	f.StringVar(&c.out, "o", "", "Write output to this file instead of stdout")
	f.StringVar(&c.lang, "lang", renderer.LangVietnamese, "Report language (vi, en)")
	f.StringVar(&c.currency, "currency", renderer.DefaultCurrency, "Currency used to format amounts")
	f.IntVar(&c.maxHoldings, "max", 50, "Maximum number of holdings")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of styled terminal output")
	f.BoolVar(&c.verbose, "v", false, "Verbose logging")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	level := "warn"
	if c.verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out := io.Writer(os.Stdout)
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := c.run(ctx, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			f.Usage()
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run analyzes the portfolio described by the flags and writes it to w in the chosen format
func (c *analyzeCmd) run(ctx context.Context, w io.Writer) error {
	if !renderer.ValidLang(c.lang) {
		return fmt.Errorf("%w: -lang must be 'vi' or 'en'", errUsage)
	}
	if !renderer.ValidCurrency(c.currency) {
		return fmt.Errorf("%w: unknown currency %q", errUsage, c.currency)
	}
	if c.format == "pdf" && c.out == "" {
		return fmt.Errorf("%w: pdf output requires -o", errUsage)
	}

	req, extra, err := c.request()
	if err != nil {
		return err
	}

	input, err := req.ToInput(c.maxHoldings)
	if err != nil {
		return err
	}

	ctx, wc := services.NewWarningContext(ctx)
	for _, warning := range extra {
		services.AddWarning(ctx, warning)
	}

	result, err := services.NewAnalyzerService().Analyze(ctx, input)
	if err != nil {
		return err
	}

	analysis := &models.AnalysisResponse{
		ID:       uuid.NewString(),
		Input:    input,
		Result:   *result,
		Warnings: wc.GetWarnings(),
	}
	for _, warning := range analysis.Warnings {
		log.WithField("code", warning.Code).Warn(warning.Message)
	}

	return c.write(w, analysis)
}

// request builds the analysis request from either -holding flags or -f
func (c *analyzeCmd) request() (*models.AnalyzeRequest, []models.Warning, error) {
	req := &models.AnalyzeRequest{CashBalance: &c.cash}
	if c.safety >= 0 {
		req.SafetyLevel = &c.safety
	}

	switch {
	case c.file != "" && len(c.holdings) > 0:
		return nil, nil, fmt.Errorf("%w: use either -holding or -f, not both", errUsage)
	case c.file != "":
		file, err := os.Open(c.file)
		if err != nil {
			return nil, nil, err
		}
		defer file.Close()

		holdings, skipped, err := handlers.ParseHoldingsCSV(file)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", c.file, err)
		}
		req.Holdings = holdings

		if skipped > 0 {
			return req, []models.Warning{{
				Code:    models.WarnEmptyCSVRowsSkipped,
				Message: fmt.Sprintf("%d blank row(s) skipped", skipped),
			}}, nil
		}
	default:
		req.Holdings = c.holdings
	}
	return req, nil, nil
}

func (c *analyzeCmd) write(w io.Writer, analysis *models.AnalysisResponse) error {
	switch c.format {
	case "md", "extended":
		md, err := renderer.RenderReport(analysis, renderer.ReportOptions{
			Extended: c.format == "extended",
			Lang:     c.lang,
			Currency: c.currency,
		})
		if err != nil {
			return err
		}
		if c.plain || c.out != "" {
			_, err := io.WriteString(w, md)
			return err
		}
		return printMarkdown(w, md)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	default:
		exp, err := export.ByFormat(c.format, export.Options{Lang: c.lang, Currency: c.currency})
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return exp.Export(w, analysis)
	}
}

// printMarkdown renders md for the terminal
func printMarkdown(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return err
	}
	styled, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, styled)
	return err
}
