package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/fivetwenty-io/increase/pkg/increaseclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Masked       = "***"

	defaultYAMLIndent = 2
	dateLayout        = "2006-01-02"
	defaultListLimit  = 20
)

// CreateClient builds an API client from the merged flag, environment and
// config file settings.
func CreateClient() (increase.Client, error) {
	config := &increase.Config{
		APIKey:      viper.GetString("api_key"),
		Environment: viper.GetString("environment"),
		BaseURL:     viper.GetString("base_url"),
		UserAgent:   "increase-cli/" + viper.GetString("cli_version"),
	}

	if viper.GetBool("verbose") {
		config.Logger = NewLogger(viper.GetBool("no_color"))
		config.Debug = true
	}

	if config.APIKey == "" {
		return nil, constants.ErrNoAPIKey
	}

	client, err := increaseclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// commandContext returns the command context, falling back to Background for
// commands executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	output := viper.GetString("output")
	switch output {
	case "", constants.OutputFormatTable:
		return constants.OutputFormatTable, nil
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, output)
	}
}

// render writes data as JSON or YAML, or calls table for the table format.
func render[T any](w io.Writer, data T, table func(io.Writer) error) error {
	output, err := outputFormat()
	if err != nil {
		return err
	}

	switch output {
	case constants.OutputFormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.OutputFormatYAML:
		return StandardYAMLRenderer(w, data)
	default:
		return table(w)
	}
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML. Models only know their JSON wire
// form, so data goes through JSON first.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	var node yaml.Node

	err = yaml.Unmarshal(raw, &node)
	if err != nil {
		return fmt.Errorf("converting JSON to YAML: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultYAMLIndent)

	err = encoder.Encode(&node)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderTable renders a header and rows.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)

	for _, row := range rows {
		err := table.Append(toAny(row)...)
		if err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// renderDetails renders a two column property table.
func renderDetails(w io.Writer, rows [][]string) error {
	return renderTable(w, []string{"Property", "Value"}, rows)
}

// listPage fetches one page, or every page when all is set.
func listPage[T any](
	ctx context.Context,
	all bool,
	list func(context.Context) (*increase.Page[T], error),
	autoPaging func(context.Context) *increase.PaginationIterator[T],
) ([]T, bool, error) {
	if all {
		items, err := autoPaging(ctx).All()
		if err != nil {
			return nil, false, err
		}

		return items, false, nil
	}

	page, err := list(ctx)
	if err != nil {
		return nil, false, err
	}

	return page.Data, page.HasNextPage(), nil
}

// printMoreHint tells the user that further pages exist.
func printMoreHint(w io.Writer, more bool) {
	if more {
		_, _ = io.WriteString(w, "\nMore results are available. Use --all to fetch all pages.\n")
	}
}

func addListFlags(cmd *cobra.Command, limit *int64, all *bool) {
	cmd.Flags().Int64Var(limit, "limit", defaultListLimit, "results per page (max 100)")
	cmd.Flags().BoolVar(all, "all", false, "fetch all pages")
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}

	return *s
}

func formatTime(t *increase.Timestamp) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}

// formatAmount renders minor units as a decimal amount, e.g. 12345 USD is "123.45 USD".
func formatAmount(amount int64, currency increase.Currency) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return sign + strconv.FormatInt(amount/100, 10) + "." + fmt.Sprintf("%02d", amount%100) + " " + string(currency)
}
