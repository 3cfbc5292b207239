// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arnlite Contributors

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arnlite/arnlite/pkg/arn"
	"github.com/arnlite/arnlite/pkg/errutil"
)

// Output formats for the parse subcommand.
const (
	formatText = "text"
	formatJSON = "json"
)

// formatValue is a pflag.Value restricted to the known output formats.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	switch s {
	case formatText, formatJSON:
		*f = formatValue(s)
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s or %s)", s, formatText, formatJSON)
}

func (f *formatValue) Type() string { return "format" }

// parseOutput is the JSON shape for one parsed input. Absent fields
// serialize as JSON null so callers can tell them apart from empty strings.
type parseOutput struct {
	ResourceType *string `json:"resourceType"`
	Resource     string  `json:"resource"`
	Qualifier    *string `json:"qualifier"`
	Rendered     string  `json:"rendered"`
}

// NewParseCmd creates the parse subcommand.
func NewParseCmd() *cobra.Command {
	format := formatValue(formatText)

	cmd := &cobra.Command{
		Use:   "parse <resource>...",
		Short: "Split resource strings into type, resource, and qualifier",
		Long: `Parse each argument as the resource portion of an ARN-style identifier
and print the derived resource type, resource, and qualifier.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			for i, raw := range args {
				d, err := arn.ParseResource(raw)
				if err != nil {
					errutil.LogError(logger, "cannot parse resource", err)
					return err
				}

				if format == formatJSON {
					if err := writeJSON(cmd, d); err != nil {
						return err
					}
					continue
				}
				if i > 0 {
					cmd.Println()
				}
				writeText(cmd, d)
			}
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "output format: text or json")

	return cmd
}

func writeJSON(cmd *cobra.Command, d arn.ResourceDescriptor) error {
	out := parseOutput{
		Resource: d.Resource(),
		Rendered: d.String(),
	}
	if resourceType, ok := d.ResourceType(); ok {
		out.ResourceType = &resourceType
	}
	if qualifier, ok := d.Qualifier(); ok {
		out.Qualifier = &qualifier
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	//nolint:wrapcheck // encoder failure is terminal for a one-shot CLI
	return enc.Encode(out)
}

func writeText(cmd *cobra.Command, d arn.ResourceDescriptor) {
	cmd.Printf("resource-type: %s\n", fieldOrNone(d.ResourceType()))
	cmd.Printf("resource:      %s\n", d.Resource())
	cmd.Printf("qualifier:     %s\n", fieldOrNone(d.Qualifier()))
}

func fieldOrNone(value string, present bool) string {
	if !present {
		return "(none)"
	}
	return value
}
