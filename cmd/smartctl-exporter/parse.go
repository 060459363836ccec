package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"smartctl-exporter/internal/smartctl"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a smartctl -a capture file",
		Long: `Parse a file holding the output of smartctl -a. The file name must
end in smartctl_-a_.dev.<name>, which gives the device /dev/<name>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := checkFormat(format); err != nil {
				return err
			}

			lines, err := readCapture(args[0])
			if err != nil {
				return err
			}
			report, err := smartctl.ParseReport(args[0], lines)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), report.Snapshot())
			}
			writeReportText(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().String("format", formatText, "Output format (text, json)")
	return cmd
}

func newSCTERCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scterc <file>",
		Short: "Parse a smartctl -l scterc capture file",
		Long: `Parse a file holding the output of smartctl -l scterc. The file name
must end in smartctl_-l_scterc_.dev.<name>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := checkFormat(format); err != nil {
				return err
			}

			lines, err := readCapture(args[0])
			if err != nil {
				return err
			}
			result, err := smartctl.ParseSCTERC(args[0], lines)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Device string                       `json:"device"`
					Timers map[string]smartctl.ERCTimer `json:"timers"`
				}{result.Device(), result.Timers()})
			}
			writeERCText(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().String("format", formatText, "Output format (text, json)")
	return cmd
}

func checkFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
	}
	return nil
}

func readCapture(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	return smartctl.SplitLines(string(data)), nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeReportText(w io.Writer, report *smartctl.Report) {
	fmt.Fprintf(w, "Device:   %s\n", report.Device())
	fmt.Fprintf(w, "Health:   %s\n", report.Health())
	fmt.Fprintf(w, "Complete: %v\n", report.Complete())

	if keys := report.InformationKeys(); len(keys) > 0 {
		fmt.Fprintln(w, "\nInformation:")
		for _, key := range keys {
			value, _ := report.Information(key)
			fmt.Fprintf(w, "  %s: %s\n", key, value)
		}
	}

	if keys := report.ValueKeys(); len(keys) > 0 {
		fmt.Fprintln(w, "\nValues:")
		for _, key := range keys {
			value, _ := report.Value(key)
			fmt.Fprintf(w, "  %s: %s\n", key, value)
		}
	}

	if attrs := report.Attributes(); len(attrs) > 0 {
		fmt.Fprintln(w, "\nAttributes:")
		fmt.Fprintf(w, "  %-3s %-24s %-6s %-5s %-5s %-6s %-8s %-8s %-11s %s\n",
			"ID", "NAME", "FLAG", "VALUE", "WORST", "THRESH", "TYPE", "UPDATED", "WHEN_FAILED", "RAW_VALUE")
		for _, a := range attrs {
			fmt.Fprintf(w, "  %-3d %-24s %-6s %-5d %-5d %-6d %-8s %-8s %-11s %s\n",
				a.ID, a.Name, a.Flag, a.Value, a.Worst, a.Threshold, a.Type, a.Updated, a.WhenFailed, a.RawValue)
		}
	}
}

func writeERCText(w io.Writer, result *smartctl.ERCResult) {
	fmt.Fprintf(w, "Device: %s\n", result.Device())
	for _, key := range result.Keys() {
		timer, _ := result.Timer(key)
		if timer.Numeric {
			fmt.Fprintf(w, "  %s: %s (%.1f seconds)\n", key, timer.Raw, timer.Seconds)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", key, timer.Raw)
	}
}
