package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/grovetools/hooks/runner"
	"github.com/grovetools/hooks/theme"
)

// reportedResult is the JSON shape of one hook outcome.
type reportedResult struct {
	Hook     string `json:"hook"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Files    int    `json:"files"`
	Duration string `json:"duration,omitempty"`
	Output   string `json:"output,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ReportResults renders hook run results either as a styled table or
// as JSON, depending on the flags.
func ReportResults(w io.Writer, results []runner.Result, jsonOutput bool) error {
	if jsonOutput {
		return reportJSON(w, results)
	}
	reportStyled(w, results)
	return nil
}

func reportJSON(w io.Writer, results []runner.Result) error {
	reported := make([]reportedResult, 0, len(results))
	for _, r := range results {
		entry := reportedResult{
			Hook:     r.HookID,
			Name:     r.Name,
			Status:   statusOf(r),
			Reason:   r.Reason,
			Files:    r.Files,
			Duration: r.Duration.Round(time.Millisecond).String(),
			Output:   strings.TrimRight(r.Output, "\n"),
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		reported = append(reported, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reported)
}

func reportStyled(w io.Writer, results []runner.Result) {
	nameLen := 0
	for _, r := range results {
		if len(r.Name) > nameLen {
			nameLen = len(r.Name)
		}
	}

	for _, r := range results {
		status := statusOf(r)
		dots := strings.Repeat(".", nameLen-len(r.Name)+3)
		fmt.Fprintf(w, "%s%s%s\n", r.Name, dots, theme.StatusStyle(status, strings.ToUpper(status)))

		if r.Skipped && r.Reason != "" {
			fmt.Fprintf(w, "  %s\n", theme.DefaultTheme.Muted.Render(r.Reason))
		}
		if r.Err != nil {
			fmt.Fprintf(w, "  %s\n", theme.DefaultTheme.Error.Render(r.Err.Error()))
			if out := strings.TrimSpace(r.Output); out != "" {
				for _, line := range strings.Split(out, "\n") {
					fmt.Fprintf(w, "  %s\n", line)
				}
			}
		}
	}

	passed, failed, skipped := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
		case r.Err != nil:
			failed++
		default:
			passed++
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped\n", passed, failed, skipped)
}

func statusOf(r runner.Result) string {
	switch {
	case r.Skipped:
		return "skipped"
	case r.Err != nil:
		return "failed"
	default:
		return "passed"
	}
}
