package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/annealtsp/archive"
)

// styles used for terminal output; plain when w is not a terminal.
type styles struct {
	label lipgloss.Style
	value lipgloss.Style
	good  lipgloss.Style
}

func stylesFor(w io.Writer) styles {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		plain := lipgloss.NewStyle()

		return styles{label: plain, value: plain, good: plain}
	}

	return styles{
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(12),
		value: lipgloss.NewStyle().Bold(true),
		good:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func renderOutcome(w io.Writer, o solveOutcome) error {
	st := stylesFor(w)
	line := func(label, value string, s lipgloss.Style) string {
		return st.label.Render(label+":") + " " + s.Render(value)
	}

	lines := []string{
		line("cities", strconv.Itoa(o.Cities), st.value),
		line("kernel", o.Kernel, st.value),
		line("best cost", strconv.FormatFloat(o.Result.Cost, 'f', 6, 64), st.good),
		line("stopped", o.Result.Reason.String(), st.value),
		line("iterations", fmt.Sprintf("%d (%d accepted)", o.Result.Iterations, o.Result.Accepted), st.value),
		line("route", o.Result.Route.String(), st.value),
	}
	if o.Chains > 1 {
		lines = append(lines, line("chains", fmt.Sprintf("%d (best #%d)", o.Chains, o.Best), st.value))
	}
	if o.Stats != nil {
		lines = append(lines,
			line("accept rate", strconv.FormatFloat(o.Stats.AcceptanceRatio, 'f', 4, 64), st.value),
			line("mean p", strconv.FormatFloat(o.Stats.MeanAcceptProb, 'f', 4, 64), st.value),
		)
	}
	if o.RunID != "" {
		lines = append(lines, line("run id", o.RunID, st.value))
	}
	lines = append(lines, line("took", o.Duration.Round(time.Millisecond).String(), st.value))

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))

	return err
}

func renderRuns(w io.Writer, recs []archive.Record) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "no archived runs")

		return err
	}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Local().Format(time.DateTime),
			strconv.Itoa(r.Cities),
			strconv.FormatFloat(r.BestCost, 'f', 4, 64),
			r.Reason,
			strconv.Itoa(r.Iterations),
			r.Kernel,
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CREATED", "CITIES", "BEST", "REASON", "ITERATIONS", "KERNEL").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())

	return err
}
