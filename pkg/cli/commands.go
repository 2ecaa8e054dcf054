package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"seatbench/pkg/core"
	"seatbench/pkg/entry"
	"seatbench/pkg/plot"
	"seatbench/pkg/session"
)

const maxProjectWidth = 40

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print descriptive statistics for a seat data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.session.Describe().String())
			return nil
		},
	}
}

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "Print the records of a seat data file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(args[0]); err != nil {
				return err
			}
			writeTable(cmd.OutOrStdout(), a.session.Dataset())
			return nil
		},
	}
}

// writeTable aligns columns by display width so CJK project names line up.
func writeTable(w io.Writer, ds core.Dataset) {
	header := []string{"#", core.ColumnProject, core.ColumnPerformance, core.ColumnWeight}
	rows := [][]string{header}
	for i, e := range ds {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			runewidth.Truncate(e.Project, maxProjectWidth, "..."),
			strconv.FormatFloat(e.Performance, 'f', -1, 64),
			strconv.FormatFloat(e.Weight, 'f', -1, 64),
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == 1 {
				cells[i] = runewidth.FillRight(cell, widths[i])
			} else {
				cells[i] = runewidth.FillLeft(cell, widths[i])
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

type exportFlags struct {
	png  string
	json string
}

func (f *exportFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.png, "png", "", "export the chart as PNG to this path")
	cmd.Flags().StringVar(&f.json, "json", "", "export the plot specification as JSON to this path")
}

func (a *App) export(w io.Writer, spec plot.Spec, f exportFlags) error {
	if f.png != "" {
		if err := plot.SavePNG(f.png, spec, a.cfg.PlotWidth, a.cfg.PlotHeight); err != nil {
			return fmt.Errorf("export png: %w", err)
		}
		fmt.Fprintf(w, "Chart written to %s\n", f.png)
	}
	if f.json != "" {
		if err := plot.SaveJSON(f.json, spec); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
		fmt.Fprintf(w, "Plot specification written to %s\n", f.json)
	}
	return nil
}

func (a *App) plotCmd() *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Build the scatter chart for a seat data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(args[0]); err != nil {
				return err
			}
			spec, err := a.session.Render()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeSummary(out, spec)
			return a.export(out, spec, flags)
		},
	}
	flags.bind(cmd)
	return cmd
}

func writeSummary(w io.Writer, spec plot.Spec) {
	b := spec.Bounds
	fmt.Fprintln(w, spec.Title)
	fmt.Fprintf(w, "points: %d, projects: %d, highlighted: %d\n", len(spec.Points()), len(spec.Legend), spec.HighlightCount())
	fmt.Fprintf(w, "%s: %s .. %s\n", spec.XLabel, plot.FormatTick(b.MinX), plot.FormatTick(b.MaxX))
	fmt.Fprintf(w, "%s: %s .. %s\n", spec.YLabel, plot.FormatTick(b.MinY), plot.FormatTick(b.MaxY))
}

func (a *App) addCmd() *cobra.Command {
	var flags exportFlags
	var saveTo string
	cmd := &cobra.Command{
		Use:   "add FILE",
		Short: "Prompt for a new record, append it and highlight it in the chart",
		Long: "Loads FILE, then asks for the project name, seat modal performance and seat weight " +
			"on standard input. An empty answer or end of input cancels without changing anything.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(args[0]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var res session.AddResult
			a.session.CollectEntry(entry.NewLinePrompter(cmd.InOrStdin(), out), func(r session.AddResult) {
				res = r
			})
			if !res.Applied() {
				if res.Err != nil {
					return res.Err
				}
				fmt.Fprintf(out, "Entry cancelled at %s.\n", res.Entry.CancelledAt)
				return nil
			}

			fmt.Fprintf(out, "Added %s (%s, %s); %d records.\n",
				res.Added.Project,
				strconv.FormatFloat(res.Added.Performance, 'f', -1, 64),
				strconv.FormatFloat(res.Added.Weight, 'f', -1, 64),
				len(a.session.Dataset()))
			writeSummary(out, res.Spec)

			if saveTo != "" {
				if err := a.session.Save(saveTo); err != nil {
					return err
				}
				fmt.Fprintln(out, session.SaveNotice(nil).Message)
			}
			return a.export(out, res.Spec, flags)
		},
	}
	cmd.Flags().StringVar(&saveTo, "save", "", "save the extended dataset to this CSV path")
	flags.bind(cmd)
	return cmd
}
