package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/numkit/internal/experiment"
	"github.com/san-kum/numkit/internal/export"
	"github.com/san-kum/numkit/internal/numeric"
	"github.com/san-kum/numkit/internal/storage"
	"github.com/san-kum/numkit/internal/viz"
)

var errNoData = errors.New("no data to plot")

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKERNEL\tLABEL\tTIME\tROWS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Kernel,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	s := viz.Default
	fmt.Println(s.Heading(meta.ID))
	fmt.Printf("%s %s\n", s.Label.Render("kernel:"), meta.Kernel)
	if meta.Label != "" {
		fmt.Printf("%s %s\n", s.Label.Render("label: "), meta.Label)
	}
	fmt.Printf("%s %s\n", s.Label.Render("time:  "), meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("%s %s (%d rows)\n\n", s.Label.Render("data:  "), strings.Join(meta.Columns, ", "), meta.Rows)
	fmt.Println(s.Muted.Render("params"))
	fmt.Print(s.KV(meta.Params))
	if len(meta.Scalars) > 0 {
		fmt.Println(s.Muted.Render("results"))
		fmt.Print(s.KV(meta.Scalars))
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(result.Rows) == 0 {
		return errNoData
	}

	fmt.Printf("run: %s\n", args[0])
	fmt.Printf("kernel: %s\n", result.Kernel)
	fmt.Printf("samples: %d\n\n", len(result.Rows))
	fmt.Println(resultChart(result))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(result.Rows) == 0 {
		return errNoData
	}

	var out io.Writer = os.Stdout
	if svgFile != "" {
		f, err := os.Create(svgFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	_, err = io.WriteString(out, resultFigure(result, args[0]).SVG())
	return err
}

// legendreTable recovers the sample points and the degree-by-sample table
// from a legendre result.
func legendreTable(result *experiment.Result) (numeric.Vector, numeric.Table) {
	x := numeric.Vector(result.Column("x"))
	table := make(numeric.Table, 0, len(result.Columns)-1)
	for _, name := range result.Columns[1:] {
		table = append(table, result.Column(name))
	}
	return x, table
}

func trajectory(result *experiment.Result) *numeric.Trajectory {
	return &numeric.Trajectory{
		Times:  result.Column("t"),
		Values: result.Column("y"),
	}
}

func resultChart(result *experiment.Result) string {
	switch result.Kernel {
	case "legendre":
		x, table := legendreTable(result)
		return viz.LegendreChart(x, table, viz.DefaultSize)
	case "euler", "rk4":
		return viz.TrajectoryChart(trajectory(result), result.Kernel+" y(t)", viz.DefaultSize)
	default:
		return viz.ResultChart(result, viz.DefaultSize)
	}
}

func resultFigure(result *experiment.Result, title string) *export.Figure {
	switch result.Kernel {
	case "legendre":
		x, table := legendreTable(result)
		return export.LegendreFigure(x, table)
	case "euler", "rk4":
		return export.TrajectoryFigure(trajectory(result), fmt.Sprintf("%s: %s", result.Kernel, title))
	}

	fig := &export.Figure{Title: title, XLabel: result.Columns[0], Grid: true}
	xs := result.Column(result.Columns[0])
	for _, name := range result.Columns[1:] {
		fig.Series = append(fig.Series, export.Series{Label: name, X: xs, Y: result.Column(name)})
	}
	return fig
}
