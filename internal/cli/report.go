package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shenikar/crime_stats/internal/models"
	"github.com/shenikar/crime_stats/internal/service"
	"github.com/shenikar/crime_stats/internal/stats"
)

// reportFlags - выбор фильтров из командной строки
type reportFlags struct {
	neighborhoods []string
	shifts        []string
	categories    []string
	yearMin       int
	yearMax       int
}

// selection строит выбор фильтров; каждое измерение без флагов берётся из выбора по умолчанию
func (f reportFlags) selection(defaults models.Selection) (models.Selection, error) {
	if (f.yearMin == 0) != (f.yearMax == 0) {
		return models.Selection{}, fmt.Errorf("--year-min and --year-max must be set together")
	}

	sel := defaults
	if len(f.neighborhoods) > 0 {
		sel.Neighborhoods = f.neighborhoods
	}
	if f.yearMin != 0 {
		if f.yearMin > f.yearMax {
			return models.Selection{}, fmt.Errorf("--year-min %d is after --year-max %d", f.yearMin, f.yearMax)
		}
		sel.Years = &models.YearRange{Min: f.yearMin, Max: f.yearMax}
	}
	if len(f.shifts) > 0 {
		sel.Shifts = make([]models.Shift, 0, len(f.shifts))
		for _, raw := range f.shifts {
			s, ok := models.ParseShift(raw)
			if !ok {
				return models.Selection{}, fmt.Errorf("unknown shift %q (want jour, soir or nuit)", raw)
			}
			sel.Shifts = append(sel.Shifts, s)
		}
	}
	if len(f.categories) > 0 {
		sel.Categories = make([]models.Category, 0, len(f.categories))
		for _, raw := range f.categories {
			c, ok := models.ParseCategory(raw)
			if !ok {
				return models.Selection{}, fmt.Errorf("unknown category %q", raw)
			}
			sel.Categories = append(sel.Categories, c)
		}
	}
	return sel, nil
}

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print KPI counts and category distribution for a filter",
		Long: `Load the incident store and print the KPI table and the category distribution.
Every filter left unset keeps the dashboard default for that filter.
Flags may be repeated; neighborhood names may contain commas.`,
		Example: `  crimectl report --neighborhood "Plateau Mont-Royal" --year-min 2018 --year-max 2020 --shift nuit`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			st, err := e.dataset.Load(cmd.Context())
			if err != nil {
				return err
			}
			dashboard := service.NewDashboardService(st, e.log, e.cfg, nil)

			opts, err := dashboard.Options(cmd.Context())
			if err != nil {
				return err
			}
			sel, err := flags.selection(opts.Defaults)
			if err != nil {
				return err
			}

			p := sel.Predicate()
			counts, err := dashboard.CategoryCounts(cmd.Context(), p)
			if err != nil {
				return err
			}
			dist, err := dashboard.Distribution(cmd.Context(), p)
			if err != nil {
				return err
			}

			renderReport(cmd.OutOrStdout(), sel, counts, dist)
			return nil
		},
	}

	// StringArray, не StringSlice: названия районов и категорий содержат запятые
	cmd.Flags().StringArrayVar(&flags.neighborhoods, "neighborhood", nil, "neighborhood name (repeatable)")
	cmd.Flags().StringArrayVar(&flags.shifts, "shift", nil, "shift: jour, soir or nuit (repeatable)")
	cmd.Flags().StringArrayVar(&flags.categories, "category", nil, "incident category (repeatable)")
	cmd.Flags().IntVar(&flags.yearMin, "year-min", 0, "first year, inclusive")
	cmd.Flags().IntVar(&flags.yearMax, "year-max", 0, "last year, inclusive")
	return cmd
}

// renderReport печатает фильтр, таблицу KPI и распределение
func renderReport(w io.Writer, sel models.Selection, counts models.CategoryCounts, dist []models.DistributionSlice) {
	header := color.New(color.Bold)
	muted := color.New(color.FgHiBlack)

	header.Fprintln(w, "Filter")
	fmt.Fprintf(w, "  Neighborhoods: %s\n", listOrNone(sel.Neighborhoods))
	if sel.Years != nil {
		fmt.Fprintf(w, "  Years:         %d-%d\n", sel.Years.Min, sel.Years.Max)
	} else {
		fmt.Fprintf(w, "  Years:         %s\n", muted.Sprint("(none)"))
	}
	fmt.Fprintf(w, "  Shifts:        %s\n", listOrNone(toStrings(sel.Shifts)))
	fmt.Fprintf(w, "  Categories:    %d selected\n", len(sel.Categories))
	fmt.Fprintln(w)

	header.Fprintln(w, "KPI")
	width := categoryWidth()
	total := 0
	for _, c := range models.Categories() {
		n := counts[c]
		total += n
		value := muted.Sprint(n)
		if n > 0 {
			value = color.New(color.FgHiYellow).Sprint(n)
		}
		fmt.Fprintf(w, "  %-*s %s\n", width, c, value)
	}
	fmt.Fprintf(w, "  %-*s %s\n", width, "Total", header.Sprint(total))
	fmt.Fprintln(w)

	header.Fprintln(w, "Distribution")
	if len(dist) == 0 {
		fmt.Fprintf(w, "  %s\n", muted.Sprint("no incidents match the filter"))
		return
	}
	matched := 0
	for _, s := range dist {
		matched += s.Count
	}
	for _, s := range dist {
		fmt.Fprintf(w, "  %-*s %6d  %5.1f%%\n", width, s.Category, s.Count, stats.Percent(s, matched))
	}
}

func categoryWidth() int {
	width := len("Total")
	for _, c := range models.Categories() {
		if n := len([]rune(string(c))); n > width {
			width = n
		}
	}
	return width
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return color.New(color.FgHiBlack).Sprint("(none)")
	}
	return strings.Join(values, "; ")
}
