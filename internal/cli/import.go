package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shenikar/crime_stats/internal/ingest"
	"github.com/shenikar/crime_stats/internal/models"
)

const (
	encodingLatin1 = "latin1"
	encodingUTF8   = "utf8"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	var (
		incidentsPath     string
		neighborhoodsPath string
		encoding          string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load incident and neighborhood CSV files into the database",
		Long: `Parse the city open-data incidents CSV and the neighborhood reference CSV,
then replace both tables in one transaction. Malformed rows of either file and
duplicate incident rows are skipped and counted. The dataset snapshot cache is invalidated afterwards.`,
		Example: `  crimectl import --incidents actes-criminels.csv --neighborhoods pdq_population.csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, report, err := readDataset(incidentsPath, neighborhoodsPath, encoding)
			if err != nil {
				return err
			}
			printImportReport(cmd.OutOrStdout(), report)

			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.dataset.Import(cmd.Context(), dataset); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgHiGreen).Sprint("✓ dataset imported"))
			return nil
		},
	}

	cmd.Flags().StringVar(&incidentsPath, "incidents", "", "incidents CSV file (required)")
	cmd.Flags().StringVar(&neighborhoodsPath, "neighborhoods", "", "neighborhood reference CSV file (required)")
	cmd.Flags().StringVar(&encoding, "encoding", encodingLatin1, "input encoding: latin1 or utf8")
	_ = cmd.MarkFlagRequired("incidents")
	_ = cmd.MarkFlagRequired("neighborhoods")
	return cmd
}

// importReport - итоги разбора обоих файлов
type importReport struct {
	incidents     ingest.Report
	neighborhoods ingest.Report
}

// readDataset разбирает оба файла без обращения к базе
func readDataset(incidentsPath, neighborhoodsPath, encoding string) (*models.Dataset, importReport, error) {
	var report importReport
	if encoding != encodingLatin1 && encoding != encodingUTF8 {
		return nil, report, fmt.Errorf("unknown encoding %q", encoding)
	}

	open := func(path string) (io.ReadCloser, io.Reader, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		if encoding == encodingLatin1 {
			return f, ingest.DecodeLatin1(f), nil
		}
		return f, f, nil
	}

	f, r, err := open(incidentsPath)
	if err != nil {
		return nil, report, err
	}
	incidents, incidentsReport, err := ingest.ParseIncidents(r)
	f.Close()
	if err != nil {
		return nil, report, fmt.Errorf("failed to parse %s: %w", incidentsPath, err)
	}
	report.incidents = incidentsReport

	f, r, err = open(neighborhoodsPath)
	if err != nil {
		return nil, report, err
	}
	hoods, hoodsReport, err := ingest.ParseNeighborhoods(r)
	f.Close()
	if err != nil {
		return nil, report, fmt.Errorf("failed to parse %s: %w", neighborhoodsPath, err)
	}
	report.neighborhoods = hoodsReport

	return &models.Dataset{Incidents: incidents, Neighborhoods: hoods}, report, nil
}

func printImportReport(w io.Writer, report importReport) {
	printFileReport(w, "Incidents", report.incidents)
	printFileReport(w, "Neighborhoods", report.neighborhoods)
}

func printFileReport(w io.Writer, label string, report ingest.Report) {
	fmt.Fprintf(w, "%s: %d rows, %s accepted", label, report.Rows, color.New(color.FgHiGreen).Sprint(report.Accepted))
	if report.Malformed > 0 {
		fmt.Fprintf(w, ", %s malformed", color.New(color.FgYellow).Sprint(report.Malformed))
	}
	if report.Duplicates > 0 {
		fmt.Fprintf(w, ", %s duplicates", color.New(color.FgYellow).Sprint(report.Duplicates))
	}
	fmt.Fprintln(w)
}
