package riskcheck

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/foundershield/foundershield/dto"
	"github.com/pkg/errors"
)

// ReadInputCSV parses url,domain,email rows. A leading header row is
// detected and skipped; any column may be empty but a row must fill at
// least one.
func ReadInputCSV(path string) ([]dto.AnalysisInput, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open input file")
	}
	defer file.Close()

	return parseInputs(file)
}

func parseInputs(reader io.Reader) ([]dto.AnalysisInput, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse csv")
	}

	inputs := make([]dto.AnalysisInput, 0, len(records))
	for i, record := range records {
		if i == 0 && isHeaderRow(record) {
			continue
		}
		input := dto.AnalysisInput{}
		if len(record) > 0 {
			input.URL = strings.TrimSpace(record[0])
		}
		if len(record) > 1 {
			input.Domain = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			input.Email = strings.TrimSpace(record[2])
		}
		if input.URL == "" && input.Domain == "" && input.Email == "" {
			continue
		}
		inputs = append(inputs, input)
	}
	if len(inputs) == 0 {
		return nil, errors.New("input csv contains no rows")
	}
	return inputs, nil
}

func isHeaderRow(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "url")
}

// WriteJSON renders the report to path, or to stdout when path is empty.
func WriteJSON(report *Report, path string) error {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal report")
	}
	if path == "" {
		fmt.Println(string(payload))
		return nil
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}

// WriteCSV renders one row per result with a compact signal summary.
func WriteCSV(report *Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create csv file")
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"input", "score", "level", "signals"}); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for _, result := range report.Results {
		row := []string{
			InputLabel(result.Input),
			fmt.Sprintf("%d", result.Score),
			result.Level.String(),
			signalSummary(result.Signals),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "failed to flush csv")
}

func signalSummary(signals []dto.SignalResult) string {
	parts := make([]string, 0, len(signals))
	for _, signal := range signals {
		if !signal.Available {
			parts = append(parts, signal.Provider+":n/a")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%d", signal.Provider, signal.Score))
	}
	return strings.Join(parts, "|")
}
