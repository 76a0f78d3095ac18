package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgpereira/registro/internal/models"
)

// Column-name aliases accepted in source files. The roster exports this
// system consumes are not consistent about header naming.
var columnAliases = map[string]string{
	"pront":        "pront",
	"prontuário":   "pront",
	"prontuario":   "pront",
	"matrícula":    "pront",
	"matricula":    "pront",
	"matrícula iq": "pront",
	"nome":         "name",
	"turma":        "group",
	"data":         "date",
	"refeição":     "dish",
	"refeicao":     "dish",
	"prato":        "dish",
	"lanche":       "snacks",
	"cancelada":    "canceled",
	"cancelado":    "canceled",
}

// CSVSource is a RowSource backed by local CSV files
type CSVSource struct {
	// StudentsPath is the roster CSV file
	StudentsPath string

	// ReservesPath is the reserves CSV file
	ReservesPath string
}

// NewCSVSource creates a CSV-file row source
func NewCSVSource(studentsPath, reservesPath string) *CSVSource {
	return &CSVSource{
		StudentsPath: studentsPath,
		ReservesPath: reservesPath,
	}
}

// FetchStudentRows reads all roster rows from the students CSV file
func (s *CSVSource) FetchStudentRows(ctx context.Context) ([]StudentRow, error) {
	records, err := readNamedColumns(s.StudentsPath)
	if err != nil {
		return nil, err
	}

	rows := make([]StudentRow, 0, len(records))
	for _, rec := range records {
		if rec["pront"] == "" {
			continue
		}
		rows = append(rows, StudentRow{
			Pront: rec["pront"],
			Name:  rec["name"],
			Group: rec["group"],
		})
	}
	return rows, nil
}

// FetchReserveRows reads all reserve rows from the reserves CSV file
func (s *CSVSource) FetchReserveRows(ctx context.Context) ([]ReserveRow, error) {
	records, err := readNamedColumns(s.ReservesPath)
	if err != nil {
		return nil, err
	}

	rows := make([]ReserveRow, 0, len(records))
	for _, rec := range records {
		if rec["pront"] == "" {
			continue
		}
		rows = append(rows, ReserveRow{
			Pront:    rec["pront"],
			Name:     rec["name"],
			Group:    rec["group"],
			Date:     rec["date"],
			Dish:     rec["dish"],
			Snacks:   parseFlag(rec["snacks"]),
			Canceled: parseFlag(rec["canceled"]),
		})
	}
	return rows, nil
}

// readNamedColumns reads a CSV file into records keyed by the canonical
// column names resolved through columnAliases
func readNamedColumns(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = columnAliases[strings.ToLower(strings.TrimSpace(h))]
	}

	var records []map[string]string
	for {
		fields, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		rec := make(map[string]string, len(columns))
		for i, field := range fields {
			if i < len(columns) && columns[i] != "" {
				rec[columns[i]] = strings.TrimSpace(field)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseFlag interprets the truthy cell values seen in roster exports
func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "x", "true", "sim", "yes":
		return true
	}
	return false
}

// CSVServedSheet is a ServedSheet backed by a local CSV file, used when
// the deployment has no remote sheet configured
type CSVServedSheet struct {
	// Path is the served-rows CSV file
	Path string
}

// NewCSVServedSheet creates a CSV-file served sheet
func NewCSVServedSheet(path string) *CSVServedSheet {
	return &CSVServedSheet{Path: path}
}

// ReadRows retrieves every row currently in the file. A missing file is
// an empty sheet, not an error.
func (s *CSVServedSheet) ReadRows(ctx context.Context) ([]models.ServedRow, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.ServedRow{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows := []models.ServedRow{}
	first := true
	for {
		fields, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
		}

		if first {
			first = false
			if len(fields) > 0 && fields[0] == models.ServedRowHeader[0] {
				continue
			}
		}
		rows = append(rows, models.ServedRowFromFields(fields))
	}
	return rows, nil
}

// AppendRows appends rows to the file, writing the header first when the
// file is new
func (s *CSVServedSheet) AppendRows(ctx context.Context, rows []models.ServedRow) error {
	_, statErr := os.Stat(s.Path)
	isNew := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if isNew {
		if err := writer.Write(models.ServedRowHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, row := range rows {
		if err := writer.Write(row.Fields()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", s.Path, err)
	}
	return nil
}

// CSVSink is a Sink that writes CSV snapshot files
type CSVSink struct{}

// NewCSVSink creates a CSV export sink
func NewCSVSink() *CSVSink {
	return &CSVSink{}
}

// Write stores the rows at path and returns the final path
func (s *CSVSink) Write(ctx context.Context, path string, rows []models.ServedRow) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(models.ServedRowHeader); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row.Fields()); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return path, nil
}
