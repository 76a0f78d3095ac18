package sheet

//go:generate mockgen -package=mocks -destination=mocks/mock_sheet.go github.com/mgpereira/registro/internal/repositories/sheet RowSource,ServedSheet,Sink

import (
	"context"

	"github.com/mgpereira/registro/internal/models"
)

// RowSource produces roster and reserve rows from an external tabular
// source, typically a spreadsheet or a flat file
type RowSource interface {
	// FetchStudentRows retrieves all roster rows
	FetchStudentRows(ctx context.Context) ([]StudentRow, error)

	// FetchReserveRows retrieves all reserve rows
	FetchReserveRows(ctx context.Context) ([]ReserveRow, error)
}

// ServedSheet is the remote sheet holding served-meal rows. Only read
// and append are assumed; rows are never updated or deleted remotely.
type ServedSheet interface {
	// ReadRows retrieves every row currently on the sheet
	ReadRows(ctx context.Context) ([]models.ServedRow, error)

	// AppendRows appends rows to the sheet
	AppendRows(ctx context.Context, rows []models.ServedRow) error
}

// Sink writes a tabular snapshot to a destination path
type Sink interface {
	// Write stores the rows at path and returns the final path
	Write(ctx context.Context, path string, rows []models.ServedRow) (string, error)
}
