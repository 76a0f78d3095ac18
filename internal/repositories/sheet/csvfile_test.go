package sheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgpereira/registro/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSourceFetchStudentRows(t *testing.T) {
	dir := t.TempDir()
	roster := writeFile(t, dir, "roster.csv",
		"Matrícula,Nome,Turma\n"+
			"SP3012345,Ana Souza,INF-2A\n"+
			"SP3012346,Bruno Dias,MEC-1A\n"+
			",sem matrícula,INF-2A\n")

	source := NewCSVSource(roster, "")

	rows, err := source.FetchStudentRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, StudentRow{Pront: "SP3012345", Name: "Ana Souza", Group: "INF-2A"}, rows[0])
	assert.Equal(t, StudentRow{Pront: "SP3012346", Name: "Bruno Dias", Group: "MEC-1A"}, rows[1])
}

func TestCSVSourceHeaderAliases(t *testing.T) {
	dir := t.TempDir()
	// Older exports use "Prontuário" instead of "Matrícula"
	roster := writeFile(t, dir, "roster.csv",
		"Prontuário,Nome,Turma\nSP3012345,Ana Souza,INF-2A\n")

	source := NewCSVSource(roster, "")

	rows, err := source.FetchStudentRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SP3012345", rows[0].Pront)
}

func TestCSVSourceFetchReserveRows(t *testing.T) {
	dir := t.TempDir()
	reserves := writeFile(t, dir, "reserves.csv",
		"Matrícula,Nome,Turma,Data,Prato,Lanche,Cancelada\n"+
			"SP3012345,Ana Souza,INF-2A,02/05/2025,Feijoada,,\n"+
			"SP3012346,Bruno Dias,MEC-1A,02/05/2025,Sanduíche,sim,x\n")

	source := NewCSVSource("", reserves)

	rows, err := source.FetchReserveRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Feijoada", rows[0].Dish)
	assert.False(t, rows[0].Snacks)
	assert.False(t, rows[0].Canceled)

	assert.True(t, rows[1].Snacks)
	assert.True(t, rows[1].Canceled)
}

func TestCSVSourceMissingFile(t *testing.T) {
	source := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"), "")

	_, err := source.FetchStudentRows(context.Background())
	require.Error(t, err)
}

func TestCSVServedSheetMissingFileIsEmpty(t *testing.T) {
	sheet := NewCSVServedSheet(filepath.Join(t.TempDir(), "served.csv"))

	rows, err := sheet.ReadRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVServedSheetAppendAndRead(t *testing.T) {
	sheet := NewCSVServedSheet(filepath.Join(t.TempDir(), "served.csv"))

	row := models.ServedRow{
		Pront: "SP3012345",
		Date:  "02/05/2025",
		Name:  "Ana Souza",
		Group: "INF-2A",
		Dish:  "Feijoada",
		Time:  "11:45:00",
	}

	require.NoError(t, sheet.AppendRows(context.Background(), []models.ServedRow{row}))

	rows, err := sheet.ReadRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row, rows[0])

	// A second append does not re-write the header
	second := row
	second.Pront = "SP3012346"
	require.NoError(t, sheet.AppendRows(context.Background(), []models.ServedRow{second}))

	rows, err = sheet.ReadRows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCSVSinkWrite(t *testing.T) {
	sink := NewCSVSink()
	path := filepath.Join(t.TempDir(), "Lunch 02-05-2025 11.30.csv")

	rows := []models.ServedRow{
		{Pront: "SP3012345", Date: "02/05/2025", Name: "Ana Souza", Group: "INF-2A", Dish: "Feijoada", Time: "11:45:00"},
	}

	written, err := sink.Write(context.Background(), path, rows)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Matrícula,Data,Nome,Turma,Refeição,Hora")
	assert.Contains(t, string(content), "SP3012345")
}
