package models

// ServedRowHeader is the column order shared by the served-sheet push
// and the session export.
var ServedRowHeader = []string{"Matrícula", "Data", "Nome", "Turma", "Refeição", "Hora"}

// ServedRow is the flat projection of one consumption, as it appears on
// the remote served sheet and in exported files
type ServedRow struct {
	// Pront is the student's registration number
	Pront string

	// Date is the session date
	Date string

	// Name is the student's display name
	Name string

	// Group is the student's class/group label
	Group string

	// Dish is the served-item label recorded at registration
	Dish string

	// Time is the clock time of consumption
	Time string
}

// Fields returns the row as a slice in header order
func (r ServedRow) Fields() []string {
	return []string{r.Pront, r.Date, r.Name, r.Group, r.Dish, r.Time}
}

// NewServedRow projects a consumption into its served-sheet row
func NewServedRow(sess *Session, stu *Student, c *Consumption) ServedRow {
	return ServedRow{
		Pront: stu.Pront,
		Date:  sess.Date,
		Name:  stu.Name,
		Group: stu.Group,
		Dish:  c.Dish,
		Time:  c.Time,
	}
}

// ServedRowFromFields rebuilds a row from a slice in header order.
// Short slices yield zero values for the missing columns.
func ServedRowFromFields(fields []string) ServedRow {
	var row ServedRow
	dst := []*string{&row.Pront, &row.Date, &row.Name, &row.Group, &row.Dish, &row.Time}
	for i, f := range fields {
		if i >= len(dst) {
			break
		}
		*dst[i] = f
	}
	return row
}
