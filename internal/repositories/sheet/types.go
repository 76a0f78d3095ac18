package sheet

// StudentRow is one roster row from the external source
type StudentRow struct {
	Pront string
	Name  string
	Group string
}

// ReserveRow is one reserve row from the external source
type ReserveRow struct {
	Pront    string
	Name     string
	Group    string
	Date     string
	Dish     string
	Snacks   bool
	Canceled bool
}
