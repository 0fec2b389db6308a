package employee

// Employee is a directory entry.
type Employee struct {
	ID           int64
	Code         string // employee code, e.g. "EMP-0042"
	FullName     string
	Email        string
	DepartmentID *int64
	Department   string
	PositionID   *int64
	Position     string
	Status       string // active | inactive
	Phone        string
	JoinDate     string // YYYY-MM-DD
}

// Department is a lookup value for the directory form.
type Department struct {
	ID   int64
	Name string
}

// Position is a lookup value for the directory form.
type Position struct {
	ID           int64
	Title        string
	DepartmentID *int64
}
