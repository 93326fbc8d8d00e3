package schema

// LibraryCategoryTable represents the 'library.category' table
type LibraryCategoryTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt string
}

// LibraryCategory is the schema definition for library.category
var LibraryCategory = LibraryCategoryTable{
	Table:     "library.category",
	ID:        "id",
	UserID:    "userid",
	Name:      "name",
	Color:     "color",
	CreatedAt: "createdat",
}

func (t LibraryCategoryTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Name, t.Color, t.CreatedAt}
}
