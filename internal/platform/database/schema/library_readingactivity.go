package schema

// LibraryReadingActivityTable represents the 'library.readingactivity' table
type LibraryReadingActivityTable struct {
	Table      string
	UserID     string
	Day        string
	Minutes    string
	LastBookID string
	UpdatedAt  string
}

// LibraryReadingActivity is the schema definition for library.readingactivity
var LibraryReadingActivity = LibraryReadingActivityTable{
	Table:      "library.readingactivity",
	UserID:     "userid",
	Day:        "day",
	Minutes:    "minutes",
	LastBookID: "lastbookid",
	UpdatedAt:  "updatedat",
}
