package schema

// LibraryBookTable represents the 'library.book' table
type LibraryBookTable struct {
	Table           string
	ID              string
	UserID          string
	Title           string
	Author          string
	Filename        string
	StorageKey      string
	FileType        string
	FileSize        string
	ReadingProgress string
	ReadingTime     string
	Category        string
	Tags            string
	Bookmarks       string
	UploadedAt      string
	UpdatedAt       string
}

// LibraryBook is the schema definition for library.book
var LibraryBook = LibraryBookTable{
	Table:           "library.book",
	ID:              "id",
	UserID:          "userid",
	Title:           "title",
	Author:          "author",
	Filename:        "filename",
	StorageKey:      "storagekey",
	FileType:        "filetype",
	FileSize:        "filesize",
	ReadingProgress: "readingprogress",
	ReadingTime:     "readingtime",
	Category:        "category",
	Tags:            "tags",
	Bookmarks:       "bookmarks",
	UploadedAt:      "uploadedat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names in scan order
func (t LibraryBookTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Title, t.Author, t.Filename, t.StorageKey, t.FileType,
		t.FileSize, t.ReadingProgress, t.ReadingTime, t.Category, t.Tags,
		t.Bookmarks, t.UploadedAt, t.UpdatedAt,
	}
}
