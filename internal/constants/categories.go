package constants

// Categories is the closed set of accepted submission categories.
var Categories = []string{"Comic", "Website", "Magazine", "Skit", "Other"}

// File kinds stored on a work record.
const (
	FileKindImage   = "image"
	FileKindVideo   = "video"
	FileKindPDF     = "pdf"
	FileKindZip     = "zip"
	FileKindOther   = "other"
	FileKindWebsite = "website"
)

// urlCategories maps the categories submitted by reference URL (instead of a
// binary payload) to the file kind recorded for them.
var urlCategories = map[string]string{
	"Website": FileKindWebsite,
	"Skit":    FileKindVideo,
}

// IsValidCategory reports whether category is a member of the closed set.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// URLFileKind returns the file kind for a URL-mode category. ok is false for
// categories that require a binary payload.
func URLFileKind(category string) (kind string, ok bool) {
	kind, ok = urlCategories[category]
	return kind, ok
}
