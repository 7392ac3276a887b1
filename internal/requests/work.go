package requests

import (
	"showcase-api/internal/stores"
)

// UploadWorkRequest carries the submission fields. They arrive either as
// multipart form values (binary-file mode) or as a JSON body (URL mode).
type UploadWorkRequest struct {
	Name        string `json:"name" form:"name"`
	Roll        string `json:"roll" form:"roll"`
	Email       string `json:"email" form:"email"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	URL         string `json:"url" form:"url"`
}

// ListWorksQuery holds the gallery listing query parameters.
type ListWorksQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Sort     string `query:"sort"`
}

// Filter translates the query parameters into a store filter. "all" or an
// absent category means no category constraint; any sort value other than
// "oldest" (including absent) sorts newest first.
func (q ListWorksQuery) Filter() stores.WorkFilter {
	filter := stores.WorkFilter{
		Search:        q.Search,
		SortAscending: q.Sort == "oldest",
	}

	if q.Category != "" && q.Category != "all" {
		filter.Category = q.Category
	}

	return filter
}
