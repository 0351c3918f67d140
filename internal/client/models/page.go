package models

// Page is the paginated listing envelope returned by collection endpoints.
// Number is the page index as reported by the server.
type Page[T any] struct {
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	Content       []T   `json:"content"`
}
