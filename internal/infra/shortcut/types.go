package shortcut

import "github.com/runoshun/issue-import/internal/domain"

// Project is the response from GET /projects/{id}.
type Project struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// BulkCreateRequest is the body of POST /stories/bulk.
type BulkCreateRequest struct {
	Stories []domain.Story `json:"stories"`
}

// CreatedStory is one element of the POST /stories/bulk response.
type CreatedStory struct {
	Name       string `json:"name"`
	AppURL     string `json:"app_url"`
	ExternalID string `json:"external_id"`
	ID         int64  `json:"id"`
}
