package domain

import "strings"

// StoryType is the coarse category of a destination story.
type StoryType string

// Story types supported by the destination.
const (
	StoryTypeBug     StoryType = "bug"
	StoryTypeChore   StoryType = "chore"
	StoryTypeFeature StoryType = "feature"
)

// Story is a destination work item created from a source issue.
// It is never mutated after MapIssue returns it.
type Story struct {
	StoryType   StoryType    `json:"story_type" yaml:"story_type"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	ExternalID  string       `json:"external_id" yaml:"external_id"`
	CreatedAt   string       `json:"created_at" yaml:"created_at"`
	UpdatedAt   string       `json:"updated_at" yaml:"updated_at"`
	Labels      []StoryLabel `json:"labels" yaml:"labels"`
	ProjectID   int64        `json:"project_id" yaml:"project_id"`
}

// StoryLabel is a destination label; Color carries a leading '#'.
type StoryLabel struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// storyTypeRules are checked in priority order; the first rule whose
// keyword appears in any label name wins.
var storyTypeRules = []struct {
	keyword string
	typ     StoryType
}{
	{"bug", StoryTypeBug},
	{"chore", StoryTypeChore},
}

// StoryTypeFor derives the story type from issue labels.
// Label names are matched case-insensitively by substring.
func StoryTypeFor(labels []Label) StoryType {
	for _, rule := range storyTypeRules {
		for _, l := range labels {
			if strings.Contains(strings.ToLower(l.Name), rule.keyword) {
				return rule.typ
			}
		}
	}
	return StoryTypeFeature
}

// MapIssue converts a source issue into a story for the given project.
func MapIssue(projectID int64, issue Issue) Story {
	description := ""
	if issue.Body != nil {
		description = *issue.Body
	}

	labels := make([]StoryLabel, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, StoryLabel{Name: l.Name, Color: "#" + l.Color})
	}

	return Story{
		ProjectID:   projectID,
		StoryType:   StoryTypeFor(issue.Labels),
		Name:        issue.Title,
		Description: description,
		ExternalID:  issue.URL,
		CreatedAt:   issue.CreatedAt,
		UpdatedAt:   issue.UpdatedAt,
		Labels:      labels,
	}
}

// MapIssues maps issues in order, skipping pull requests.
func MapIssues(projectID int64, issues []Issue) []Story {
	stories := make([]Story, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest {
			continue
		}
		stories = append(stories, MapIssue(projectID, issue))
	}
	return stories
}
