package menu

import (
	"strings"

	"github.com/user/bark/internal/commands"
	"github.com/user/bark/internal/sources"
)

// Default builds the standard bark menu. notes may be nil, in which case
// the annotate entry is left out.
func Default(store commands.Storage, stars sources.StarFetcher, notes commands.NoteWriter) Options {
	opts := Options{
		{"A", Option{Name: "Add a bookmark", Command: commands.NewAddBookmark(store), Form: addForm()}},
		{"B", Option{Name: "List bookmarks by date", Command: commands.NewListBookmarks(store, commands.OrderByDate)}},
		{"T", Option{Name: "List bookmarks by title", Command: commands.NewListBookmarks(store, commands.OrderByTitle)}},
		{"E", Option{Name: "Edit a bookmark", Command: commands.NewEditBookmark(store), Form: editForm()}},
		{"D", Option{Name: "Delete a bookmark", Command: commands.NewDeleteBookmark(store), Form: deleteForm()}},
		{"G", Option{Name: "Import GitHub stars", Command: commands.NewImportGitHubStars(store, stars), Form: importForm()}},
	}
	if notes != nil {
		opts = append(opts, Entry{"N", Option{Name: "Annotate bookmarks without notes", Command: commands.NewAnnotate(store, notes)}})
	}
	return append(opts, Entry{"Q", Option{Name: "Quit", Command: commands.Quit{}}})
}

func addForm() *Form {
	return &Form{
		Fields: []Field{
			{Key: "title", Label: "Title", Required: true},
			{Key: "url", Label: "URL", Required: true},
			{Key: "notes", Label: "Notes"},
		},
		Build: func(a map[string]string) (commands.Data, error) {
			return commands.Data{
				"title": a["title"],
				"url":   a["url"],
				"notes": optional(a["notes"]),
			}, nil
		},
	}
}

func editForm() *Form {
	return &Form{
		Fields: []Field{
			{Key: "id", Label: "Enter a bookmark ID to edit", Required: true},
			{Key: "field", Label: "Choose a value to edit (title, URL, notes)", Required: true},
			{Key: "value", Label: "Enter the new value", Required: true},
		},
		Build: func(a map[string]string) (commands.Data, error) {
			return commands.Data{
				"id":     a["id"],
				"update": map[string]any{a["field"]: a["value"]},
			}, nil
		},
	}
}

func deleteForm() *Form {
	return &Form{
		Fields: []Field{{Key: "id", Label: "Enter a bookmark ID to delete", Required: true}},
		Build: func(a map[string]string) (commands.Data, error) {
			return commands.Data{"id": a["id"]}, nil
		},
	}
}

func importForm() *Form {
	return &Form{
		Fields: []Field{
			{Key: "github_username", Label: "GitHub username", Required: true},
			{Key: "preserve_timestamps", Label: "Preserve timestamps [Y/n]"},
		},
		Build: func(a map[string]string) (commands.Data, error) {
			return commands.Data{
				"github_username":     strings.TrimSpace(a["github_username"]),
				"preserve_timestamps": YesDefault(a["preserve_timestamps"]),
			}, nil
		},
	}
}

// YesDefault reads a [Y/n] answer: empty, "y" and "yes" mean true.
func YesDefault(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

// optional maps an empty answer to NULL.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
