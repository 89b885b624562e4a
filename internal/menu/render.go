package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/user/bark/internal/commands"
	"github.com/user/bark/internal/db"
)

// Render prints a result: bookmarks as tab-separated rows, otherwise the
// message. NULL fields print as empty.
func Render(w io.Writer, res commands.Result) error {
	if res.Bookmarks != nil {
		for _, b := range res.Bookmarks {
			if _, err := fmt.Fprintln(w, FormatRow(b)); err != nil {
				return err
			}
		}
		return nil
	}
	if res.Message == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, res.Message)
	return err
}

// FormatRow renders one bookmark as id, title, url, notes, date_added.
func FormatRow(b db.Bookmark) string {
	return strings.Join([]string{
		strconv.FormatInt(b.ID, 10),
		b.Title,
		b.URL,
		b.NotesOrEmpty(),
		b.DateAdded,
	}, "\t")
}
