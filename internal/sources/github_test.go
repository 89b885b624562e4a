package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarsURL(t *testing.T) {
	g := NewGitHub("https://api.example.com/", 0, 50)
	assert.Equal(t, "https://api.example.com/users/octo/starred?per_page=50", g.StarsURL("octo"))

	g = NewGitHub("", 0, 0)
	assert.Equal(t, "https://api.github.com/users/octo/starred", g.StarsURL("octo"))
}

func TestFetchPage(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, starMediaType, r.Header.Get("Accept"))
		w.Header().Set("Link", fmt.Sprintf(`<%s/users/octo/starred?page=2>; rel="next", <%s/users/octo/starred?page=5>; rel="last"`, srv.URL, srv.URL))
		fmt.Fprint(w, `[
			{"starred_at": "2023-04-05T06:07:08Z", "repo": {"name": "bark", "html_url": "https://github.com/octo/bark", "description": "bookmarks"}},
			{"starred_at": "2023-04-06T06:07:08Z", "repo": {"name": "nodesc", "html_url": "https://github.com/octo/nodesc", "description": null}}
		]`)
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, time.Second, 0)
	page, err := g.FetchPage(context.Background(), g.StarsURL("octo"))
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/users/octo/starred?page=2", page.Next)
	require.Len(t, page.Stars, 2)
	assert.Equal(t, "bark", page.Stars[0].Repo.Name)
	assert.Equal(t, "https://github.com/octo/bark", page.Stars[0].Repo.HTMLURL)
	require.NotNil(t, page.Stars[0].Repo.Description)
	assert.Equal(t, "bookmarks", *page.Stars[0].Repo.Description)
	assert.Nil(t, page.Stars[1].Repo.Description)
	assert.Equal(t, "2023-04-05T06:07:08Z", page.Stars[0].StarredAt)
}

func TestFetchPageLastPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", `<https://api.github.com/users/octo/starred?page=1>; rel="first"`)
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	page, err := NewGitHub(srv.URL, 0, 0).FetchPage(context.Background(), srv.URL+"/users/octo/starred")
	require.NoError(t, err)
	assert.Empty(t, page.Next)
	assert.Empty(t, page.Stars)
}

func TestFetchPageErrors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Not Found"}`, wantMsg: "status 404"},
		{name: "malformed json", status: http.StatusOK, body: `{"not": "a list"`, wantMsg: "decoding stars"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			_, err := NewGitHub(srv.URL, 0, 0).FetchPage(context.Background(), srv.URL)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
