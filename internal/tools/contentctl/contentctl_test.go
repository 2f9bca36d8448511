package contentctl

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latinaempire/internal/adapters/auth"
	"latinaempire/internal/adapters/contentapi"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestValidate_clean(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"events.json":      `{"events":[{"slug":"a","date":"August 15-17, 2024"},{"slug":"b","date":"Date TBD","startDate":"2026-11-01"},{"slug":"c","date":"May 1, 2025","startDate":"  "}]}`,
		"ambassadors.json": `{"ambassadors":[{"slug":"maria"},{"slug":"ana"}]}`,
		"blog.json":        `{"posts":[{"slug":"p1"}],"categories":[],"popularTags":[]}`,
	})

	problems, err := Validate(dir)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestValidate_problems(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"events.json": `{"events":[
			{"slug":"retreat","date":"August 15-17, 2024"},
			{"slug":"retreat","date":"September 1, 2024"},
			{"slug":"","date":"October 1, 2024"},
			{"slug":"mystery","date":"Coming soon"},
			{"slug":"typo","date":"May 1, 2025","startDate":"2025-13-40"}
		]}`,
		"ambassadors.json": `{"ambassadors":[{"slug":" "}]}`,
		"blog.json":        `{"posts":[`,
	})

	problems, err := Validate(dir)
	require.NoError(t, err)

	var lines []string
	for _, p := range problems {
		lines = append(lines, p.String())
	}
	assert.ElementsMatch(t, []string{
		`events.json[3] (mystery): unparsable date "Coming soon"; add a startDate`,
		`events.json[4] (typo): unparsable startDate "2025-13-40"`,
		`events.json[1] (retreat): duplicate slug, first used at [0]`,
		`events.json[2]: empty slug`,
		`ambassadors.json[0]: empty slug`,
		`blog.json: invalid JSON: unexpected end of JSON input`,
	}, lines)
}

func TestValidate_blankStartDateFallsBackToDate(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"events.json": `{"events":[{"slug":"soon","date":"Coming soon","startDate":" "}]}`,
	})

	problems, err := Validate(dir)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, `events.json[0] (soon): unparsable date "Coming soon"; add a startDate`, problems[0].String())
}

func TestValidate_missingFilesAreFine(t *testing.T) {
	problems, err := Validate(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestValidate_readError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "events.json"), 0o755))

	_, err := Validate(dir)
	require.Error(t, err)
}

func newTestApp(t *testing.T, h http.Handler) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut)
	app.Now = func() time.Time { return time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC) }
	if h != nil {
		srv := httptest.NewServer(h)
		t.Cleanup(srv.Close)
		app.NewClient = func(string) *contentapi.Client {
			return contentapi.NewClient(srv.URL, srv.Client(), slog.New(slog.DiscardHandler))
		}
	}
	return app, &out, &errOut
}

func TestRun_validate(t *testing.T) {
	app, out, _ := newTestApp(t, nil)
	dir := writeFiles(t, map[string]string{"ambassadors.json": `{"ambassadors":[{"slug":"a"},{"slug":"a"}]}`})

	code := app.Run(context.Background(), []string{"validate", "-data", dir})
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "ambassadors.json[1] (a): duplicate slug")
	assert.Contains(t, out.String(), "1 problem(s)")

	out.Reset()
	code = app.Run(context.Background(), []string{"validate", "-data", t.TempDir()})
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), ": ok")
}

const eventsBody = `{"events":[
	{"slug":"latina-wellness-retreat-2024","name":"Latina Wellness Retreat","date":"August 15-17, 2024","isPast":true},
	{"slug":"money-circle","name":"Money Circle","date":"October 20, 2026","location":"Miami, FL","isPast":false},
	{"slug":"gala","name":"Winter Gala","date":"December 5, 2026","isPast":false}
]}`

func TestRun_events(t *testing.T) {
	app, out, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(eventsBody))
	}))

	code := app.Run(context.Background(), []string{"events", "-api", "ignored"})
	require.Equal(t, 0, code)
	s := out.String()
	assert.Contains(t, s, "Next: Money Circle (October 20, 2026)")
	assert.Contains(t, s, "Upcoming (2)")
	assert.Contains(t, s, "Past (1)")
	assert.Less(t, strings.Index(s, "Upcoming"), strings.Index(s, "latina-wellness-retreat-2024"))
	assert.Contains(t, s, " - Miami, FL")

	out.Reset()
	code = app.Run(context.Background(), []string{"events", "-by-month"})
	require.Equal(t, 0, code)
	s = out.String()
	assert.Less(t, strings.Index(s, "August 2024"), strings.Index(s, "October 2026"))
	assert.Less(t, strings.Index(s, "October 2026"), strings.Index(s, "December 2026"))
}

func TestRun_events_apiDown(t *testing.T) {
	app, _, errOut := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	code := app.Run(context.Background(), []string{"events"})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "contentctl events: fetch events")
}

func TestRun_blog(t *testing.T) {
	var gotQuery string
	app, out, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"posts":[{"slug":"rest","title":"Rest Is Power","date":"March 2, 2025","category":"Wellness","featured":true}],"categories":["Business","Wellness"],"popularTags":["self-care"]}`))
	}))

	code := app.Run(context.Background(), []string{"blog", "-category", "Wellness", "-tag", "self-care"})
	require.Equal(t, 0, code)
	assert.Equal(t, "category=Wellness&tag=self-care", gotQuery)
	assert.Contains(t, out.String(), "* March 2, 2025")
	assert.Contains(t, out.String(), "categories: Business, Wellness")
	assert.Contains(t, out.String(), "popular tags: self-care")
}

func TestRun_hashPassword(t *testing.T) {
	app, out, _ := newTestApp(t, nil)

	require.Equal(t, 0, app.Run(context.Background(), []string{"hash-password", "s3cret"}))
	hash := strings.TrimSpace(out.String())
	assert.NoError(t, auth.NewBcryptHasher(0).Compare(hash, "s3cret"))

	assert.Equal(t, 1, app.Run(context.Background(), []string{"hash-password"}))
}

func TestRun_usage(t *testing.T) {
	app, _, errOut := newTestApp(t, nil)

	assert.Equal(t, 2, app.Run(context.Background(), nil))
	assert.Contains(t, errOut.String(), "usage: contentctl")
	assert.Equal(t, 2, app.Run(context.Background(), []string{"deploy"}))
	assert.Contains(t, errOut.String(), `unknown command "deploy"`)
	assert.Equal(t, 0, app.Run(context.Background(), []string{"validate", "-h"}))
}
