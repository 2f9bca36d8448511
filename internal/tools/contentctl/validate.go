package contentctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"latinaempire/internal/eventdate"
	"latinaempire/internal/repository/jsonfile"
)

// Problem is one authoring mistake found in a content file.
type Problem struct {
	File    string
	Index   int // -1 when the problem concerns the whole file
	Slug    string
	Message string
}

func (p Problem) String() string {
	switch {
	case p.Index < 0:
		return fmt.Sprintf("%s: %s", p.File, p.Message)
	case p.Slug == "":
		return fmt.Sprintf("%s[%d]: %s", p.File, p.Index, p.Message)
	default:
		return fmt.Sprintf("%s[%d] (%s): %s", p.File, p.Index, p.Slug, p.Message)
	}
}

type slugged struct {
	Slug string `json:"slug"`
}

type eventEntry struct {
	Slug      string  `json:"slug"`
	Date      string  `json:"date"`
	StartDate *string `json:"startDate"`
}

// Validate checks every content file in dir. Missing files are skipped; the
// server serves them as empty collections.
func Validate(dir string) ([]Problem, error) {
	var problems []Problem

	var events struct {
		Events []*eventEntry `json:"events"`
	}
	found, err := decodeFile(dir, jsonfile.EventsFile, &events, &problems)
	if err != nil {
		return nil, err
	}
	if found {
		slugs := make([]string, len(events.Events))
		for i, e := range events.Events {
			if e == nil {
				continue
			}
			slugs[i] = e.Slug
			problems = append(problems, checkEventDates(i, e)...)
		}
		problems = append(problems, checkSlugs(jsonfile.EventsFile, slugs)...)
	}

	var ambassadors struct {
		Ambassadors []*slugged `json:"ambassadors"`
	}
	found, err = decodeFile(dir, jsonfile.AmbassadorsFile, &ambassadors, &problems)
	if err != nil {
		return nil, err
	}
	if found {
		problems = append(problems, checkSlugs(jsonfile.AmbassadorsFile, slugsOf(ambassadors.Ambassadors))...)
	}

	var blog struct {
		Posts []*slugged `json:"posts"`
	}
	found, err = decodeFile(dir, jsonfile.BlogFile, &blog, &problems)
	if err != nil {
		return nil, err
	}
	if found {
		problems = append(problems, checkSlugs(jsonfile.BlogFile, slugsOf(blog.Posts))...)
	}
	return problems, nil
}

// decodeFile reports whether name exists and decoded. A decode failure is
// recorded as a problem; other read errors are returned.
func decodeFile(dir, name string, dest any, problems *[]Problem) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		*problems = append(*problems, Problem{File: name, Index: -1, Message: "invalid JSON: " + err.Error()})
		return false, nil
	}
	return true, nil
}

func checkEventDates(i int, e *eventEntry) []Problem {
	if e.StartDate != nil && strings.TrimSpace(*e.StartDate) != "" {
		if _, ok := eventdate.Parse(*e.StartDate); !ok {
			return []Problem{{File: jsonfile.EventsFile, Index: i, Slug: e.Slug, Message: fmt.Sprintf("unparsable startDate %q", *e.StartDate)}}
		}
		return nil
	}
	if _, ok := eventdate.Parse(e.Date); !ok {
		return []Problem{{File: jsonfile.EventsFile, Index: i, Slug: e.Slug, Message: fmt.Sprintf("unparsable date %q; add a startDate", e.Date)}}
	}
	return nil
}

func checkSlugs(file string, slugs []string) []Problem {
	var out []Problem
	first := make(map[string]int, len(slugs))
	for i, s := range slugs {
		if strings.TrimSpace(s) == "" {
			out = append(out, Problem{File: file, Index: i, Message: "empty slug"})
			continue
		}
		if j, dup := first[s]; dup {
			out = append(out, Problem{File: file, Index: i, Slug: s, Message: fmt.Sprintf("duplicate slug, first used at [%d]", j)})
			continue
		}
		first[s] = i
	}
	return out
}

func slugsOf(items []*slugged) []string {
	out := make([]string, len(items))
	for i, it := range items {
		if it != nil {
			out[i] = it.Slug
		}
	}
	return out
}
