// Package contentctl implements the content authoring CLI: it validates the
// JSON content files and reads the live API through the content client.
package contentctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"latinaempire/internal/adapters/auth"
	"latinaempire/internal/adapters/contentapi"
	"latinaempire/internal/domain"
)

const usage = `usage: contentctl <command> [flags]

commands:
  validate -data DIR                                  check content files for slug and date problems
  events -api URL [-by-month]                         print upcoming and past events
  blog -api URL [-category C] [-tag T] [-search Q]    print blog posts
  hash-password PASSWORD                              print a bcrypt hash for ADMIN_PASSWORD_HASH
`

// errProblems signals that validation found problems; it maps to exit code 1
// without an extra error line.
var errProblems = errors.New("content problems found")

// App runs contentctl commands. Now and NewClient are replaceable in tests.
type App struct {
	Out       io.Writer
	Err       io.Writer
	Now       func() time.Time
	NewClient func(baseURL string) *contentapi.Client
}

// NewApp returns an App writing to out and errOut.
func NewApp(out, errOut io.Writer) *App {
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return &App{
		Out: out,
		Err: errOut,
		Now: time.Now,
		NewClient: func(baseURL string) *contentapi.Client {
			return contentapi.NewClient(baseURL, contentapi.NewHTTPClient(10*time.Second), logger)
		},
	}
}

// Run executes the command in args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.Err, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "validate":
		err = a.validate(args[1:])
	case "events":
		err = a.events(ctx, args[1:])
	case "blog":
		err = a.blog(ctx, args[1:])
	case "hash-password":
		err = a.hashPassword(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.Out, usage)
		return 0
	default:
		fmt.Fprintf(a.Err, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errProblems):
		return 1
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(a.Err, "contentctl %s: %v\n", args[0], err)
		return 1
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Err)
	return fs
}

func (a *App) validate(args []string) error {
	fs := a.flagSet("validate")
	dir := fs.String("data", "data", "content directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	problems, err := Validate(*dir)
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		fmt.Fprintf(a.Out, "%s: ok\n", *dir)
		return nil
	}
	for _, p := range problems {
		fmt.Fprintln(a.Out, p.String())
	}
	fmt.Fprintf(a.Out, "%d problem(s)\n", len(problems))
	return errProblems
}

func (a *App) events(ctx context.Context, args []string) error {
	fs := a.flagSet("events")
	api := fs.String("api", "http://localhost:8080", "content API base URL")
	byMonth := fs.Bool("by-month", false, "group every dated event by start month")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res := a.NewClient(*api).FetchEvents(ctx, domain.EventFilter{})
	if res.State() == contentapi.StateError {
		return fmt.Errorf("fetch events: %w", res.Err)
	}
	if res.State() == contentapi.StateEmpty {
		fmt.Fprintln(a.Out, "No events yet.")
		return nil
	}

	if *byMonth {
		for _, m := range domain.GroupEventsByMonth(res.Items) {
			fmt.Fprintf(a.Out, "%s %d\n", m.Month, m.Year)
			for _, e := range m.Events {
				a.printEvent(e)
			}
		}
		return nil
	}

	if next := domain.NextEvent(res.Items, a.Now()); next != nil {
		fmt.Fprintf(a.Out, "Next: %s (%s)\n\n", next.Name, next.Date)
	}
	past, upcoming := domain.PartitionEvents(res.Items)
	fmt.Fprintf(a.Out, "Upcoming (%d)\n", len(upcoming))
	for _, e := range upcoming {
		a.printEvent(e)
	}
	fmt.Fprintf(a.Out, "\nPast (%d)\n", len(past))
	for _, e := range past {
		a.printEvent(e)
	}
	return nil
}

func (a *App) printEvent(e *domain.Event) {
	fmt.Fprintf(a.Out, "  %-22s %s [%s]", e.Date, e.Name, e.Slug)
	if e.Location != "" {
		fmt.Fprintf(a.Out, " - %s", e.Location)
	}
	fmt.Fprintln(a.Out)
}

func (a *App) blog(ctx context.Context, args []string) error {
	fs := a.flagSet("blog")
	api := fs.String("api", "http://localhost:8080", "content API base URL")
	var filter domain.BlogFilter
	fs.StringVar(&filter.Category, "category", "", "only posts in this category")
	fs.StringVar(&filter.Tag, "tag", "", "only posts with this tag")
	fs.StringVar(&filter.Search, "search", "", "substring search")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, res := a.NewClient(*api).FetchBlog(ctx, filter)
	switch res.State() {
	case contentapi.StateError:
		return fmt.Errorf("fetch blog: %w", res.Err)
	case contentapi.StateEmpty:
		fmt.Fprintln(a.Out, "No posts match.")
	default:
		for _, p := range res.Items {
			star := " "
			if p.Featured {
				star = "*"
			}
			fmt.Fprintf(a.Out, "%s %-18s %s [%s] %s\n", star, p.Date, p.Title, p.Category, p.Slug)
		}
	}
	if len(f.Categories) > 0 {
		fmt.Fprintf(a.Out, "\ncategories: %s\n", strings.Join(f.Categories, ", "))
	}
	if len(f.PopularTags) > 0 {
		fmt.Fprintf(a.Out, "popular tags: %s\n", strings.Join(f.PopularTags, ", "))
	}
	return nil
}

func (a *App) hashPassword(args []string) error {
	if len(args) != 1 || args[0] == "" {
		return errors.New("expected exactly one PASSWORD argument")
	}
	hash, err := auth.NewBcryptHasher(0).Hash(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, hash)
	return nil
}
