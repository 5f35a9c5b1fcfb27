// Package application implements the interactive console menu over the
// analysis service.
package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/movieratings/internal/core"
	"github.com/JonMunkholm/movieratings/internal/metrics"
)

/* ----------------------------------------
	MENU TREE
---------------------------------------- */

type MenuItem struct {
	Key    string
	Label  string
	Action func()
	Exit   bool
}

type Menu struct {
	Title string
	Items []MenuItem
}

// find returns the item selected by key.
func (m *Menu) find(key string) (MenuItem, bool) {
	for _, item := range m.Items {
		if item.Key == key {
			return item, true
		}
	}
	return MenuItem{}, false
}

/* ----------------------------------------
	CONSOLE
---------------------------------------- */

// Console is the line-oriented menu loop. It keeps no state of its own
// beyond its collaborators; every action is a direct query on the service.
type Console struct {
	svc   *core.Service
	in    *bufio.Scanner
	out   io.Writer
	style styles
	menu  *Menu
}

// NewConsole creates a console reading choices from in and writing to out.
func NewConsole(svc *core.Service, in io.Reader, out io.Writer) *Console {
	c := &Console{
		svc:   svc,
		in:    bufio.NewScanner(in),
		out:   out,
		style: newStyles(out),
	}
	c.menu = c.buildMenu()
	return c
}

func (c *Console) buildMenu() *Menu {
	n := c.svc.DefaultCount()

	return &Menu{
		Title: "Choose an analysis option:",
		Items: []MenuItem{
			{Key: "1", Label: fmt.Sprintf("Top %d Highest Rated Movies", n), Action: c.showTopRated},
			{Key: "2", Label: fmt.Sprintf("Worst %d Movies", n), Action: c.showWorstRated},
			{Key: "3", Label: "Best Years for Movies", Action: c.showBestYears},
			{Key: "4", Label: "Filter by Genre", Action: c.filterByGenre},
			{Key: "5", Label: "Exit", Exit: true},
		},
	}
}

// Banner prints the application title.
func (c *Console) Banner() {
	c.println(c.style.title.Render("Movie Ratings Analyser"))
	c.println("========================")
}

// ReportLoad tells the user how the startup load went. A failed load is
// reported here and the session carries on with the empty dataset.
func (c *Console) ReportLoad(ds *core.Dataset, err error) {
	if err != nil {
		c.println(c.style.err.Render("Error loading movie data: " + core.FormatUserError(err)))
		c.printf("Please ensure '%s' exists and is properly formatted.\n\n", ds.Source)
		return
	}
	c.printf("Loaded %d movies from dataset\n\n", ds.Len())
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()

		choice, ok := c.readLine()
		c.println("")
		if !ok {
			return c.in.Err()
		}

		item, found := c.menu.find(choice)
		switch {
		case !found:
			c.println(c.style.notice.Render("Invalid choice. Please try again.") + "\n")
		case item.Exit:
			c.println("Thanks for using Movie Ratings Analyser!")
			return nil
		default:
			item.Action()
		}
	}
}

func (c *Console) printMenu() {
	c.println(c.style.heading.Render(c.menu.Title))
	for _, item := range c.menu.Items {
		c.printf("%s. %s\n", item.Key, item.Label)
	}
	c.printf("\nEnter your choice (1-%d): ", len(c.menu.Items))
}

/* ----------------------------------------
	ACTIONS
---------------------------------------- */

func (c *Console) showTopRated() {
	if c.noData() {
		return
	}
	metrics.ObserveQuery(metrics.SurfaceConsole, "top_rated")

	n := c.svc.DefaultCount()
	c.printRanked(fmt.Sprintf("Top %d Highest Rated Movies:", n), "================================", c.svc.TopRated(n))
}

func (c *Console) showWorstRated() {
	if c.noData() {
		return
	}
	metrics.ObserveQuery(metrics.SurfaceConsole, "worst_rated")

	n := c.svc.DefaultCount()
	c.printRanked(fmt.Sprintf("Worst %d Movies:", n), "==================", c.svc.WorstRated(n))
}

func (c *Console) showBestYears() {
	if c.noData() {
		return
	}
	metrics.ObserveQuery(metrics.SurfaceConsole, "best_years")

	n := c.svc.DefaultCount()
	c.println(c.style.heading.Render(fmt.Sprintf("Top %d Years for Movies (by average rating):", n)))
	c.println("===============================================")
	for _, y := range c.svc.BestYears(n) {
		c.printf("%d: %s/10.0\n", y.Year, core.FormatRating(y.Average))
	}
	c.println("")
}

func (c *Console) filterByGenre() {
	if c.noData() {
		return
	}

	c.println(c.style.heading.Render("Available Genres:"))
	for i, g := range c.svc.Genres() {
		c.printf("%d. %s\n", i+1, g)
	}

	c.printf("\nEnter genre name: ")
	line, _ := c.readLine()
	genre := strings.TrimSpace(line)
	if genre == "" {
		c.println(c.style.notice.Render("No genre entered.") + "\n")
		return
	}

	metrics.ObserveQuery(metrics.SurfaceConsole, "filter_by_genre")
	movies := c.svc.FilterByGenre(genre)
	if len(movies) == 0 {
		c.printf("No movies found for genre: %s\n\n", genre)
		return
	}

	c.println("")
	c.println(c.style.heading.Render(fmt.Sprintf("Movies in '%s' genre:", genre)))
	c.println("=====================================")
	for _, m := range core.SortByRatingDesc(movies) {
		c.printf("• %s\n", m)
	}
	c.println("")
}

/* ----------------------------------------
	HELPERS
---------------------------------------- */

func (c *Console) printRanked(title, rule string, movies []core.Movie) {
	c.println(c.style.heading.Render(title))
	c.println(rule)
	for i, m := range movies {
		c.printf("%d. %s\n", i+1, m)
	}
	c.println("")
}

// noData prints a notice and reports true when there is nothing to query.
func (c *Console) noData() bool {
	if !c.svc.Dataset().Empty() {
		return false
	}
	c.println(c.style.muted.Render("No movies loaded.") + "\n")
	return true
}

// readLine returns the next input line, trimmed. ok is false at end of input.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
