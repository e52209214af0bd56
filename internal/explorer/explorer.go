// Package explorer runs the interactive menu over a catalog.
package explorer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dbsmedya/monkeyexplorer/internal/catalog"
	"github.com/dbsmedya/monkeyexplorer/internal/config"
	"github.com/dbsmedya/monkeyexplorer/internal/display"
	"github.com/dbsmedya/monkeyexplorer/internal/logger"
)

type action int

const (
	actionList action = iota + 1
	actionFind
	actionRandom
	actionSearch
	actionLocations
	actionStats
	actionReset
	actionExit
)

var menuItems = []string{
	"📋 List all monkeys",
	"🔍 Get monkey details by name",
	"🎲 Get a random monkey",
	"🌍 Search monkeys by location",
	"🗺  List all locations",
	"📊 Show session statistics",
	"🔄 Reset statistics",
	"🚪 Exit",
}

// Explorer drives one interactive session. It is not safe for concurrent use.
type Explorer struct {
	catalog *catalog.Catalog
	render  *display.Renderer
	in      io.Reader
	cfg     config.DisplayConfig
	log     *logger.Logger

	lines <-chan string
	errc  <-chan error
}

// New creates an Explorer reading choices from in and writing screens to out.
func New(c *catalog.Catalog, in io.Reader, out io.Writer, cfg config.DisplayConfig, log *logger.Logger) *Explorer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Explorer{
		catalog: c,
		render:  display.NewRenderer(out, cfg),
		in:      in,
		cfg:     cfg,
		log:     log,
	}
}

// Run shows the menu until the user exits, input ends, or ctx is canceled.
// The farewell screen with session statistics is always printed.
func (e *Explorer) Run(ctx context.Context) error {
	e.startReader(ctx)

	e.log.Info("session started")
	e.render.Banner()

	err := e.loop(ctx)

	stats := e.catalog.Stats()
	e.render.Farewell(stats)
	e.log.Infow("session ended",
		"total_accesses", stats.TotalAccesses,
		"most_popular", stats.MostPopular,
		"most_popular_views", stats.MostPopularViews,
	)
	return err
}

func (e *Explorer) loop(ctx context.Context) error {
	for {
		e.render.Menu(menuItems)

		line, ok, err := e.readLine(ctx)
		if err != nil || !ok {
			return err
		}

		choice := parseChoice(line)
		if choice == actionExit {
			return nil
		}
		if err := e.dispatch(ctx, choice); err != nil {
			return err
		}

		if !e.cfg.Pause {
			continue
		}
		e.render.Pause()
		if _, ok, err := e.readLine(ctx); err != nil || !ok {
			return err
		}
	}
}

// dispatch runs one menu action. Only input failures are returned.
func (e *Explorer) dispatch(ctx context.Context, choice action) error {
	switch choice {
	case actionList:
		e.listAll()
	case actionFind:
		return e.findByName(ctx)
	case actionRandom:
		e.randomPick()
	case actionSearch:
		return e.searchByLocation(ctx)
	case actionLocations:
		e.render.Locations(e.catalog.AllLocations())
	case actionStats:
		e.render.SessionSummary(e.catalog.Stats())
	case actionReset:
		e.catalog.ResetAccessCounts()
		e.render.Info("Statistics reset.")
	default:
		e.render.Error("Invalid choice. Please select 1-%d.", len(menuItems))
	}
	return nil
}

func (e *Explorer) listAll() {
	monkeys := e.catalog.ListAll()
	e.render.MonkeyList(monkeys, e.catalog.Stats())
}

func (e *Explorer) findByName(ctx context.Context) error {
	e.render.Section("🔍 FIND MONKEY BY NAME:")
	e.render.Prompt("Enter monkey name: ")

	line, ok, err := e.readLine(ctx)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(line)
	if !ok || name == "" {
		e.render.Error("Please enter a valid monkey name.")
		return nil
	}

	m, found := e.catalog.FindByName(name)
	if !found {
		e.log.WithQuery(name).Info("lookup missed")
		e.render.NotFound(name, e.catalog.Suggestions(e.cfg.Suggestions))
		return nil
	}
	e.render.MonkeyDetails(m, e.catalog.AccessCount(m.Name))
	return nil
}

func (e *Explorer) randomPick() {
	e.render.Section("🎲 RANDOM MONKEY SELECTION:")
	m := e.catalog.RandomPick()
	e.log.WithMonkey(m.Name).Debug("random pick")
	e.render.MonkeyDetails(m, e.catalog.AccessCount(m.Name))
}

func (e *Explorer) searchByLocation(ctx context.Context) error {
	e.render.Section("🌍 SEARCH BY LOCATION:")
	e.render.Prompt("Enter location: ")

	line, ok, err := e.readLine(ctx)
	if err != nil {
		return err
	}
	query := strings.TrimSpace(line)
	if !ok || query == "" {
		e.render.Error("Please enter a location.")
		return nil
	}

	matches := e.catalog.FindByLocation(query)
	e.log.WithQuery(query).Debugw("location search", "matches", len(matches))
	e.render.LocationResults(query, matches)
	return nil
}

// startReader feeds input lines to the loop so a blocked read never
// prevents cancellation from ending the session.
func (e *Explorer) startReader(ctx context.Context) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(e.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- fmt.Errorf("failed to read input: %w", err)
		}
	}()

	e.lines = lines
	e.errc = errc
}

// readLine returns the next input line. ok is false once input is
// exhausted or ctx is canceled.
func (e *Explorer) readLine(ctx context.Context) (string, bool, error) {
	select {
	case <-ctx.Done():
		e.log.Info("session interrupted")
		return "", false, nil
	case line, ok := <-e.lines:
		if ok {
			return line, true, nil
		}
		select {
		case err := <-e.errc:
			return "", false, err
		default:
			return "", false, nil
		}
	}
}

func parseChoice(line string) action {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < int(actionList) || n > int(actionExit) {
		return 0
	}
	return action(n)
}
