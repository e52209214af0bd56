package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/monkeyexplorer/internal/catalog"
	"github.com/dbsmedya/monkeyexplorer/internal/config"
)

const (
	menuRuleWidth    = 50
	detailsRuleWidth = 60
	listRuleWidth    = 60
)

// Renderer writes catalog screens to an output stream.
type Renderer struct {
	out       io.Writer
	color     bool
	wrapWidth int
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer, cfg config.DisplayConfig) *Renderer {
	return &Renderer{
		out:       out,
		color:     cfg.Color,
		wrapWidth: cfg.WrapWidth,
	}
}

func (r *Renderer) paint(c color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

func (r *Renderer) println(c color.Color, s string) {
	fmt.Fprintln(r.out, r.paint(c, s))
}

// Header prints a title framed by rules as wide as the title.
func (r *Renderer) Header(format string, args ...interface{}) {
	title := fmt.Sprintf(format, args...)
	width := runewidth.StringWidth(title) + 4
	r.println(color.Cyan, strings.Repeat("=", width))
	r.println(color.Cyan, "  "+title)
	r.println(color.Cyan, strings.Repeat("=", width))
}

// Section prints a section header underlined to its width.
func (r *Renderer) Section(title string) {
	r.println(color.Green, "\n"+title)
	r.println(color.Green, strings.Repeat("-", runewidth.StringWidth(title)))
}

// SideBySide prints two blocks of text as columns separated by at least
// padding spaces. Column alignment uses terminal display width.
func (r *Renderer) SideBySide(left string, rightLines []string, padding int) {
	leftLines := strings.Split(strings.TrimRight(left, "\n"), "\n")

	leftWidth := 0
	for _, line := range leftLines {
		if w := runewidth.StringWidth(line); w > leftWidth {
			leftWidth = w
		}
	}

	rows := max(len(leftLines), len(rightLines))
	for i := 0; i < rows; i++ {
		leftPart, rightPart := "", ""
		if i < len(leftLines) {
			leftPart = leftLines[i]
		}
		if i < len(rightLines) {
			rightPart = rightLines[i]
		}

		if rightPart == "" {
			fmt.Fprintln(r.out, r.paint(color.Yellow, leftPart))
			continue
		}
		fmt.Fprint(r.out, r.paint(color.Yellow, runewidth.FillRight(leftPart, leftWidth+padding)))
		fmt.Fprintln(r.out, r.paint(color.Cyan, rightPart))
	}
}

// Banner prints the welcome screen.
func (r *Renderer) Banner() {
	r.println(color.Yellow, bannerArt)
}

// Menu prints the main menu and the choice prompt.
func (r *Renderer) Menu(items []string) {
	r.println(color.Cyan, "\n"+strings.Repeat("═", menuRuleWidth))
	r.println(color.Cyan, "                 MAIN MENU")
	r.println(color.Cyan, strings.Repeat("═", menuRuleWidth))

	for i, item := range items {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, item)
	}
	fmt.Fprintf(r.out, "\nEnter your choice (1-%d): ", len(items))
}

// Prompt prints text without a trailing newline.
func (r *Renderer) Prompt(text string) {
	fmt.Fprint(r.out, text)
}

// Pause prints the continue prompt.
func (r *Renderer) Pause() {
	fmt.Fprint(r.out, "\nPress Enter to continue...")
}

// Error prints a failure message.
func (r *Renderer) Error(format string, args ...interface{}) {
	r.println(color.Red, "❌ "+fmt.Sprintf(format, args...))
}

// Info prints a neutral status message.
func (r *Renderer) Info(format string, args ...interface{}) {
	r.println(color.Green, "✅ "+fmt.Sprintf(format, args...))
}

// MonkeyList prints every monkey with its view count, followed by totals.
func (r *Renderer) MonkeyList(monkeys []catalog.Monkey, stats catalog.SessionStats) {
	r.println(color.Green, "\n🐵 ALL MONKEY SPECIES:")
	r.println(color.Green, strings.Repeat("-", listRuleWidth))

	views := make(map[string]int, len(stats.Views))
	for _, v := range stats.Views {
		views[v.Name] = v.Count
	}

	for i, m := range monkeys {
		fmt.Fprintf(r.out, "%02d. %s%s",
			i+1,
			r.paint(color.Yellow, m.Name),
			r.paint(color.Gray, " - "+m.Location),
		)
		if n := views[m.Name]; n > 0 {
			fmt.Fprint(r.out, r.paint(color.Magenta, fmt.Sprintf(" (Viewed %s)", Pluralize(n, "time"))))
		}
		fmt.Fprintln(r.out)
	}

	r.println(color.Cyan, fmt.Sprintf("\nTotal Monkeys: %d", len(monkeys)))
	r.println(color.Cyan, fmt.Sprintf("Total Views: %d", stats.TotalAccesses))
	if stats.MostPopular != "" {
		r.println(color.Cyan, fmt.Sprintf("Most Popular: %s", stats.MostPopular))
	}
}

// MonkeyDetails prints the detail card for one monkey.
func (r *Renderer) MonkeyDetails(m catalog.Monkey, views int) {
	r.println(color.Yellow, detailsArt)
	r.println(color.Cyan, strings.Repeat("═", detailsRuleWidth))

	r.field("NAME", color.Yellow, m.Name)
	r.field("LOCATION", color.Green, m.Location)

	if m.HasPopulation() {
		r.field("POPULATION", color.Magenta, FormatPopulation(*m.Population))
	}
	if m.HasCoordinates() {
		r.field("COORDINATES", color.Gray, FormatCoordinates(*m.Latitude, *m.Longitude))
	}

	fmt.Fprintln(r.out, "\nDETAILS:")
	for _, line := range Wrap(m.Details, r.wrapWidth) {
		r.println(color.Gray, "  "+line)
	}

	r.println(color.Cyan, fmt.Sprintf("\nVIEWS: %s", Pluralize(views, "time")))
	r.println(color.Cyan, strings.Repeat("═", detailsRuleWidth))
}

func (r *Renderer) field(label string, c color.Color, value string) {
	fmt.Fprintf(r.out, "\n%s:\n", label)
	r.println(c, "  "+value)
}

// NotFound prints a miss for name and offers a few names to try.
func (r *Renderer) NotFound(name string, suggestions []string) {
	r.Error("Monkey '%s' not found.", name)
	if len(suggestions) == 0 {
		return
	}
	r.println(color.Red, "\n💡 Tip: Try one of these names:")
	r.println(color.Red, fmt.Sprintf("   %s...", strings.Join(suggestions, ", ")))
}

// LocationResults prints the monkeys matching a location search.
func (r *Renderer) LocationResults(query string, monkeys []catalog.Monkey) {
	if len(monkeys) == 0 {
		r.Error("No monkeys found in '%s'.", query)
		return
	}

	r.Section(fmt.Sprintf("🌍 MONKEYS IN '%s':", strings.ToUpper(query)))
	nameWidth := 0
	for _, m := range monkeys {
		nameWidth = max(nameWidth, runewidth.StringWidth(m.Name))
	}
	for _, m := range monkeys {
		fmt.Fprintf(r.out, "  • %s %s\n",
			r.paint(color.Yellow, runewidth.FillRight(m.Name, nameWidth)),
			r.paint(color.Gray, m.Location),
		)
	}
	r.println(color.Cyan, fmt.Sprintf("\nMatches: %d", len(monkeys)))
}

// Locations prints the distinct catalog locations.
func (r *Renderer) Locations(locations []string) {
	r.Section("🗺  ALL LOCATIONS:")
	for i, loc := range locations {
		fmt.Fprintf(r.out, "%02d. %s\n", i+1, r.paint(color.Green, loc))
	}
	r.println(color.Cyan, fmt.Sprintf("\nTotal Locations: %d", len(locations)))
}

// SessionSummary prints the ledger totals and per-monkey views.
func (r *Renderer) SessionSummary(stats catalog.SessionStats) {
	for _, line := range r.summaryLines(stats) {
		r.println(color.Cyan, line)
	}
}

func (r *Renderer) summaryLines(stats catalog.SessionStats) []string {
	lines := []string{
		"📊 SESSION STATISTICS:",
		strings.Repeat("-", 25),
		fmt.Sprintf("Total monkey views: %d", stats.TotalAccesses),
	}
	if stats.MostPopular != "" {
		lines = append(lines, fmt.Sprintf("Most viewed monkey: %s (%s)",
			stats.MostPopular, Pluralize(stats.MostPopularViews, "view")))
	}
	if len(stats.Views) == 0 {
		return lines
	}

	nameWidth := 0
	for _, v := range stats.Views {
		nameWidth = max(nameWidth, runewidth.StringWidth(v.Name))
	}
	lines = append(lines, "")
	for _, v := range stats.Views {
		lines = append(lines, fmt.Sprintf("  %s %4d", runewidth.FillRight(v.Name, nameWidth), v.Count))
	}
	return lines
}

// Distribution prints how often each monkey was picked out of total picks.
func (r *Renderer) Distribution(names []string, picks map[string]int, total int) {
	r.Section("🎲 RANDOM PICK DISTRIBUTION:")
	nameWidth := 0
	for _, name := range names {
		nameWidth = max(nameWidth, runewidth.StringWidth(name))
	}
	for _, name := range names {
		share := 0.0
		if total > 0 {
			share = float64(picks[name]) * 100 / float64(total)
		}
		fmt.Fprintf(r.out, "  %s %6d  %5.1f%%\n", runewidth.FillRight(name, nameWidth), picks[name], share)
	}
	r.println(color.Cyan, fmt.Sprintf("\nTotal Picks: %d", total))
}

// Farewell prints the goodbye screen with session statistics beside the art.
func (r *Renderer) Farewell(stats catalog.SessionStats) {
	r.println(color.Yellow, "\n    Thanks for exploring the Monkey Database! 🐵\n")
	r.SideBySide(farewellArt, r.summaryLines(stats), 6)
	r.println(color.Green, "\nGoodbye! Come back soon! 🌟")
}
