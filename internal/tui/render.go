package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	core "github.com/heartmarshall/lifelog-timeline/internal/timeline"
)

// RenderDay lays out the groups of a day followed by its recap.
func RenderDay(day core.Day, loc *time.Location, st Styles) string {
	if len(day.Groups) == 0 {
		return st.Muted.Render("Nothing on this day.")
	}

	var b strings.Builder
	for _, g := range day.Groups {
		b.WriteString(st.GroupHeader.Render(g.Start.In(loc).Format("15:04")))
		b.WriteString("\n")
		for _, it := range g.Items {
			b.WriteString(renderItem(it, loc, st))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(renderRecap(day, st))
	return b.String()
}

func renderItem(it core.Item, loc *time.Location, st Styles) string {
	if it.Kind == core.ItemGallery {
		first := it.Gallery[0]
		return fmt.Sprintf("  %s %s",
			st.Time.Render(first.DateOnTimeline.In(loc).Format("15:04")),
			st.Gallery.Render(fmt.Sprintf("gallery of %d", len(it.Gallery))),
		)
	}

	e := it.Entry
	return fmt.Sprintf("  %s %s %s",
		st.Time.Render(e.DateOnTimeline.In(loc).Format("15:04")),
		st.Variant.Render("["+variantLabel(it.Variant, e)+"]"),
		entryTitle(e),
	)
}

// variantLabel refines the variant with the network or direction the
// schema carries.
func variantLabel(v core.Variant, e *domain.Entry) string {
	if n := core.PostNetwork(e); n != "" {
		return n
	}
	if n := core.MessageNetwork(e); n != "" {
		return string(v) + "/" + n
	}
	if k := core.TransactionOf(e); k != "" {
		return string(k)
	}
	return string(v)
}

func entryTitle(e *domain.Entry) string {
	switch {
	case e.Title != "":
		return e.Title
	case e.Description != "":
		line, _, _ := strings.Cut(e.Description, "\n")
		return line
	default:
		return e.Schema
	}
}

func renderRecap(day core.Day, st Styles) string {
	parts := make([]string, 0, len(core.RecapCategories)+2)
	for _, name := range core.RecapCategories {
		if n := day.Recap.Counts[name]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", name, n))
		}
	}
	if n := len(day.Threads); n > 0 {
		parts = append(parts, fmt.Sprintf("threads %d", n))
	}
	if loc := day.Recap.LatestLocation; loc != nil {
		parts = append(parts, fmt.Sprintf("last seen %.4f,%.4f", loc.Latitude, loc.Longitude))
	}
	if len(parts) == 0 {
		return ""
	}
	return st.Recap.Render(strings.Join(parts, " · "))
}
