package seeder

import (
	"fmt"
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// demoSources and demoArchives own every generated entry except journal
// entries, which carry the frontend tag.
var (
	demoSources = []domain.Source{
		{Type: domain.SourceFilesystem, Key: "photos", Config: map[string]any{"path": "/srv/photos"}},
		{Type: domain.SourceGit, Key: "lifelog", Config: map[string]any{"url": "https://example.com/lifelog.git"}},
		{Type: domain.SourceReddit, Key: "me"},
		{Type: domain.SourceHackerNews, Key: "me"},
		{Type: domain.SourceTwitter, Key: "me"},
		{Type: domain.SourceRSS, Key: "blog", Config: map[string]any{"url": "https://example.com/feed.xml"}},
	}
	demoArchives = []domain.Archive{
		{Type: domain.ArchiveGPX, Key: "walks", Description: "Phone GPS tracks"},
		{Type: domain.ArchiveTelegram, Key: "chats", Description: "Telegram export"},
		{Type: domain.ArchiveN26CSV, Key: "account", Description: "Bank statements"},
		{Type: domain.ArchiveGoogleTakeout, Key: "history", Description: "Browser history"},
	}
)

type kind struct {
	weight int
	make   func(g *generator, at time.Time) domain.Entry
}

var kinds = []kind{
	{8, (*generator).image},
	{1, (*generator).video},
	{6, (*generator).location},
	{8, (*generator).message},
	{2, (*generator).transaction},
	{2, (*generator).commit},
	{4, (*generator).browse},
	{2, (*generator).post},
	{1, (*generator).journal},
}

var contacts = []struct{ id, name string }{
	{"1001", "Alice"}, {"1002", "Bob"}, {"1003", "Carol"}, {"1004", "Dmitri"},
}

const selfID = "1000"

type generator struct {
	faker    *gofakeit.Faker
	lat, lon float64
	total    int
}

func newGenerator(seed int64) *generator {
	g := &generator{faker: gofakeit.New(seed)}
	g.lat, g.lon = g.faker.Float64Range(45, 55), g.faker.Float64Range(0, 20)
	for _, k := range kinds {
		g.total += k.weight
	}
	return g
}

// day returns n entries for the day starting at start, sorted by time.
// The same seed always yields the same entries, ids included, so a rerun
// inserts nothing new.
func (g *generator) day(start time.Time, n int) []domain.Entry {
	offsets := make([]int, n)
	for i := range offsets {
		// Waking hours, 07:00 to 23:59.
		offsets[i] = g.faker.Number(7*3600, 24*3600-1)
	}
	slices.Sort(offsets)

	out := make([]domain.Entry, 0, n)
	for _, off := range offsets {
		out = append(out, g.pick().make(g, start.Add(time.Duration(off)*time.Second)))
	}
	return out
}

func (g *generator) pick() kind {
	r := g.faker.Number(0, g.total-1)
	for _, k := range kinds {
		if r < k.weight {
			return k
		}
		r -= k.weight
	}
	return kinds[len(kinds)-1]
}

func (g *generator) entry(schema, source string, at time.Time) domain.Entry {
	return domain.Entry{
		ID:              uuid.MustParse(g.faker.UUID()),
		Schema:          schema,
		DateOnTimeline:  at.UTC(),
		Source:          source,
		ExtraAttributes: domain.Attributes{},
	}
}

// walk moves the current position a short step and returns it.
func (g *generator) walk() map[string]any {
	g.lat += g.faker.Float64Range(-0.005, 0.005)
	g.lon += g.faker.Float64Range(-0.005, 0.005)
	return map[string]any{"latitude": g.lat, "longitude": g.lon}
}

func (g *generator) image(at time.Time) domain.Entry {
	e := g.entry("file.image.jpeg", "filesystem/photos", at)
	e.Title = fmt.Sprintf("IMG_%04d.jpg", g.faker.Number(1, 9999))
	e.ExtraAttributes["file"] = map[string]any{"path": "/srv/photos/" + e.Title, "mimetype": "image/jpeg"}
	e.ExtraAttributes["width"] = 4032
	e.ExtraAttributes["height"] = 3024
	if g.faker.Bool() {
		e.ExtraAttributes["location"] = g.walk()
	}
	return e
}

func (g *generator) video(at time.Time) domain.Entry {
	e := g.entry("file.video.mp4", "filesystem/photos", at)
	e.Title = fmt.Sprintf("VID_%04d.mp4", g.faker.Number(1, 9999))
	e.ExtraAttributes["file"] = map[string]any{"path": "/srv/photos/" + e.Title, "mimetype": "video/mp4"}
	e.ExtraAttributes["duration"] = g.faker.Number(3, 300)
	return e
}

func (g *generator) location(at time.Time) domain.Entry {
	e := g.entry("activity.location", "gpx/walks", at)
	e.ExtraAttributes["location"] = g.walk()
	return e
}

func (g *generator) message(at time.Time) domain.Entry {
	e := g.entry("message.telegram", "telegram/chats", at)
	c := contacts[g.faker.Number(0, len(contacts)-1)]
	e.Description = g.faker.Sentence(g.faker.Number(2, 12))
	if g.faker.Bool() {
		e.ExtraAttributes["sender_id"] = c.id
		e.ExtraAttributes["sender_name"] = c.name
		e.ExtraAttributes["recipient_id"] = selfID
		e.ExtraAttributes["recipient_name"] = "Me"
	} else {
		e.ExtraAttributes["sender_id"] = selfID
		e.ExtraAttributes["sender_name"] = "Me"
		e.ExtraAttributes["recipient_id"] = c.id
		e.ExtraAttributes["recipient_name"] = c.name
	}
	return e
}

func (g *generator) transaction(at time.Time) domain.Entry {
	income := g.faker.Number(0, 4) == 0
	schema := "finance.expense"
	if income {
		schema = "finance.income"
	}
	e := g.entry(schema, "n26csv/account", at)
	e.ExtraAttributes["amount"] = g.faker.Price(1, 200)
	e.ExtraAttributes["currency"] = "EUR"
	if income {
		e.Title = "Payment received"
		e.ExtraAttributes["sender_name"] = g.faker.Company()
	} else {
		e.Title = "Card payment"
		e.ExtraAttributes["recipient_name"] = g.faker.Company()
	}
	return e
}

func (g *generator) commit(at time.Time) domain.Entry {
	e := g.entry("commit", "git/lifelog", at)
	e.Title = g.faker.HackerPhrase()
	e.ExtraAttributes["hash"] = g.faker.Regex("[0-9a-f]{40}")
	e.ExtraAttributes["url"] = "https://example.com/lifelog.git"
	return e
}

func (g *generator) browse(at time.Time) domain.Entry {
	e := g.entry("activity.browsing.website", "googletakeout/history", at)
	e.Title = g.faker.Sentence(4)
	e.ExtraAttributes["url"] = g.faker.URL()
	return e
}

func (g *generator) post(at time.Time) domain.Entry {
	var e domain.Entry
	switch g.faker.Number(0, 3) {
	case 0:
		e = g.entry("social.reddit.comment", "reddit/me", at)
	case 1:
		e = g.entry("social.hackernews.story", "hackernews/me", at)
	case 2:
		e = g.entry("social.twitter.tweet", "twitter/me", at)
	default:
		e = g.entry("social.blog.post", "rss/blog", at)
		e.Title = g.faker.Sentence(5)
	}
	e.Description = g.faker.Sentence(g.faker.Number(5, 20))
	e.ExtraAttributes["url"] = g.faker.URL()
	return e
}

func (g *generator) journal(at time.Time) domain.Entry {
	e := g.entry("journal", "frontend/web", at)
	e.Title = g.faker.Sentence(3)
	e.Description = g.faker.Paragraph(1, 3, 10, " ")
	return e
}
