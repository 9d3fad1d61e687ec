package stubs

import (
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// Schemas covers every display variant plus schemas no rule classifies.
var Schemas = []string{
	"file.image.jpeg", "file.image.raw", "file.document.pdf", "file.video.mp4",
	"file.text.markdown", "file.audio.mp3",
	"activity.browsing.search", "activity.browsing.website",
	"activity.exercise.session", "activity.watching.movie", "activity.location",
	"message.telegram", "message.facebook", "message.text.sms",
	"social.twitter.tweet", "social.reddit.comment", "social.hackernews.story", "social.blog.post",
	"finance.income", "finance.expense",
	"journal", "commit", "call.telegram", "event",
}

type EntryStub struct {
	entry domain.Entry
}

func NewEntryStub() EntryStub {
	id := uuid.New()
	return EntryStub{entry: domain.Entry{
		ID:              id,
		Schema:          "journal",
		Title:           gofakeit.Sentence(3),
		Description:     gofakeit.Sentence(8),
		DateOnTimeline:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Source:          "frontend/web",
		ExtraAttributes: domain.Attributes{},
	}}
}

func (es EntryStub) WithSchema(schema string) EntryStub {
	es.entry.Schema = schema
	return es
}

func (es EntryStub) At(t time.Time) EntryStub {
	es.entry.DateOnTimeline = t
	return es
}

func (es EntryStub) WithSource(source string) EntryStub {
	es.entry.Source = source
	return es
}

func (es EntryStub) WithoutID() EntryStub {
	es.entry.ID = uuid.Nil
	return es
}

func (es EntryStub) WithAttr(key string, value any) EntryStub {
	attrs := make(domain.Attributes, len(es.entry.ExtraAttributes)+1)
	for k, v := range es.entry.ExtraAttributes {
		attrs[k] = v
	}
	attrs[key] = value
	es.entry.ExtraAttributes = attrs
	return es
}

func (es EntryStub) WithLocation(lat, lon float64) EntryStub {
	return es.WithAttr("location", map[string]any{"latitude": lat, "longitude": lon})
}

func (es EntryStub) WithParticipants(sender, recipient any) EntryStub {
	return es.WithAttr("sender_id", sender).WithAttr("recipient_id", recipient)
}

func (es EntryStub) Get() domain.Entry {
	return es.entry
}

// RandomEntries returns n entries spread over the day starting at day,
// sorted by date, drawn from Schemas with random locations and message
// participants.
func RandomEntries(faker *gofakeit.Faker, day time.Time, n int) []domain.Entry {
	people := []string{"alice", "bob", "carol", "1001", "1002"}
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = faker.Number(0, 24*60*60-1)
	}
	slices.Sort(offsets)

	out := make([]domain.Entry, 0, n)
	for _, off := range offsets {
		s := NewEntryStub().
			WithSchema(faker.RandomString(Schemas)).
			At(day.Add(time.Duration(off) * time.Second))
		switch faker.Number(0, 3) {
		case 0:
			s = s.WithLocation(faker.Latitude(), faker.Longitude())
		case 1:
			s = s.WithAttr("location", map[string]any{"latitude": faker.Latitude()})
		}
		if faker.Bool() {
			s = s.WithParticipants(faker.RandomString(people), faker.RandomString(people))
		}
		out = append(out, s.Get())
	}
	return out
}

