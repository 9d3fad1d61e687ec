package timeline

import (
	"strings"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// Variant is the display variant of an entry.
type Variant string

const (
	VariantNone        Variant = "none"
	VariantImage       Variant = "image"
	VariantPDF         Variant = "pdf"
	VariantVideo       Variant = "video"
	VariantText        Variant = "text"
	VariantBrowsing    Variant = "browsing"
	VariantMessage     Variant = "message"
	VariantMotion      Variant = "motion"
	VariantWatch       Variant = "watch"
	VariantPost        Variant = "post"
	VariantTransaction Variant = "transaction"
	VariantJournal     Variant = "journal"
	VariantCommit      Variant = "commit"
)

// IsMedia reports whether entries of this variant are collapsed into galleries.
func (v Variant) IsMedia() bool {
	switch v {
	case VariantImage, VariantPDF, VariantVideo:
		return true
	}
	return false
}

type rule struct {
	prefix  string
	variant Variant
}

// rules is the single taxonomy every classification goes through. Order
// matters: the first matching prefix wins.
var rules = []rule{
	{"file.image", VariantImage},
	{"file.document.pdf", VariantPDF},
	{"file.video", VariantVideo},
	{"file.text", VariantText},
	{"activity.browsing", VariantBrowsing},
	{"activity.exercise.session", VariantMotion},
	{"activity.watching", VariantWatch},
	{"message", VariantMessage},
	{"social", VariantPost},
	{"finance.income", VariantTransaction},
	{"finance.expense", VariantTransaction},
	{"journal", VariantJournal},
	{"commit", VariantCommit},
}

// HasSchemaPrefix reports whether schema equals prefix or continues it with
// a further dot-separated segment. "file.image" matches "file.image" and
// "file.image.jpeg" but not "file.imagery". A prefix ending in a dot
// already marks the segment boundary, so "file." matches any child of
// "file" but not "file" itself.
func HasSchemaPrefix(schema, prefix string) bool {
	if !strings.HasPrefix(schema, prefix) {
		return false
	}
	if strings.HasSuffix(prefix, ".") {
		return true
	}
	return len(schema) == len(prefix) || schema[len(prefix)] == '.'
}

// ClassifySchema returns the variant for a schema string.
func ClassifySchema(schema string) Variant {
	for _, r := range rules {
		if HasSchemaPrefix(schema, r.prefix) {
			return r.variant
		}
	}
	return VariantNone
}

// Classify returns the display variant of e, or VariantNone when no rule
// matches. A nil entry is VariantNone.
func Classify(e *domain.Entry) Variant {
	if e == nil {
		return VariantNone
	}
	return ClassifySchema(e.Schema)
}

// PostNetwork returns the social network of a post entry: twitter, reddit,
// hackernews or blog. Any other entry yields "".
func PostNetwork(e *domain.Entry) string {
	if Classify(e) != VariantPost {
		return ""
	}
	for _, n := range []string{"twitter", "reddit", "hackernews", "blog"} {
		if HasSchemaPrefix(e.Schema, "social."+n) {
			return n
		}
	}
	return ""
}

// MessageNetwork returns the messaging service of a message entry: sms,
// telegram or facebook. Any other entry yields "".
func MessageNetwork(e *domain.Entry) string {
	if Classify(e) != VariantMessage {
		return ""
	}
	switch {
	case HasSchemaPrefix(e.Schema, "message.text.sms"):
		return "sms"
	case HasSchemaPrefix(e.Schema, "message.telegram"):
		return "telegram"
	case HasSchemaPrefix(e.Schema, "message.facebook"):
		return "facebook"
	}
	return ""
}

// TransactionKind is the direction of a money transfer.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

// TransactionOf returns the direction of a transaction entry. A transfer
// without a named sender is an expense. Non-transaction entries yield "".
func TransactionOf(e *domain.Entry) TransactionKind {
	if Classify(e) != VariantTransaction {
		return ""
	}
	if name, ok := e.ExtraAttributes.String("sender_name"); ok && name != "" {
		return TransactionIncome
	}
	return TransactionExpense
}
