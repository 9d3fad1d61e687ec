package timeline

import (
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// ThreadKey identifies a conversation by its two participants, ordered so
// that A→B and B→A share a key.
type ThreadKey struct {
	A string `json:"a"`
	B string `json:"b"`
}

func (k ThreadKey) String() string {
	return k.A + " | " + k.B
}

// Thread is the ordered list of messages between two participants.
type Thread struct {
	Key     ThreadKey      `json:"participants"`
	Network string         `json:"network,omitempty"`
	Entries []domain.Entry `json:"entries"`
}

// ThreadKeyOf returns the conversation key of a message entry. Participants
// are identified by sender_id and recipient_id for every messaging
// service; display names are never used as identities. Entries that are
// not messages or lack either id have no key.
func ThreadKeyOf(e *domain.Entry) (ThreadKey, bool) {
	if Classify(e) != VariantMessage {
		return ThreadKey{}, false
	}
	sender, ok := e.ExtraAttributes.String("sender_id")
	if !ok || sender == "" {
		return ThreadKey{}, false
	}
	recipient, ok := e.ExtraAttributes.String("recipient_id")
	if !ok || recipient == "" {
		return ThreadKey{}, false
	}
	if recipient < sender {
		sender, recipient = recipient, sender
	}
	return ThreadKey{A: sender, B: recipient}, true
}

// GroupThreads groups message entries by conversation. Entries keep their
// input order within a thread. Entries without a thread key are skipped.
func GroupThreads(entries []domain.Entry) map[ThreadKey][]domain.Entry {
	out := make(map[ThreadKey][]domain.Entry)
	for i := range entries {
		if k, ok := ThreadKeyOf(&entries[i]); ok {
			out[k] = append(out[k], entries[i])
		}
	}
	return out
}

// Threads is GroupThreads as a list ordered by each thread's first message.
func Threads(entries []domain.Entry) []Thread {
	var out []Thread
	index := make(map[ThreadKey]int)
	for i := range entries {
		k, ok := ThreadKeyOf(&entries[i])
		if !ok {
			continue
		}
		pos, seen := index[k]
		if !seen {
			pos = len(out)
			index[k] = pos
			out = append(out, Thread{Key: k, Network: MessageNetwork(&entries[i])})
		}
		out[pos].Entries = append(out[pos].Entries, entries[i])
	}
	return out
}
