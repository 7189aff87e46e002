package corpus

import (
	"math/rand"
	"sync"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/clock"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/sentiment"
)

// Sample pools for synthetic inbound support mail. The pools are
// presentation-tuned and safe to extend; the distributions below are not.
var (
	senders = []string{
		"maria.santos@acmecorp.com",
		"jwilliams@brightline.io",
		"support@vendorhub.net",
		"t.okafor@gmail.com",
		"lena.fischer@nordwind.de",
		"dev.team@stackpoint.dev",
		"billing@cloudnest.com",
		"ahmed.k@outlook.com",
	}

	subjects = []string{
		"Cannot log into my account",
		"Invoice discrepancy for March",
		"Feature request: export to CSV",
		"Thanks for the quick turnaround!",
		"App crashes on startup",
		"Question about the enterprise plan",
		"Password reset link expired",
		"Follow-up on ticket #4821",
		"Integration webhook stopped firing",
		"Renewal quote needed",
	}

	contents = []string{
		"Thank you so much, the fix works perfectly. Excellent support as always!",
		"This is a terrible experience. The dashboard throws an error every time I open it.",
		"Could you point me to the documentation for the reporting API?",
		"I really appreciate the help yesterday, everything is running great now.",
		"The sync job keeps failing and we are losing data. This is urgent and unacceptable.",
		"Hi, just checking on the status of my earlier request. No rush.",
		"Your new release is amazing, the workflow feels so much faster. Love it.",
		"I'm frustrated that this bug is still open after two weeks. Please escalate.",
		"We are evaluating your product for our team of 40. Can we schedule a call?",
		"The export finished but the file seems truncated. Can you check on your side?",
		"Wonderful webinar last week, very helpful content. Looking forward to the next one.",
		"Payment failed twice and now my account is locked. I want a refund.",
	}

	tagPool = []string{
		"billing", "bug", "account", "feature-request", "how-to", "outage", "sales",
	}

	priorities = []model.Priority{
		model.PriorityHigh, model.PriorityMedium, model.PriorityLow,
	}
)

// Generation distributions. Tuning knobs, bounded per contract: a thread
// summary stays within 10 days before the email, tag count within the pool.
const (
	threadProbability   = 0.4
	readProbability     = 0.7
	resolvedProbability = 0.3
	starredProbability  = 0.2
	maxTags             = 2
	receiptWindow       = 7 * 24 * time.Hour
	threadLookback      = 10 * 24 * time.Hour
	minThreadCount      = 1
	maxThreadCount      = 5
)

// Senders exposes the sender pool so the presence simulator can name a
// plausible correspondent in its typing pulses.
func Senders() []string {
	out := make([]string, len(senders))
	copy(out, senders)
	return out
}

// Generator fabricates synthetic inbound emails. All randomness flows
// through the injected source so corpora are reproducible under a fixed
// seed; the injected clock anchors every timestamp.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	clock clock.Clock
}

func NewGenerator(rng *rand.Rand, clk clock.Clock) *Generator {
	return &Generator{
		rng:   rng,
		clock: clk,
	}
}

// Generate returns n new emails. Sender, subject and content are picked
// independently; sentiment is classified from the chosen content at creation
// time. Safe for concurrent callers.
func (g *Generator) Generate(n int) []*model.Email {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	emails := make([]*model.Email, 0, n)

	for i := 0; i < n; i++ {
		content := contents[g.rng.Intn(len(contents))]
		receivedAt := now.Add(-time.Duration(g.rng.Int63n(int64(receiptWindow))))

		email := model.NewEmail(
			senders[g.rng.Intn(len(senders))],
			subjects[g.rng.Intn(len(subjects))],
			content,
			sentiment.Classify(content),
			receivedAt,
		)

		if g.rng.Float64() < threadProbability {
			email.Thread = &model.ThreadSummary{
				LastEmail: receivedAt.Add(-time.Duration(g.rng.Int63n(int64(threadLookback)))),
				Count:     minThreadCount + g.rng.Intn(maxThreadCount-minThreadCount+1),
			}
		}

		if tags := g.pickTags(); len(tags) > 0 {
			email.Tags = tags
		}

		email.IsRead = g.rng.Float64() < readProbability
		email.IsResolved = g.rng.Float64() < resolvedProbability
		email.IsStarred = g.rng.Float64() < starredProbability
		email.Priority = priorities[g.rng.Intn(len(priorities))]

		emails = append(emails, email)
	}

	return emails
}

// pickTags samples 0-2 distinct tags from the pool.
func (g *Generator) pickTags() []string {
	count := g.rng.Intn(maxTags + 1)
	if count == 0 {
		return nil
	}

	perm := g.rng.Perm(len(tagPool))
	tags := make([]string, count)
	for i := 0; i < count; i++ {
		tags[i] = tagPool[perm[i]]
	}
	return tags
}
