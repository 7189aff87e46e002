package sentiment

import (
	"strings"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
)

// Fixed keyword lexicons. Matching is substring containment, so a lexicon
// word embedded in a longer token still counts ("thankfully" scores "thank").
var (
	positiveWords = []string{
		"thank", "great", "excellent", "awesome", "love", "perfect",
		"good", "appreciate", "wonderful", "amazing", "helpful",
		"fantastic", "happy", "pleased",
	}

	negativeWords = []string{
		"error", "fail", "broken", "terrible", "crash", "bug",
		"angry", "frustrat", "refund", "worst", "unacceptable",
		"disappointed", "awful", "complaint", "urgent",
	}
)

// Classify scores free text into positive, neutral or negative. It is pure
// and deterministic: ties, including empty input, are neutral.
func Classify(text string) model.Sentiment {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, word := range positiveWords {
		positive += strings.Count(lower, word)
	}
	for _, word := range negativeWords {
		negative += strings.Count(lower, word)
	}

	switch {
	case positive > negative:
		return model.SentimentPositive
	case negative > positive:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
