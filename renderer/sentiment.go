package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// SentimentMarkdown renders the advisory market sentiment section. It sits
// next to the allocation report and never changes its numbers.
func SentimentMarkdown(index rebalance.FearIndex) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Market Temperature\n\n")

	tier := rebalance.ClassifySentiment(index)
	if v, ok := index.Value(); ok {
		fmt.Fprintf(&b, "Fear index (VIX): **%.2f**\n\n", v)
		fmt.Fprintf(&b, "%s\n", advisory(tier))
	} else {
		fmt.Fprint(&b, "Fear index could not be fetched, no reading available.\n")
	}
	return b.String()
}

func advisory(t rebalance.SentimentTier) string {
	switch t {
	case rebalance.SentimentPanic:
		return "⚠️ **Panic market** — equities may be on sale, this could be a buying opportunity."
	case rebalance.SentimentCaution:
		return "**Caution** — the market is somewhat unstable."
	case rebalance.SentimentCalm:
		return "**Calm market** — prices may be running high."
	case rebalance.SentimentNeutral:
		return "**Business as usual** — a quiet market."
	default:
		return "No reading available."
	}
}
