package rebalance

// SentimentTier is the advisory reading of the market fear index. It carries
// no portfolio data and never feeds the allocation: it is reported alongside
// the numbers, not blended into them.
type SentimentTier int

const (
	// SentimentUnavailable means the fear index could not be fetched. It is a
	// first-class state, distinct from Neutral.
	SentimentUnavailable SentimentTier = iota
	// SentimentPanic: the market is in panic, equities may be on sale.
	SentimentPanic
	// SentimentCaution: the market is unstable.
	SentimentCaution
	// SentimentCalm: the market is complacent, prices may be stretched.
	SentimentCalm
	// SentimentNeutral: nothing notable.
	SentimentNeutral
)

func (t SentimentTier) String() string {
	switch t {
	case SentimentPanic:
		return "panic"
	case SentimentCaution:
		return "caution"
	case SentimentCalm:
		return "calm"
	case SentimentNeutral:
		return "neutral"
	default:
		return "unavailable"
	}
}

// FearIndex is an optional market volatility reading. The fetch (and its
// retry/failure policy) happens outside this package; by the time a FearIndex
// reaches the core it is already resolved: present, or explicitly absent.
type FearIndex struct {
	value   float64
	present bool
}

// NewFearIndex returns a present fear index reading.
func NewFearIndex(value float64) FearIndex {
	return FearIndex{value: value, present: true}
}

// AbsentFearIndex returns the explicit absent reading, used when the fetch failed.
func AbsentFearIndex() FearIndex {
	return FearIndex{}
}

// Value returns the reading and whether it is present.
func (f FearIndex) Value() (float64, bool) { return f.value, f.present }

// ClassifySentiment maps a fear index reading to its advisory tier.
// Thresholds are evaluated in priority order: >30 panic, >20 caution,
// <15 calm, otherwise neutral. An absent reading is Unavailable.
func ClassifySentiment(f FearIndex) SentimentTier {
	v, ok := f.Value()
	if !ok {
		return SentimentUnavailable
	}
	switch {
	case v > 30:
		return SentimentPanic
	case v > 20:
		return SentimentCaution
	case v < 15:
		return SentimentCalm
	default:
		return SentimentNeutral
	}
}
