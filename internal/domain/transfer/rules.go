package transfer

// Rules stores the tuning constants of the transfer market.
type Rules struct {
	// Outgoing bids, as percentages of market value.
	AcceptBidPct      int64
	CounterBidPct     int64
	OpenRejectBidPct  int64
	CounterPremiumMin float64
	CounterPremiumMax float64

	// Contract negotiation.
	WageBudgetSlack     int64
	PrestigeRating      int
	AcceptScore         int
	CounterScore        int
	CounterWageFactor   float64
	YoungMinLength      int
	PrimeMinLength      int
	VeteranMinLength    int
	YoungAgeLimit       int
	PrimeAgeLimit       int
	BonusHighMultiplier int64
	BonusLowMultiplier  int64

	// Incoming offers.
	OfferChancePerTick   float64
	OfferMaxOverall      int
	OfferAmountMin       float64
	OfferAmountMax       float64
	OfferQueueCap        int
	CounterAcceptMinPct  int64
	CounterAcceptMaxMVPc int64

	// Ledger and search.
	WagePerRatingPoint   int64
	BudgetPerRatingPoint int64
	SearchLimit          int
}

func DefaultRules() Rules {
	return Rules{
		AcceptBidPct:      115,
		CounterBidPct:     85,
		OpenRejectBidPct:  60,
		CounterPremiumMin: 1.05,
		CounterPremiumMax: 1.15,

		WageBudgetSlack:     5000,
		PrestigeRating:      85,
		AcceptScore:         3,
		CounterScore:        1,
		CounterWageFactor:   1.08,
		YoungMinLength:      3,
		PrimeMinLength:      2,
		VeteranMinLength:    1,
		YoungAgeLimit:       25,
		PrimeAgeLimit:       30,
		BonusHighMultiplier: 10,
		BonusLowMultiplier:  5,

		OfferChancePerTick:   0.40,
		OfferMaxOverall:      90,
		OfferAmountMin:       0.85,
		OfferAmountMax:       1.30,
		OfferQueueCap:        5,
		CounterAcceptMinPct:  95,
		CounterAcceptMaxMVPc: 125,

		WagePerRatingPoint:   18000,
		BudgetPerRatingPoint: 1_000_000,
		SearchLimit:          60,
	}
}
