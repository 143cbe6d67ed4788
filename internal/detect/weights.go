package detect

// Detection knobs. The weights encode the relative intent structural
// validity > decode success > printability > cosmetic bonuses; they are
// tuning parameters, not derived values.
const (
	// ConfidenceThreshold is the minimum score for a format to be reported.
	ConfidenceThreshold = 0.60

	// MinInputLength rejects candidates too short to carry any signal.
	MinInputLength = 4

	// PrintableRatioThreshold gates the printable-result bonus.
	PrintableRatioThreshold = 0.80
)

// Score weights, tuned to reduce Base64/Hex ambiguity.
const (
	// Shared bonuses.
	weightDecodeSuccess   = 0.15
	weightPrintableResult = 0.15
	weightLongerInput     = 0.05

	// Base64.
	weightB64Base            = 0.40
	weightB64ValidPadding    = 0.10
	weightB64SpecialChars    = 0.10
	weightB64MixedCase       = 0.10
	weightB64NoSignalPenalty = 0.20

	// Base64URL.
	weightB64URLBase      = 0.30
	weightB64URLSafeChars = 0.25

	// Base32.
	weightB32Base         = 0.35
	weightB32ValidPadding = 0.10
	weightB32Uppercase    = 0.10

	// Hex.
	weightHexBase             = 0.30
	weightHexSeparatorPresent = 0.20
	weightHexAlphaChars       = 0.10
	weightHexNoAlphaPenalty   = 0.15
	weightHexConsistentCase   = 0.10
	weightHexDecodeSuccess    = 0.10

	// Percent-encoding.
	weightURLBase            = 0.30
	weightURLRatioMultiplier = 0.40
	weightURLRatioCap        = 0.35
	weightURLDecodeChanged   = 0.15
)
