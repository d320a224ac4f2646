package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = input collection, W3xxx = analysis advisories.
type WarningCode string

const (
	WarnEmptyCSVRowsSkipped WarningCode = "W1001" // blank rows in an uploaded holdings file were ignored
	WarnRatioAboveHundred   WarningCode = "W3001" // suggested holding ratio is above 100% and kept unclamped
	WarnNegligibleGap       WarningCode = "W3002" // suggested and actual stock weight differ by less than NegligibleGapPct
	WarnWeakHoldings        WarningCode = "W3003" // at least one holding scores below WeakScoreThreshold
)

// NegligibleGapPct is the difference, in percentage points, under which a rebalancing
// recommendation is flagged as negligible.
const NegligibleGapPct = 0.01

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
