package store

const (
	DefaultPage       = 1
	DefaultPerPage    = 10
	MaxPerPage        = 1000
	DefaultMaxButtons = 5
	MaxButtonsLimit   = 100
	DefaultMode       = "normal"
	DefaultFieldName  = "items"
)

// IsNormalizedPerPage clamps a page size into [1, MaxPerPage]. Non positive
// sizes fall back to DefaultPerPage. The boolean reports whether the input was
// already valid.
func IsNormalizedPerPage(perPage int) (int, bool) {
	if perPage <= 0 {
		return DefaultPerPage, false
	} else if perPage > MaxPerPage {
		return MaxPerPage, false
	}

	return perPage, true
}

// NormalizePerPage is IsNormalizedPerPage without the validity flag.
func NormalizePerPage(perPage int) int {
	ret, _ := IsNormalizedPerPage(perPage)
	return ret
}

// NormalizeMaxButtons clamps the pager button cap into [1, MaxButtonsLimit].
func NormalizeMaxButtons(maxButtons int) int {
	if maxButtons <= 0 {
		return DefaultMaxButtons
	} else if maxButtons > MaxButtonsLimit {
		return MaxButtonsLimit
	}

	return maxButtons
}
