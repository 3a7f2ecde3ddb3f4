package storefront

// Summary — карточки дашборда.
type Summary struct {
	Total     int64
	Pending   int64
	Deposited int64
	Completed int64
	Cancelled int64

	// Доля завершённых среди неотменённых, в процентах.
	CompletionRate float64
}

// Summarize derives the completion rate from raw status counts.
// Cancelled orders do not count against the rate.
func Summarize(total, pending, deposited, completed, cancelled int64) Summary {
	s := Summary{
		Total:     total,
		Pending:   pending,
		Deposited: deposited,
		Completed: completed,
		Cancelled: cancelled,
	}
	if denom := total - cancelled; denom > 0 {
		s.CompletionRate = float64(completed) / float64(denom) * 100
	}
	return s
}
