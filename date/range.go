package date

import "iter"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Trailing returns the range of 'days' consecutive calendar days ending on
// 'end' inclusive. A days count below one yields the single-day range on 'end'.
func Trailing(end Date, days int) Range {
	if days < 1 {
		days = 1
	}
	return Range{From: end.Add(1 - days), To: end}
}

// Contains returns true if the date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Len returns the number of days in the range.
func (r Range) Len() int {
	n := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		n++
	}
	return n
}

// Days returns an iterator that yields each date within the range, oldest first.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// String formats the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
