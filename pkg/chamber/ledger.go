package chamber

// Ledger keeps the combined arrival order of waiting visitors across all
// kinds. A record stays in the ledger from registration until the moment
// its visitor is admitted; the front entry decides which kind may open a
// new session when the chamber is empty.
//
// Ledger is not safe for concurrent use on its own; the Chamber mutates
// it only while holding its lock.
type Ledger struct {
	entries []VisitorRecord
}

// Push appends a record at the back of the ledger.
func (l *Ledger) Push(rec VisitorRecord) {
	l.entries = append(l.entries, rec)
}

// Front returns the earliest-registered record still waiting.
func (l *Ledger) Front() (VisitorRecord, bool) {
	if len(l.entries) == 0 {
		return VisitorRecord{}, false
	}
	return l.entries[0], true
}

// Remove deletes the record with the given sequence number, wherever it
// sits in the ledger. Admission removes same-kind joiners from the middle,
// not just the front.
func (l *Ledger) Remove(seq int) bool {
	for i, rec := range l.entries {
		if rec.Seq == seq {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Ahead counts the entries registered before the given sequence number
// that are still waiting.
func (l *Ledger) Ahead(seq int) int {
	n := 0
	for _, rec := range l.entries {
		if rec.Seq < seq {
			n++
		}
	}
	return n
}

// CountByKind counts waiting entries of one kind.
func (l *Ledger) CountByKind(kind VisitorKind) int {
	n := 0
	for _, rec := range l.entries {
		if rec.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of waiting entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}
