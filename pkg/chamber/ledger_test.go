package chamber

import "testing"

func TestLedgerOrderAndFront(t *testing.T) {
	var l Ledger

	if _, ok := l.Front(); ok {
		t.Fatal("empty ledger should have no front")
	}

	l.Push(VisitorRecord{Seq: 1, Name: "S1", Kind: KindStudent})
	l.Push(VisitorRecord{Seq: 2, Name: "A1", Kind: KindAdmin})
	l.Push(VisitorRecord{Seq: 3, Name: "S2", Kind: KindStudent})

	front, ok := l.Front()
	if !ok || front.Seq != 1 {
		t.Fatalf("front = %+v, want seq 1", front)
	}
	if l.Len() != 3 {
		t.Fatalf("len = %d, want 3", l.Len())
	}
}

func TestLedgerRemoveByIdentity(t *testing.T) {
	var l Ledger
	l.Push(VisitorRecord{Seq: 1, Name: "S1", Kind: KindStudent})
	l.Push(VisitorRecord{Seq: 2, Name: "A1", Kind: KindAdmin})
	l.Push(VisitorRecord{Seq: 3, Name: "S2", Kind: KindStudent})

	// Removal from the middle: a same-kind joiner leaves the ledger while
	// earlier entries still sit ahead of it.
	if !l.Remove(3) {
		t.Fatal("remove(3) failed")
	}
	if l.Remove(3) {
		t.Fatal("remove(3) should fail the second time")
	}

	front, _ := l.Front()
	if front.Seq != 1 {
		t.Fatalf("front seq = %d, want 1", front.Seq)
	}
	if l.Len() != 2 {
		t.Fatalf("len = %d, want 2", l.Len())
	}
}

func TestLedgerAheadAndCounts(t *testing.T) {
	var l Ledger
	l.Push(VisitorRecord{Seq: 1, Name: "S1", Kind: KindStudent})
	l.Push(VisitorRecord{Seq: 2, Name: "A1", Kind: KindAdmin})
	l.Push(VisitorRecord{Seq: 4, Name: "S2", Kind: KindStudent})

	if got := l.Ahead(4); got != 2 {
		t.Fatalf("ahead(4) = %d, want 2", got)
	}
	if got := l.Ahead(1); got != 0 {
		t.Fatalf("ahead(1) = %d, want 0", got)
	}
	if got := l.CountByKind(KindStudent); got != 2 {
		t.Fatalf("count(S) = %d, want 2", got)
	}
	if got := l.CountByKind(KindOnline); got != 0 {
		t.Fatalf("count(O) = %d, want 0", got)
	}
}
