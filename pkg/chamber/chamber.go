package chamber

import (
	"fmt"
	"sync"
)

// FairnessPolicy selects how admission treats the arrival ledger.
type FairnessPolicy string

const (
	// PolicySameKindJoins admits a visitor of the kind already occupying
	// the chamber regardless of its ledger position, as long as a seat is
	// free. Latecomers of the occupying kind can cut ahead of earlier
	// different-kind arrivals; those cut-ins are flagged on the event.
	PolicySameKindJoins FairnessPolicy = "same-kind-joins"

	// PolicyStrictFIFO admits only the ledger front, so no visitor ever
	// overtakes an earlier arrival.
	PolicyStrictFIFO FairnessPolicy = "strict-fifo"
)

// ParsePolicy validates a fairness policy name. An empty name selects
// PolicySameKindJoins.
func ParsePolicy(name string) (FairnessPolicy, error) {
	switch FairnessPolicy(name) {
	case "":
		return PolicySameKindJoins, nil
	case PolicySameKindJoins, PolicyStrictFIFO:
		return FairnessPolicy(name), nil
	}
	return "", fmt.Errorf("unknown fairness policy %q (expected %q or %q)", name, PolicySameKindJoins, PolicyStrictFIFO)
}

// Chamber is the shared resource visitors compete for. One mutex guards
// every field; each kind has its own condition variable on that mutex, so
// departures can wake exactly the kinds that have waiters.
//
// Student and Admin sessions admit up to the capacity of visitors of the
// same kind at once. Online sessions are exclusive single-occupant.
type Chamber struct {
	capacity int
	policy   FairnessPolicy
	sink     Sink

	mu        sync.Mutex
	cond      map[VisitorKind]*sync.Cond
	occupying VisitorKind
	count     int
	waiting   map[VisitorKind]int
	ledger    Ledger
	nextSeq   int
}

// New creates a chamber. Capacity bounds concurrent same-kind occupants of
// the batch kinds and must be positive. A nil sink discards events.
func New(capacity int, policy FairnessPolicy, sink Sink) (*Chamber, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be greater than 0, got %d", capacity)
	}
	policy, err := ParsePolicy(string(policy))
	if err != nil {
		return nil, err
	}
	c := &Chamber{
		capacity: capacity,
		policy:   policy,
		sink:     sink,
		waiting:  map[VisitorKind]int{},
	}
	c.cond = map[VisitorKind]*sync.Cond{
		KindStudent: sync.NewCond(&c.mu),
		KindAdmin:   sync.NewCond(&c.mu),
		KindOnline:  sync.NewCond(&c.mu),
	}
	return c, nil
}

// Register assigns the next sequence number, appends the visitor to the
// arrival ledger and emits the ARRIVED event. The returned record is what
// the visitor's goroutine passes to Enter and Leave.
func (c *Chamber) Register(name string, kind VisitorKind) VisitorRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSeq++
	rec := VisitorRecord{Seq: c.nextSeq, Name: name, Kind: kind}
	c.ledger.Push(rec)
	c.waiting[kind]++
	c.emit(arrivedEvent(rec))
	return rec
}

// Enter blocks until the visitor may occupy the chamber, then commits the
// admission: the record leaves the ledger, the occupant count rises and the
// ENTERED (batch) or STARTED (online) event is emitted.
func (c *Chamber) Enter(rec VisitorRecord) {
	cond := c.cond[rec.Kind]

	c.mu.Lock()
	defer c.mu.Unlock()

	// Monitor discipline: a wake-up only means state changed, so the
	// predicate is re-checked every time.
	for !c.admissible(rec) {
		cond.Wait()
	}

	skipped := c.ledger.Ahead(rec.Seq)
	c.ledger.Remove(rec.Seq)
	c.waiting[rec.Kind]--
	c.occupying = rec.Kind
	if rec.Kind == KindOnline {
		c.count = 1
		c.emit(startedEvent(rec))
	} else {
		c.count++
		c.emit(enteredEvent(rec, c.count, skipped))
	}

	if c.policy == PolicyStrictFIFO {
		// The ledger front moved; the new front may be admissible now.
		c.wakeWaiting()
	}
}

// Leave releases the visitor's occupancy and emits the LEFT (batch) or
// ENDED (online) event. When the chamber empties, every kind with waiters
// is woken so admissibility is re-evaluated against the new ledger front.
func (c *Chamber) Leave(rec VisitorRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rec.Kind == KindOnline {
		c.count = 0
		c.occupying = KindNone
		c.emit(endedEvent(rec))
		c.wakeWaiting()
		return
	}

	c.count--
	c.emit(leftEvent(rec, c.count))
	switch {
	case c.count == 0:
		c.occupying = KindNone
		c.wakeWaiting()
	case c.policy == PolicyStrictFIFO:
		// A seat freed up mid-session; under strict FIFO the front may be
		// a same-kind visitor that can take it.
		c.wakeWaiting()
	}
}

// Occupancy returns the occupying kind and occupant count.
func (c *Chamber) Occupancy() (VisitorKind, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupying, c.count
}

// WaitingTotal returns the number of visitors still in the ledger.
func (c *Chamber) WaitingTotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Len()
}

// admissible decides whether the visitor may occupy the chamber right now.
// Callers must hold the lock.
func (c *Chamber) admissible(rec VisitorRecord) bool {
	if c.policy == PolicyStrictFIFO {
		front, ok := c.ledger.Front()
		if !ok || front.Seq != rec.Seq {
			return false
		}
		if c.occupying == KindNone {
			return true
		}
		return rec.Kind.Batch() && c.occupying == rec.Kind && c.count < c.capacity
	}

	if c.occupying == KindNone {
		// Empty chamber: only the ledger front may open a new session.
		front, ok := c.ledger.Front()
		return ok && front.Seq == rec.Seq
	}
	// An open same-kind batch session admits joiners up to capacity,
	// regardless of their ledger position.
	return rec.Kind.Batch() && c.occupying == rec.Kind && c.count < c.capacity
}

// wakeWaiting broadcasts to every kind that has waiters. Admissibility for
// any kind can depend on any other kind's state, so the wake is a broadcast
// rather than a targeted signal. Callers must hold the lock.
func (c *Chamber) wakeWaiting() {
	for kind, cond := range c.cond {
		if c.waiting[kind] > 0 {
			cond.Broadcast()
		}
	}
}

func (c *Chamber) emit(ev Event) {
	if c.sink != nil {
		c.sink.Record(ev)
	}
}
