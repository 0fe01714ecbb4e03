package timekeeper

// Clock counts the seconds elapsed in the current segment.
//
// Not goroutine-safe: the TimeKeeper mutates it only under its mutex and
// only from the ticking loop or a segment transition.
type Clock struct {
	elapsed int
}

// Tick advances the clock by one second and returns the new value.
func (clock *Clock) Tick() int {
	clock.elapsed++
	return clock.elapsed
}

// Reset starts a new segment.
func (clock *Clock) Reset() {
	clock.elapsed = 0
}

// Elapsed returns the seconds counted since the last reset.
func (clock *Clock) Elapsed() int {
	return clock.elapsed
}

// Account is the watermark of how much of the current segment has already
// been committed to the ledger. Invariant: flushed <= clock.Elapsed().
type Account struct {
	flushed int
}

// Pending returns the seconds not yet committed.
func (account *Account) Pending(clock *Clock) int {
	return clock.Elapsed() - account.flushed
}

// Flush hands the pending seconds to commit and advances the watermark.
// It is a no-op when nothing is pending. commit must record the delta in
// memory even when it reports a persistence error, so the watermark moves
// regardless and the same second is never handed over twice.
func (account *Account) Flush(clock *Clock, commit func(delta int64) error) (int, error) {
	delta := account.Pending(clock)
	if delta <= 0 {
		return 0, nil
	}
	err := commit(int64(delta))
	account.flushed += delta
	return delta, err
}

// Reset clears the watermark together with the clock at a segment boundary.
func (account *Account) Reset() {
	account.flushed = 0
}

// Flushed returns the committed part of the current segment.
func (account *Account) Flushed() int {
	return account.flushed
}
