package service

import "sync"

// accountLocker hands out one mutex per account number so transfers touching
// disjoint accounts never block each other. Mutexes are created lazily and
// kept for the life of the service; the account set is small and bounded by
// the ledger, so no eviction is needed.
type accountLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *accountLocker) lockFor(accountNumber string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[accountNumber]
	if !ok {
		m = &sync.Mutex{}
		l.locks[accountNumber] = m
	}
	return m
}

// lockPair acquires both accounts' locks, always lower account number first.
// Every caller using the same total order means two transfers over the same
// pair, in either direction, contend on the same mutexes in the same order,
// so a circular wait cannot form. The returned function releases both locks
// in reverse order and must be called on every exit path.
func (l *accountLocker) lockPair(a, b string) func() {
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	fm := l.lockFor(first)
	sm := l.lockFor(second)
	fm.Lock()
	sm.Lock()
	return func() {
		sm.Unlock()
		fm.Unlock()
	}
}
