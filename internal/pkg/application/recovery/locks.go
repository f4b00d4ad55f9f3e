package recovery

import "sync"

// deviceLocks hands out one mutex per device id. Entries are dropped when
// the last holder or waiter releases them.
type deviceLocks struct {
	mu    sync.Mutex
	locks map[int]*deviceLock
}

type deviceLock struct {
	sync.Mutex
	refs int
}

func newDeviceLocks() *deviceLocks {
	return &deviceLocks{locks: map[int]*deviceLock{}}
}

func (d *deviceLocks) lock(deviceSeqID int) func() {
	d.mu.Lock()
	l, ok := d.locks[deviceSeqID]
	if !ok {
		l = &deviceLock{}
		d.locks[deviceSeqID] = l
	}
	l.refs++
	d.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		d.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(d.locks, deviceSeqID)
		}
		d.mu.Unlock()
	}
}

func (d *deviceLocks) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.locks)
}
