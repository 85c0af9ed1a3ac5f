package collect

import (
	"sync"

	"yt-comment-archiver/internal/model"
)

// Queue is the shared FIFO of work items. Producers Append while the
// listing phase runs and Close when no more items will ever arrive; Take
// blocks until an item is available or the queue is closed and drained.
// Each appended item is delivered to exactly one caller of Take.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []model.WorkItem
	closed bool
}

func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *Queue) Append(items ...model.WorkItem) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		panic("collect: append to closed queue")
	}
	q.items = append(q.items, items...)
	q.cond.Broadcast()
}

// Close signals that no more items will be appended. Pending items remain
// deliverable; Take returns false once the queue is closed and empty.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}

func (q *Queue) Take() (model.WorkItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return model.WorkItem{}, false
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
