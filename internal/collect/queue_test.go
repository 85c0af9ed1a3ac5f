package collect

import (
	"sync"
	"testing"
	"time"

	"yt-comment-archiver/internal/model"
)

func TestQueue_FIFOSingleConsumer(t *testing.T) {
	q := NewQueue()
	q.Append(
		model.WorkItem{ChannelID: "A", VideoID: "v1"},
		model.WorkItem{ChannelID: "A", VideoID: "v2"},
		model.WorkItem{ChannelID: "B", VideoID: "v3"},
	)
	q.Close()

	want := []string{"v1", "v2", "v3"}
	for _, w := range want {
		item, ok := q.Take()
		if !ok {
			t.Fatalf("queue drained early, wanted %s", w)
		}
		if item.VideoID != w {
			t.Fatalf("got %s want %s", item.VideoID, w)
		}
	}
	if _, ok := q.Take(); ok {
		t.Fatalf("expected closed and drained queue to stop delivering")
	}
}

func TestQueue_ExactlyOnceUnderConcurrentConsumers(t *testing.T) {
	const items = 500
	const consumers = 8

	q := NewQueue()
	go func() {
		for i := 0; i < items; i++ {
			q.Append(model.WorkItem{ChannelID: "A", VideoID: "v", Ordinal: i})
		}
		q.Close()
	}()

	var mu sync.Mutex
	seen := make(map[int]int, items)
	var wg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				item, ok := q.Take()
				if !ok {
					return
				}
				mu.Lock()
				seen[item.Ordinal]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != items {
		t.Fatalf("expected %d distinct items delivered, got %d", items, len(seen))
	}
	for ordinal, count := range seen {
		if count != 1 {
			t.Fatalf("item %d delivered %d times", ordinal, count)
		}
	}
}

func TestQueue_TakeBlocksUntilAppend(t *testing.T) {
	q := NewQueue()
	got := make(chan model.WorkItem, 1)
	go func() {
		item, ok := q.Take()
		if ok {
			got <- item
		}
	}()

	time.Sleep(10 * time.Millisecond)
	q.Append(model.WorkItem{VideoID: "late"})

	select {
	case item := <-got:
		if item.VideoID != "late" {
			t.Fatalf("unexpected item %+v", item)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("blocked Take never woke on append")
	}
}

func TestQueue_CloseWakesBlockedTake(t *testing.T) {
	q := NewQueue()
	done := make(chan bool, 1)
	go func() {
		_, ok := q.Take()
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case ok := <-done:
		if ok {
			t.Fatalf("expected Take to report closed queue")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("blocked Take never woke on close")
	}
}

func TestQueue_AppendAfterClosePanics(t *testing.T) {
	q := NewQueue()
	q.Close()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on append after close")
		}
	}()
	q.Append(model.WorkItem{VideoID: "late"})
}
