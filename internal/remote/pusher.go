package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

type opKind int

const (
	opPut opKind = iota
	opDelete
	opDrop
)

type op struct {
	kind       opKind
	collection string
	id         string
	payload    json.RawMessage
}

const queueCapacity = 256

// Pusher schedules remote writes without ever blocking the caller.
//
// Every scheduled write is an independent idempotent upsert or delete:
// out-of-order completion is harmless because the merge resolver settles
// conflicts by updatedAt on the next pull. Failures are logged and never
// retried or surfaced. When the queue is full the oldest pending write is
// dropped — the record it carried will converge on the next startup pull.
//
// A Pusher constructed with a nil client turns every operation into a no-op,
// which is how an unconfigured remote behaves.
type Pusher struct {
	client Client
	queue  chan op

	mu      sync.Mutex
	closed  bool
	stopped chan struct{}
}

// NewPusher starts the background worker. client may be nil.
func NewPusher(client Client) *Pusher {
	p := &Pusher{
		client:  client,
		queue:   make(chan op, queueCapacity),
		stopped: make(chan struct{}),
	}
	go p.run()
	return p
}

// PushItem schedules an upsert of the whole document.
func (p *Pusher) PushItem(collection, id string, doc any) {
	if p.client == nil {
		return
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		slog.Default().Error("failed to encode document for sync", "collection", collection, "id", id, "error", err)
		return
	}
	p.enqueue(op{kind: opPut, collection: collection, id: id, payload: payload})
}

// DeleteItem schedules a best-effort remote delete.
func (p *Pusher) DeleteItem(collection, id string) {
	if p.client == nil {
		return
	}
	p.enqueue(op{kind: opDelete, collection: collection, id: id})
}

// DropCollection schedules a best-effort wipe of a whole collection.
func (p *Pusher) DropCollection(collection string) {
	if p.client == nil {
		return
	}
	p.enqueue(op{kind: opDrop, collection: collection})
}

func (p *Pusher) enqueue(o op) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	for {
		select {
		case p.queue <- o:
			return
		default:
		}
		// Queue full: drop the oldest pending write to make room.
		select {
		case dropped := <-p.queue:
			slog.Default().Warn("sync queue full, dropping oldest write",
				"collection", dropped.collection, "id", dropped.id)
		default:
		}
	}
}

func (p *Pusher) run() {
	defer close(p.stopped)
	for o := range p.queue {
		p.execute(o)
	}
}

func (p *Pusher) execute(o op) {
	ctx := context.Background()
	var err error
	switch o.kind {
	case opPut:
		err = p.client.Put(ctx, o.collection, o.id, o.payload)
	case opDelete:
		err = p.client.Delete(ctx, o.collection, o.id)
	case opDrop:
		err = p.client.DropCollection(ctx, o.collection)
	}
	if err != nil {
		slog.Default().Warn("remote write failed", "collection", o.collection, "id", o.id, "error", err)
		return
	}
	slog.Default().Debug("synced", "collection", o.collection, "id", o.id)
}

// Close stops accepting writes, drains the queue and waits for the worker.
func (p *Pusher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.stopped
}
