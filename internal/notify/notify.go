package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gobid/auctionhouse/pkg/logger"
	"github.com/google/uuid"
)

// Event types published on the auction events channel.
const (
	EventBidPlaced = "bid.placed"
	EventBoughtNow = "auction.bought_now"
)

// Channel is the redis pub/sub channel auction events are published to.
const Channel = "auction.events"

const queueSize = 256

type BidPlaced struct {
	AuctionID        uuid.UUID `json:"auction_id"`
	BidderID         uuid.UUID `json:"bidder_id"`
	BidderName       string    `json:"bidder_name"`
	Amount           int64     `json:"amount"`
	DeadlineExtended bool      `json:"deadline_extended"`
}

type BoughtNow struct {
	AuctionID uuid.UUID `json:"auction_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	BuyerName string    `json:"buyer_name"`
	Price     int64     `json:"price"`
}

type event struct {
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

// Publisher is the transport the dispatcher hands events to.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Dispatcher decouples notification delivery from the request path. Dispatch
// enqueues and returns immediately; a single worker drains the queue and
// publishes. Delivery failures are logged and swallowed, they never reach
// the caller.
type Dispatcher struct {
	ch   chan event
	done chan struct{}
	pub  Publisher
	log  *logger.Logger
	once sync.Once
}

func NewDispatcher(pub Publisher, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		ch:   make(chan event, queueSize),
		done: make(chan struct{}),
		pub:  pub,
		log:  log,
	}
	go d.run()
	return d
}

// Dispatch never blocks: when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(eventType string, payload any) {
	ev := event{Type: eventType, At: time.Now().UTC(), Payload: payload}
	select {
	case d.ch <- ev:
	default:
		d.log.Warnw("[NOTIFY] queue full, event dropped", "type", eventType)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for ev := range d.ch {
		body, err := json.Marshal(ev)
		if err != nil {
			d.log.Warnw("[NOTIFY] marshal failed", "type", ev.Type, "error", err)
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.pub.Publish(ctx, Channel, body); err != nil {
			d.log.Debugw("[NOTIFY] publish failed", "type", ev.Type, "error", err)
		}
		cancel()
	}
}

// Close stops accepting events and waits for the worker to drain the queue.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.ch) })
	<-d.done
}
