package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/metrics"
	json "github.com/goccy/go-json"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Change notification types.
const (
	EventUpserted      = "upserted"
	EventDeleted       = "deleted"
	EventStatusChanged = "status_changed"
)

// ChangeEvent tells the storefront that a document changed.
type ChangeEvent struct {
	Type       string    `json:"type"`
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Key is the Kafka message key; one document always lands on the same partition.
func (e ChangeEvent) Key() string {
	return e.Collection + "-" + e.ID
}

// IEventPublisher publishes change notifications. Publishing never fails the caller's action.
type IEventPublisher interface {
	Publish(ctx context.Context, event ChangeEvent)
}

// NopEventPublisher drops every event. It is used when Kafka is disabled.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, ChangeEvent) {}

const eventQueueSize = 256

type outgoing struct {
	collection string
	key        string
	payload    []byte
	headers    map[string]string
}

// EventService encodes change events and pushes them to Kafka from a single background worker,
// so events keep their publish order.
type EventService struct {
	kafka    IKafkaService
	topic    string
	encoding string
	metrics  *metrics.Metrics
	now      func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan outgoing
	done   chan struct{}
}

// NewEventService creates a publisher and starts its worker. encoding is "json" or "protobuf".
func NewEventService(kafka IKafkaService, topic, encoding string, m *metrics.Metrics) *EventService {
	s := &EventService{
		kafka:    kafka,
		topic:    topic,
		encoding: encoding,
		metrics:  m,
		now:      time.Now,
		queue:    make(chan outgoing, eventQueueSize),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

// Publish encodes the event and queues it for sending. It never waits on the broker; when the
// queue is full or the service is closed the event is dropped and counted.
func (s *EventService) Publish(_ context.Context, event ChangeEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}
	payload, headers, err := s.encode(event)
	if err != nil {
		log.Printf("Failed to encode %s event for %s: %v", event.Type, event.Key(), err)
		s.metrics.ObserveEvent(event.Collection, "encode_error")
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.metrics.ObserveEvent(event.Collection, "dropped")
		return
	}
	select {
	case s.queue <- outgoing{collection: event.Collection, key: event.Key(), payload: payload, headers: headers}:
	default:
		log.Printf("Event queue full, dropping %s event for %s", event.Type, event.Key())
		s.metrics.ObserveEvent(event.Collection, "dropped")
	}
}

// Close stops accepting events and waits until the queued ones are sent.
func (s *EventService) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
	return nil
}

func (s *EventService) run() {
	defer close(s.done)
	for msg := range s.queue {
		if err := s.kafka.PushMessage(s.topic, msg.key, msg.payload, msg.headers); err != nil {
			s.metrics.ObserveEvent(msg.collection, "error")
			continue
		}
		s.metrics.ObserveEvent(msg.collection, "ok")
	}
}

func (s *EventService) encode(event ChangeEvent) ([]byte, map[string]string, error) {
	raw, err := json.Marshal(event)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal json: %w", err)
	}
	if s.encoding != "protobuf" {
		return raw, map[string]string{"content-type": "application/json"}, nil
	}

	// The protobuf form is a google.protobuf.Struct carrying the same fields as the JSON form.
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, fmt.Errorf("unmarshal json: %w", err)
	}
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, nil, fmt.Errorf("build struct: %w", err)
	}
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(st)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal protobuf: %w", err)
	}
	return data, map[string]string{
		"content-type":  "application/x-protobuf",
		"proto-message": "google.protobuf.Struct",
	}, nil
}
