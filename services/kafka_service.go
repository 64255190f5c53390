package services

import (
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// IKafkaService pushes keyed records to Kafka.
type IKafkaService interface {
	PushMessage(topic, key string, message []byte, headers map[string]string) error
	Close() error
}

// KafkaService implements IKafkaService with a Sarama SyncProducer.
type KafkaService struct {
	producer sarama.SyncProducer
}

// NewKafkaService connects a synchronous producer. Records with the same key go to the same
// partition, so the changes of one document stay in order.
func NewKafkaService(brokers []string, clientID string) (IKafkaService, error) {
	config := sarama.NewConfig()
	config.ClientID = clientID
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true // required by SyncProducer
	config.Producer.Timeout = 5 * time.Second
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Printf("Kafka producer connected to %v", brokers)
	return &KafkaService{producer: producer}, nil
}

// PushMessage sends one record and waits for the broker acknowledgement.
func (s *KafkaService) PushMessage(topic, key string, message []byte, headers map[string]string) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(message),
	}
	for name, value := range headers {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(name), Value: []byte(value)})
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		log.Printf("Failed to send %s to Kafka topic '%s': %v", key, topic, err)
		return err
	}
	log.Printf("Record %s sent to topic '%s', partition %d, offset %d", key, topic, partition, offset)
	return nil
}

func (s *KafkaService) Close() error {
	return s.producer.Close()
}
