package kafka_test

import (
	"context"
	"lodging/config"
	"lodging/infras/kafka"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receiptIssued struct {
	GuestID       int64  `json:"guest_id"`
	ReceiptNumber string `json:"receipt_number"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "42", Value: receiptIssued{GuestID: 42, ReceiptNumber: "001001"}}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("42"), raw.Key)

	key, decoded, err := kafka.DecodeKafkaMessage[receiptIssued](raw)
	require.NoError(t, err)
	assert.Equal(t, "42", key)
	assert.Equal(t, "001001", decoded.ReceiptNumber)

	_, _, err = kafka.DecodeKafkaMessage[receiptIssued](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestDisabledClient(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.NoError(t, client.SendMessages(context.Background(), "lodging.guest", kafka.Message{Key: "1", Value: "x"}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		client.Consume(ctx, "", "lodging.guest", func(_ kafkaGo.Message) {})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not return after cancellation")
	}
}

func TestToKafkaMessage_Unencodable(t *testing.T) {
	msg := kafka.Message{Key: "1", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.ErrorContains(t, err, `failed to encode message "1"`)
}

func TestSendMessages_EmptyTopic(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Brokers = []string{"localhost:9092"}

	err := kafka.New(cfg).SendMessages(context.Background(), "", kafka.Message{Key: "1", Value: "x"})
	assert.ErrorIs(t, err, kafka.ErrEmptyTopic)
}
