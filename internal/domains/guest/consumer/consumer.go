package consumer

import (
	"context"
	"lodging/config"
	"lodging/infras/kafka"
	"lodging/internal/domains/guest/model"
	guestService "lodging/internal/domains/guest/service"
	"lodging/shared/cache"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer drops cached guest and room views when another instance publishes a change.
type Consumer interface {
	Run(ctx context.Context)
}

type consumerImpl struct {
	kafka kafka.Client
	cache cache.RedisCache
	cfg   *config.Config
}

func New(kafka kafka.Client, cache cache.RedisCache, cfg *config.Config) Consumer {
	return &consumerImpl{
		kafka: kafka,
		cache: cache,
		cfg:   cfg,
	}
}

// Run blocks until ctx is done.
func (c *consumerImpl) Run(ctx context.Context) {
	group := c.group()
	topics := []string{c.cfg.Kafka.Topics.Guest, c.cfg.Kafka.Topics.Receipt}

	var wg sync.WaitGroup

	for _, topic := range topics {
		wg.Add(1)

		go func(topic string) {
			defer wg.Done()

			log.Info().Str("topic", topic).Str("group", group).Msg("starting guest event consumer")

			c.kafka.Consume(ctx, group, topic, func(msg kafkaGo.Message) {
				c.handle(ctx, msg)
			})
		}(topic)
	}

	wg.Wait()
}

func (c *consumerImpl) handle(ctx context.Context, msg kafkaGo.Message) {
	_, event, err := kafka.DecodeKafkaMessage[model.Event](msg)
	if err != nil {
		log.Warn().Err(err).Str("key", string(msg.Key)).Msg("skipping malformed guest event")

		return
	}

	if event.GuestID == 0 {
		return
	}

	log.Debug().Str("event", event.Type).Int64("guestID", event.GuestID).Msg("invalidating caches for guest event")

	guestService.Invalidate(context.WithoutCancel(ctx), c.cache, event.GuestID)
}

// every instance keeps its own offsets so each one sees every event.
func (c *consumerImpl) group() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return c.cfg.Kafka.ConsumerGroup
	}

	return c.cfg.Kafka.ConsumerGroup + "." + host
}
