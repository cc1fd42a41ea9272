package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"post-app/pkg/config"
	"post-app/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationQueueName  = "notification_queue"
	NotificationExchange   = "notifications"
	NotificationRoutingKey = "content_activity"

	publishTimeout = 5 * time.Second

	// Delay before a failed task is requeued; redelivered tasks wait
	// redeliveryBackoffFactor times longer.
	defaultRetryDelay       = time.Second
	redeliveryBackoffFactor = 5
)

type Client struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	logger     *logger.Logger
	retryDelay time.Duration
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		NotificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		NotificationQueueName, // name
		true,                  // durable
		false,                 // delete when unused
		false,                 // exclusive
		false,                 // no-wait
		amqp.Table{
			"x-max-priority": 10,
		},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		NotificationQueueName,  // queue name
		NotificationRoutingKey, // routing key
		NotificationExchange,   // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:       conn,
		channel:    channel,
		logger:     log,
		retryDelay: defaultRetryDelay,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishNotificationTask publishes a notification task to the queue with priority
func (c *Client) PublishNotificationTask(task map[string]interface{}) error {
	msg, err := buildPublishing(task)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(ctx,
		NotificationExchange,   // exchange
		NotificationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		msg,
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish message to exchange=%s, routing_key=%s: %v", NotificationExchange, NotificationRoutingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published notification task to exchange=%s: %s", NotificationExchange, string(msg.Body))
	return nil
}

// ConsumeNotificationTasks delivers queued tasks to handler until the channel
// closes. A task whose handler fails is requeued after a delay; undecodable
// messages are dropped.
func (c *Client) ConsumeNotificationTasks(handler func(task map[string]interface{}) error) error {
	msgs, err := c.channel.Consume(
		NotificationQueueName, // queue
		"",                    // consumer
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from notification queue: %s", NotificationQueueName)

	go func() {
		for msg := range msgs {
			c.handleDelivery(msg, handler)
		}
		c.logger.Info("[RABBITMQ] Notification queue consumer stopped")
	}()

	return nil
}

// handleDelivery settles one message. The consumer goroutine sleeps before a
// requeue so an unavailable dependency does not turn into a redelivery loop.
func (c *Client) handleDelivery(msg amqp.Delivery, handler func(task map[string]interface{}) error) {
	task, err := decodeTask(msg.Body)
	if err != nil {
		c.logger.Error("[RABBITMQ] Dropping notification task: %v, body=%s", err, string(msg.Body))
		msg.Nack(false, false)
		return
	}

	if err := handler(task); err != nil {
		delay := c.retryDelay
		if msg.Redelivered {
			delay *= redeliveryBackoffFactor
		}
		c.logger.Error("[RABBITMQ] Handler failed to process notification task: %v, task=%+v (requeue in %s)", err, task, delay)
		time.Sleep(delay)
		msg.Nack(false, true)
		return
	}

	msg.Ack(false)
}

func decodeTask(body []byte) (map[string]interface{}, error) {
	var task map[string]interface{}
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("empty task")
	}
	return task, nil
}

func buildPublishing(task map[string]interface{}) (amqp.Publishing, error) {
	priority := 1
	if p, ok := task["priority"].(int); ok {
		priority = p
		if priority < 0 {
			priority = 0
		}
		if priority > 10 {
			priority = 10
		}
	}

	taskJSON, err := json.Marshal(task)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal task: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         taskJSON,
		Priority:     uint8(priority),
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}, nil
}
