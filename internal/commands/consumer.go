package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"yt_notifier/internal/domain"
)

type ChannelStore interface {
	List(ctx context.Context, kind domain.Kind) ([]domain.TrackedChannel, error)
	Add(ctx context.Context, channelID string, kind domain.Kind) error
	Remove(ctx context.Context, channelID string, kind domain.Kind) error
}

type DeliveredStore interface {
	ListDeliveredToday(ctx context.Context, kind domain.Kind) ([]string, error)
}

type CrawlRunner interface {
	Run(ctx context.Context) (*domain.CrawlStats, error)
}

type Notifier interface {
	Send(ctx context.Context, destinationID, text string) error
}

// Command is the envelope the Discord relay publishes when a user issues a
// bot command. Replies go back through the notification exchange to ReplyTo.
type Command struct {
	Name    string   `json:"command"`
	Args    []string `json:"args"`
	ReplyTo string   `json:"reply_to"`
}

// Consumer reads bot commands from a queue and executes them against the
// tracking tables, or triggers a crawl on demand.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string

	channels  ChannelStore
	delivered DeliveredStore
	runner    CrawlRunner
	notifier  Notifier
	logger    *slog.Logger
}

func NewConsumer(
	url, queue string,
	channels ChannelStore,
	delivered DeliveredStore,
	runner CrawlRunner,
	notifier Notifier,
	logger *slog.Logger,
) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare command queue: %w", err)
	}

	logger.Info("command consumer connected", "queue", queue)

	return &Consumer{
		conn:      conn,
		channel:   ch,
		queue:     queue,
		channels:  channels,
		delivered: delivered,
		runner:    runner,
		notifier:  notifier,
		logger:    logger.With("component", "commands"),
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume commands: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("command consumer stopped")
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("command channel closed")
			}
			c.dispatch(ctx, msg)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg amqp.Delivery) {
	var cmd Command
	if err := json.Unmarshal(msg.Body, &cmd); err != nil {
		c.logger.Error("discarding malformed command", "error", err)
		_ = msg.Nack(false, false)
		return
	}

	c.logger.Info("handling command", "command", cmd.Name, "args", cmd.Args)

	reply := c.handle(ctx, cmd)
	if reply != "" && cmd.ReplyTo != "" {
		if err := c.notifier.Send(ctx, cmd.ReplyTo, reply); err != nil {
			c.logger.Error("failed to send command reply", "error", err)
		}
	}

	_ = msg.Ack(false)
}

func (c *Consumer) handle(ctx context.Context, cmd Command) string {
	switch cmd.Name {
	case "crawl":
		return c.handleCrawl(ctx)
	case "add":
		return c.handleAdd(ctx, cmd.Args)
	case "remove":
		return c.handleRemove(ctx, cmd.Args)
	case "list":
		return c.handleList(ctx, cmd.Args)
	case "sent":
		return c.handleSent(ctx)
	default:
		return fmt.Sprintf("Unknown command %q.", cmd.Name)
	}
}

func (c *Consumer) handleCrawl(ctx context.Context) string {
	runCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	stats, err := c.runner.Run(runCtx)
	if err != nil {
		return "Crawl failed: " + err.Error()
	}
	if stats.Skipped {
		return "Crawl skipped, the last run was too recent."
	}
	return fmt.Sprintf("Crawl finished: %d new videos, %d new streams across %d channels.",
		stats.NewVideos, stats.NewStreams, stats.Channels)
}

func (c *Consumer) handleAdd(ctx context.Context, args []string) string {
	kind, channelID, usage := channelArgs("add", args)
	if usage != "" {
		return usage
	}

	err := c.channels.Add(ctx, channelID, kind)
	if errors.Is(err, domain.ErrChannelExists) {
		return fmt.Sprintf("%s is already tracked for %s.", channelID, kind)
	}
	if err != nil {
		return "Failed to add channel: " + err.Error()
	}
	return fmt.Sprintf("Now tracking %s for %s.", channelID, kind)
}

func (c *Consumer) handleRemove(ctx context.Context, args []string) string {
	kind, channelID, usage := channelArgs("remove", args)
	if usage != "" {
		return usage
	}

	err := c.channels.Remove(ctx, channelID, kind)
	if errors.Is(err, domain.ErrChannelNotFound) {
		return fmt.Sprintf("%s is not tracked for %s.", channelID, kind)
	}
	if err != nil {
		return "Failed to remove channel: " + err.Error()
	}
	return fmt.Sprintf("Stopped tracking %s for %s.", channelID, kind)
}

func (c *Consumer) handleList(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return "Usage: list <videos|streams>"
	}
	kind := domain.Kind(args[0])
	if !kind.Valid() {
		return "Usage: list <videos|streams>"
	}

	list, err := c.channels.List(ctx, kind)
	if err != nil {
		return "Failed to list channels: " + err.Error()
	}
	if len(list) == 0 {
		return fmt.Sprintf("No %s channels tracked.", kind)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tracked %s channels:\n", kind)
	for _, ch := range list {
		fmt.Fprintf(&b, "%s (last update: %s)\n", ch.ChannelID, ch.LastUpdatedString())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Consumer) handleSent(ctx context.Context) string {
	var parts []string
	for _, kind := range domain.Kinds() {
		ids, err := c.delivered.ListDeliveredToday(ctx, kind)
		if err != nil {
			return "Failed to read today's deliveries: " + err.Error()
		}
		if len(ids) == 0 {
			parts = append(parts, fmt.Sprintf("No %s delivered today.", kind))
			continue
		}
		parts = append(parts, fmt.Sprintf("Delivered %s today (%d):\n%s",
			kind, len(ids), strings.Join(ids, "\n")))
	}
	return strings.Join(parts, "\n")
}

func channelArgs(name string, args []string) (domain.Kind, string, string) {
	usage := fmt.Sprintf("Usage: %s <videos|streams> <channel>", name)
	if len(args) != 2 {
		return "", "", usage
	}
	kind := domain.Kind(args[0])
	if !kind.Valid() || args[1] == "" {
		return "", "", usage
	}
	return kind, args[1], ""
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
