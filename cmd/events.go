package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"userorders/internal/services"
	"userorders/pkg/logger"
	"userorders/pkg/rabbitmq"

	"github.com/spf13/cobra"
	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// eventsCmd groups the commands that work with published user events.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect user events on RabbitMQ",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Consume user events and print them as they arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync(log)

		if cfg.RabbitMQURL == "" {
			return fmt.Errorf("RABBITMQ_URL is not set")
		}

		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			return err
		}
		defer mq.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		log.Info("waiting for user events")
		return mq.ConsumeUserEvents(ctx, func(msg amqp.Delivery) error {
			var ev services.UserEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				return fmt.Errorf("decode %s: %w", msg.RoutingKey, err)
			}
			log.Debug("event received", zap.String("event", ev.Event), zap.Int64("user_id", ev.UserID))
			_, err := fmt.Fprintf(out, "%s\t%s\tuserId=%d\t%s\n",
				ev.OccurredAt.Format(time.RFC3339), ev.Event, ev.UserID, msg.Body)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsTailCmd)
}
