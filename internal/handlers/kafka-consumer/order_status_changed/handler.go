package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"barista/internal/entities"
	orderservice "barista/internal/service/order"
	"barista/pkg/logger"

	"github.com/IBM/sarama"
)

var errEmptyEvent = errors.New("orderId and status are required")

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	return &Handler{
		orderService:             orderService,
		log:                      log.With(logger.NewField("handler", "order_status_changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages channel closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

func decodeEvent(value []byte) (statusChangedEvent, error) {
	var event statusChangedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return event, err
	}
	if event.OrderID == "" || event.Status == "" {
		return event, errEmptyEvent
	}
	return event, nil
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := decodeEvent(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	status := entities.OrderStatusType(event.Status)
	order, err := h.orderService.UpdateOrder(ctx, event.OrderID, entities.OrderModify{Status: &status})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.Warn("order not found, message skipped")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("failed to apply status change")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("current_status", order.Status.String()),
	).Info("status change applied")

	sess.MarkMessage(message, "")
	return false
}
