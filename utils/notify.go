package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/plugah603/plugah-api/models"
)

// FormatOrderSummary renders the denormalized free-text copy of an order
// for the external collector. The format is intentionally not versioned
// against the orders API.
func FormatOrderSummary(order models.Order, items []models.OrderItemInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s from %s (%s)\n", order.Reference, order.FullName, order.Phone)
	for _, item := range items {
		if item.Size != "" {
			fmt.Fprintf(&b, "- %s x%d (size %s)\n", item.Name, item.Quantity, item.Size)
		} else {
			fmt.Fprintf(&b, "- %s x%d\n", item.Name, item.Quantity)
		}
	}
	fmt.Fprintf(&b, "Total: %d (%s)", order.TotalAmount, order.PaymentMethod)
	if order.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s", order.Note)
	}
	return b.String()
}

// NotifyOrderWebhook posts the order summary to the configured collector.
// A missing ORDER_WEBHOOK_URL disables the side channel entirely.
func NotifyOrderWebhook(order models.Order, items []models.OrderItemInput) error {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	resp, err := resty.New().SetTimeout(15 * time.Second).R().
		SetHeader("Content-Type", "text/plain").
		SetBody(FormatOrderSummary(order, items)).
		Post(webhookURL)
	if err != nil {
		return fmt.Errorf("failed to deliver order webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("order webhook rejected with status %d: %s", resp.StatusCode(), resp.Body())
	}

	return nil
}
