// Package checkout packages a cart snapshot plus customer details into a
// single order submission. A submission moves through an explicit
// pending -> confirmed | failed lifecycle; callers clear the cart only
// once the submission is confirmed, so the customer's cart and details
// survive any failure and can be resubmitted.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/plugah603/plugah-api/cart"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingName    = errors.New("full name is required")
	ErrMissingPhone   = errors.New("phone is required")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

type CustomerInfo struct {
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Note          string `json:"note"`
	PaymentMethod string `json:"paymentMethod"`
}

type Config struct {
	// OrderURL is the orders endpoint the payload is dispatched to.
	OrderURL string
	// WebhookURL optionally receives a denormalized free-text copy of
	// each confirmed order. Delivery is best effort.
	WebhookURL string
	PayboxLink string
	BitLink    string
	Timeout    time.Duration
}

type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
}

type OrderPayload struct {
	FullName      string      `json:"fullName"`
	Phone         string      `json:"phone"`
	Note          string      `json:"note"`
	Items         []OrderItem `json:"items"`
	TotalAmount   int         `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
}

// Result describes a confirmed submission, including the externally
// hosted payment link the customer is handed off to. Payment itself is
// never verified here.
type Result struct {
	OrderID     uint   `json:"orderId"`
	Reference   string `json:"reference"`
	TotalAmount int    `json:"totalAmount"`
	PaymentURL  string `json:"paymentUrl"`
}

type orderResponse struct {
	ID          uint   `json:"ID"`
	Reference   string `json:"reference"`
	TotalAmount int    `json:"totalAmount"`
}

// Submitter performs order submissions for one shopping session. While a
// submission is outstanding further Submit calls are rejected, but
// nothing stops a second session from submitting independently.
type Submitter struct {
	client *resty.Client
	cfg    Config

	mu       sync.Mutex
	status   Status
	inFlight bool
}

func NewSubmitter(cfg Config) *Submitter {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Submitter{
		client: resty.New().SetTimeout(cfg.Timeout),
		cfg:    cfg,
		status: StatusIdle,
	}
}

func (s *Submitter) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Submit validates the preconditions, dispatches the payload exactly
// once and reports the outcome. There are no retries and no idempotency
// token: calling Submit again after a failure creates a new order.
func (s *Submitter) Submit(ctx context.Context, snapshot cart.Snapshot, info CustomerInfo) (*Result, error) {
	if err := validate(snapshot, info); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	s.inFlight = true
	s.status = StatusPending
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	payload := buildPayload(snapshot, info)

	var created orderResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post(s.cfg.OrderURL)
	if err != nil {
		s.setStatus(StatusFailed)
		return nil, fmt.Errorf("order dispatch failed: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		s.setStatus(StatusFailed)
		return nil, fmt.Errorf("order dispatch rejected with status %d: %s", resp.StatusCode(), resp.Body())
	}

	s.setStatus(StatusConfirmed)

	s.notifyWebhook(ctx, payload, created.Reference)

	return &Result{
		OrderID:     created.ID,
		Reference:   created.Reference,
		TotalAmount: payload.TotalAmount,
		PaymentURL:  s.paymentURL(payload.PaymentMethod),
	}, nil
}

func (s *Submitter) setStatus(status Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *Submitter) paymentURL(method string) string {
	if method == "bit" && s.cfg.BitLink != "" {
		return s.cfg.BitLink
	}
	return s.cfg.PayboxLink
}

// notifyWebhook sends the denormalized side-channel copy. Failures are
// logged and never affect the submission outcome.
func (s *Submitter) notifyWebhook(ctx context.Context, payload OrderPayload, reference string) {
	if s.cfg.WebhookURL == "" {
		return
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(FormatOrderText(payload, reference)).
		Post(s.cfg.WebhookURL)
	if err != nil {
		log.Println("Order webhook delivery failed:", err)
		return
	}
	if resp.IsError() {
		log.Printf("Order webhook rejected with status %d", resp.StatusCode())
	}
}

func validate(snapshot cart.Snapshot, info CustomerInfo) error {
	if snapshot.Empty() {
		return ErrEmptyCart
	}
	if strings.TrimSpace(info.FullName) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(info.Phone) == "" {
		return ErrMissingPhone
	}
	return nil
}

func buildPayload(snapshot cart.Snapshot, info CustomerInfo) OrderPayload {
	items := make([]OrderItem, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		items = append(items, OrderItem{Name: l.Name, Quantity: l.Quantity, Size: l.Size})
	}
	method := info.PaymentMethod
	if method == "" {
		method = "paybox"
	}
	return OrderPayload{
		FullName:      info.FullName,
		Phone:         info.Phone,
		Note:          info.Note,
		Items:         items,
		TotalAmount:   snapshot.Total,
		PaymentMethod: method,
	}
}

// FormatOrderText renders the free-form webhook body. The format is not
// versioned against the orders API.
func FormatOrderText(payload OrderPayload, reference string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s from %s (%s)\n", reference, payload.FullName, payload.Phone)
	for _, item := range payload.Items {
		if item.Size != "" {
			fmt.Fprintf(&b, "- %s x%d (size %s)\n", item.Name, item.Quantity, item.Size)
		} else {
			fmt.Fprintf(&b, "- %s x%d\n", item.Name, item.Quantity)
		}
	}
	fmt.Fprintf(&b, "Total: %d (%s)", payload.TotalAmount, payload.PaymentMethod)
	if payload.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s", payload.Note)
	}
	return b.String()
}
