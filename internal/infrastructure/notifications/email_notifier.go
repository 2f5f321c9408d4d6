package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"serving_u/internal/domain/entities"
	"serving_u/internal/usecase/interfaces"

	gomail "gopkg.in/gomail.v2"
)

var ErrMissingEmailCredentials = errors.New("missing EMAIL_USER or EMAIL_PASS")

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	AdminTo  string
}

func NewEmailConfigFromEnv() EmailConfig {
	port := 587
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	user := os.Getenv("EMAIL_USER")
	adminTo := os.Getenv("ADMIN_EMAIL")
	if adminTo == "" {
		adminTo = user
	}
	return EmailConfig{
		Host:     getenvDefault("EMAIL_HOST", "smtp.gmail.com"),
		Port:     port,
		User:     user,
		Password: os.Getenv("EMAIL_PASS"),
		AdminTo:  adminTo,
	}
}

// EmailNotifier mails the admin inbox when new work lands. Failures are the
// caller's to log; requests never block on delivery.

type EmailNotifier struct {
	cfg    EmailConfig
	dialer *gomail.Dialer
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

func NewEmailNotifier(cfg EmailConfig) (*EmailNotifier, error) {
	if cfg.User == "" || cfg.Password == "" {
		log.Printf("[notify][email] missing EMAIL_USER or EMAIL_PASS")
		return nil, ErrMissingEmailCredentials
	}
	return &EmailNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}, nil
}

func (n *EmailNotifier) NotifyOrderCreated(_ context.Context, o entities.Order) error {
	subject := fmt.Sprintf("New order #%d from %s", o.Sequence, o.Customer.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d\n\n", o.Sequence)
	fmt.Fprintf(&b, "Customer: %s\nPhone: %s\nEmail: %s\nAddress: %s\n\n", o.Customer.Name, o.Customer.Phone, o.Customer.Email, o.Customer.Address)
	fmt.Fprintf(&b, "Items:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  - %s x%d @ %.2f", it.Name, it.Quantity, it.Price)
		if it.LaundryType != "" {
			fmt.Fprintf(&b, " (%s)", it.LaundryType)
		}
		fmt.Fprintf(&b, "\n")
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n", o.EffectiveTotal())
	if o.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n", o.Note)
	}

	return n.send(subject, b.String())
}

func (n *EmailNotifier) NotifyAlterationCreated(_ context.Context, a entities.Alteration) error {
	subject := fmt.Sprintf("New alteration request from %s", a.Customer.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s\nPhone: %s\nEmail: %s\nAddress: %s\n\n", a.Customer.Name, a.Customer.Phone, a.Customer.Email, a.Customer.Address)
	fmt.Fprintf(&b, "Quantity: %d\nNote: %s\n", a.Quantity, a.Note)

	return n.send(subject, b.String())
}

func (n *EmailNotifier) send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.cfg.User)
	msg.SetHeader("To", n.cfg.AdminTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		log.Printf("[notify][email] send failed subject=%q err=%v", subject, err)
		return err
	}
	log.Printf("[notify][email] sent subject=%q", subject)
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
