package mailer

import (
	"fmt"
	"time"

	"github.com/synthapp/synth/pkg/logger"
	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_mailer.go -package=mocks github.com/synthapp/synth/pkg/mailer Mailer

// Mailer sends the transactional emails of the social features
type Mailer interface {
	SendFriendRequest(email, receiverName, senderName string) error
	SendFriendAccepted(email, senderName, receiverName string) error
	SendMatch(email, userName, matchName, eventTitle string) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	RootURL      string
}

// SMTPMailer implements Mailer over SMTP
type SMTPMailer struct {
	config   *Config
	renderer *Renderer
	// send is swapped in tests to capture messages instead of dialing
	send func(*mail.Msg) error
}

func NewSMTPMailer(config *Config) *SMTPMailer {
	m := &SMTPMailer{config: config, renderer: NewRenderer(config.RootURL)}
	m.send = m.dialAndSend
	return m
}

func (m *SMTPMailer) SendFriendRequest(email, receiverName, senderName string) error {
	return m.deliver(email, "friend_request", map[string]interface{}{
		"receiver_name": receiverName,
		"sender_name":   senderName,
	})
}

func (m *SMTPMailer) SendFriendAccepted(email, senderName, receiverName string) error {
	return m.deliver(email, "friend_accepted", map[string]interface{}{
		"receiver_name": receiverName,
		"sender_name":   senderName,
	})
}

func (m *SMTPMailer) SendMatch(email, userName, matchName, eventTitle string) error {
	return m.deliver(email, "match", map[string]interface{}{
		"user_name":   userName,
		"match_name":  matchName,
		"event_title": eventTitle,
	})
}

func (m *SMTPMailer) deliver(email, template string, data map[string]interface{}) error {
	rendered, err := m.renderer.Render(template, data)
	if err != nil {
		return err
	}

	msg, err := m.buildMessage(email, rendered)
	if err != nil {
		return err
	}

	if err := m.send(msg); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	return nil
}

func (m *SMTPMailer) buildMessage(email string, rendered *Rendered) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return nil, fmt.Errorf("failed to set email from address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return nil, fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(rendered.Subject)
	msg.SetBodyString(mail.TypeTextHTML, rendered.HTML)
	msg.AddAlternativeString(mail.TypeTextPlain, rendered.Text)
	return msg, nil
}

func (m *SMTPMailer) dialAndSend(msg *mail.Msg) error {
	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Unauthenticated relays (local MTA, port 25) are allowed
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client.DialAndSend(msg)
}

// ConsoleMailer logs rendered emails instead of sending them. Used when no SMTP
// host is configured.
type ConsoleMailer struct {
	logger   logger.Logger
	renderer *Renderer
}

func NewConsoleMailer(log logger.Logger, rootURL string) *ConsoleMailer {
	return &ConsoleMailer{logger: log, renderer: NewRenderer(rootURL)}
}

func (m *ConsoleMailer) SendFriendRequest(email, receiverName, senderName string) error {
	return m.log(email, "friend_request", map[string]interface{}{"receiver_name": receiverName, "sender_name": senderName})
}

func (m *ConsoleMailer) SendFriendAccepted(email, senderName, receiverName string) error {
	return m.log(email, "friend_accepted", map[string]interface{}{"receiver_name": receiverName, "sender_name": senderName})
}

func (m *ConsoleMailer) SendMatch(email, userName, matchName, eventTitle string) error {
	return m.log(email, "match", map[string]interface{}{"user_name": userName, "match_name": matchName, "event_title": eventTitle})
}

func (m *ConsoleMailer) log(email, template string, data map[string]interface{}) error {
	rendered, err := m.renderer.Render(template, data)
	if err != nil {
		return err
	}
	m.logger.WithFields(map[string]interface{}{
		"to":       email,
		"template": template,
		"subject":  rendered.Subject,
	}).Info(rendered.Text)
	return nil
}

// New picks the SMTP mailer when a host is configured and the console mailer otherwise
func New(config *Config, log logger.Logger) Mailer {
	if config.SMTPHost == "" {
		return NewConsoleMailer(log, config.RootURL)
	}
	return NewSMTPMailer(config)
}
