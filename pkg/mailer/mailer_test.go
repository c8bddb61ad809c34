package mailer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/wneessen/go-mail"
)

func testConfig() *Config {
	return &Config{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
		FromEmail: "hello@synth.example",
		FromName:  "Synth",
		RootURL:   "https://synth.example",
	}
}

func TestRenderer_FriendRequest(t *testing.T) {
	r := NewRenderer("https://synth.example")

	out, err := r.Render("friend_request", map[string]interface{}{
		"receiver_name": "Sam",
		"sender_name":   "Alex <script>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alex <script> wants to connect with you!", out.Subject)
	assert.Contains(t, out.HTML, "Hi Sam,")
	assert.Contains(t, out.HTML, "Alex &lt;script&gt;")
	assert.NotContains(t, out.HTML, "<script>")
	assert.Contains(t, out.HTML, `href="https://synth.example"`)
	assert.Contains(t, out.Text, "Visit https://synth.example")
}

func TestRenderer_Match(t *testing.T) {
	r := NewRenderer("https://synth.example")

	t.Run("with event title", func(t *testing.T) {
		out, err := r.Render("match", map[string]interface{}{
			"user_name": "Sam", "match_name": "Alex", "event_title": "Phish at MSG",
		})
		require.NoError(t, err)
		assert.Equal(t, "New Concert Buddy Match!", out.Subject)
		assert.Contains(t, out.Text, "matched for Phish at MSG.")
	})

	t.Run("without event title", func(t *testing.T) {
		out, err := r.Render("match", map[string]interface{}{
			"user_name": "Sam", "match_name": "Alex", "event_title": "",
		})
		require.NoError(t, err)
		assert.Contains(t, out.Text, "matched for an upcoming show.")
	})
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	_, err := NewRenderer("").Render("nope", nil)
	assert.Error(t, err)
}

func TestSMTPMailer_Send(t *testing.T) {
	m := NewSMTPMailer(testConfig())

	var sent []*mail.Msg
	m.send = func(msg *mail.Msg) error {
		sent = append(sent, msg)
		return nil
	}

	require.NoError(t, m.SendFriendRequest("sam@example.com", "Sam", "Alex"))
	require.NoError(t, m.SendFriendAccepted("alex@example.com", "Alex", "Sam"))
	require.NoError(t, m.SendMatch("sam@example.com", "Sam", "Alex", ""))
	require.Len(t, sent, 3)

	var buf bytes.Buffer
	_, err := sent[0].WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "sam@example.com")
	assert.Contains(t, raw, "hello@synth.example")
	assert.True(t, strings.Contains(raw, "Alex wants to connect with you!"))
}

func TestSMTPMailer_SendError(t *testing.T) {
	m := NewSMTPMailer(testConfig())
	m.send = func(*mail.Msg) error { return errors.New("connection refused") }

	err := m.SendMatch("sam@example.com", "Sam", "Alex", "Goose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send match email")
}

func TestSMTPMailer_InvalidRecipient(t *testing.T) {
	m := NewSMTPMailer(testConfig())
	m.send = func(*mail.Msg) error {
		t.Fatal("send must not be called")
		return nil
	}

	err := m.SendFriendRequest("not an email", "Sam", "Alex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set email recipient")
}

func TestNew(t *testing.T) {
	cfg := testConfig()
	assert.IsType(t, &SMTPMailer{}, New(cfg, logger.NewMockLogger()))

	cfg.SMTPHost = ""
	m := New(cfg, logger.NewMockLogger(t))
	assert.IsType(t, &ConsoleMailer{}, m)
	assert.NoError(t, m.SendFriendRequest("sam@example.com", "Sam", "Alex"))
}
