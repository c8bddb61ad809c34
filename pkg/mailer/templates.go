package mailer

import (
	"fmt"

	"github.com/osteele/liquid"
)

// emailTemplate holds liquid sources for one kind of email
type emailTemplate struct {
	subject string
	html    string
	text    string
}

// Rendered is an email ready to be sent
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

const layoutOpen = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1 style="color: white; margin: 0; font-size: 24px;">Synth</h1>
  </div>
  <div style="background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px;">`

const layoutClose = `
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{ root_url }}" style="background: #667eea; color: white; padding: 12px 30px; text-decoration: none; border-radius: 25px; font-weight: 600; display: inline-block;">{{ cta }}</a>
    </div>
  </div>
</div>`

var templates = map[string]emailTemplate{
	"friend_request": {
		subject: `{{ sender_name }} wants to connect with you!`,
		html: layoutOpen + `
    <h2 style="color: #333; margin-top: 0;">New Friend Request!</h2>
    <p>Hi {{ receiver_name | escape }},</p>
    <p><strong>{{ sender_name | escape }}</strong> wants to connect with you on Synth. They're looking for concert buddies and want to share their music experiences.</p>` + layoutClose,
		text: `Hi {{ receiver_name }},

{{ sender_name }} wants to connect with you on Synth!

Visit {{ root_url }} to view and respond to the friend request.

The Synth Team`,
	},
	"friend_accepted": {
		subject: `{{ receiver_name }} accepted your friend request!`,
		html: layoutOpen + `
    <h2 style="color: #333; margin-top: 0;">Friend Request Accepted!</h2>
    <p>Great news, {{ sender_name | escape }}!</p>
    <p><strong>{{ receiver_name | escape }}</strong> has accepted your friend request. You're now connected and can start discovering concerts together.</p>` + layoutClose,
		text: `Great news, {{ sender_name }}!

{{ receiver_name }} has accepted your friend request. You're now connected and can start discovering concerts together.

Visit {{ root_url }} to start exploring.

The Synth Team`,
	},
	"match": {
		subject: `New Concert Buddy Match!`,
		html: layoutOpen + `
    <h2 style="color: #333; margin-top: 0;">It's a match!</h2>
    <p>Hi {{ user_name | escape }},</p>
    <p>You and <strong>{{ match_name | escape }}</strong> both want company for {% if event_title != "" %}<strong>{{ event_title | escape }}</strong>{% else %}an upcoming show{% endif %}.</p>` + layoutClose,
		text: `Hi {{ user_name }},

You and {{ match_name }} matched for {% if event_title != "" %}{{ event_title }}{% else %}an upcoming show{% endif %}.

Visit {{ root_url }} to say hello.

The Synth Team`,
	},
}

// Renderer renders the email templates with a shared liquid engine
type Renderer struct {
	engine  *liquid.Engine
	rootURL string
}

func NewRenderer(rootURL string) *Renderer {
	return &Renderer{engine: liquid.NewEngine(), rootURL: rootURL}
}

// Render renders the named template. root_url is always bound.
func (r *Renderer) Render(name string, data map[string]interface{}) (*Rendered, error) {
	tpl, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown email template %q", name)
	}

	bindings := liquid.Bindings{"root_url": r.rootURL}
	for k, v := range data {
		bindings[k] = v
	}
	switch name {
	case "friend_request", "friend_accepted":
		bindings["cta"] = "Open Synth"
	case "match":
		bindings["cta"] = "Say hello"
	}

	out := &Rendered{}
	for _, part := range []struct {
		src string
		dst *string
	}{
		{tpl.subject, &out.Subject},
		{tpl.html, &out.HTML},
		{tpl.text, &out.Text},
	} {
		s, err := r.engine.ParseAndRenderString(part.src, bindings)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s email: %w", name, err)
		}
		*part.dst = s
	}
	return out, nil
}
