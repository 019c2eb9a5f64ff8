package whatsapp

import (
	"net/url"
	"strings"

	"villa/config"
)

// Messenger turns a message body into a deep link the guest's browser opens
// to continue the conversation with the property owner.
type Messenger interface {
	Link(body string) string
}

type messengerImpl struct {
	baseURL   string
	recipient string
}

func New(cfg *config.Config) Messenger {
	return &messengerImpl{
		baseURL:   strings.TrimSuffix(cfg.Messaging.BaseURL, "/"),
		recipient: cfg.Messaging.Recipient,
	}
}

// Link returns <base>/<recipient>?text=<body>. Spaces are encoded as %20 so
// the link matches what browsers produce with encodeURIComponent.
func (m *messengerImpl) Link(body string) string {
	return m.baseURL + "/" + url.PathEscape(m.recipient) + "?text=" + Encode(body)
}

func Encode(body string) string {
	return strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
}
