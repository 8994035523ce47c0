// Package messaging implements the outbound messenger on the Twilio
// WhatsApp API.
package messaging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/peakform/fitness-api/internal/core/domain"
)

// TwilioMessenger implements ports.Messenger over Twilio's WhatsApp channel.
type TwilioMessenger struct {
	client *twilio.RestClient
	from   string
	log    zerolog.Logger
}

// NewTwilioMessenger builds a messenger sending from the given WhatsApp
// number (without the "whatsapp:" prefix).
func NewTwilioMessenger(accountSID, authToken, from string, log zerolog.Logger) *TwilioMessenger {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioMessenger{client: client, from: from, log: log}
}

func (m *TwilioMessenger) Send(_ context.Context, to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + m.from)
	params.SetTo("whatsapp:" + to)
	params.SetBody(body)

	if _, err := m.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMessengerUnavailable, err)
	}

	m.log.Debug().Str("to", to).Msg("check-in message sent")
	return nil
}
