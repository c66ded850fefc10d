package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"comanda_server/structs"
	"comanda_server/structs/tables"
)

// ErrSubscriptionGone signals that the push service has permanently
// invalidated an endpoint and its row should be removed.
var ErrSubscriptionGone = errors.New("push subscription gone")

// PushTransport delivers one encrypted payload to one subscription.
type PushTransport interface {
	Send(ctx context.Context, sub *tables.PushSubscription, payload []byte) error
}

type webpushTransport struct {
	config *structs.PushConfig
}

func NewWebPushTransport(cfg *structs.PushConfig) PushTransport {
	return &webpushTransport{config: cfg}
}

func (t *webpushTransport) Send(ctx context.Context, sub *tables.PushSubscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      t.config.Subject,
		VAPIDPublicKey:  t.config.VAPIDPublicKey,
		VAPIDPrivateKey: t.config.VAPIDPrivateKey,
		TTL:             t.config.TTL,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}

	return nil
}
