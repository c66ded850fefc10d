package structs

// SubscriptionKeys mirrors the keys block of a browser PushSubscription.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// SubscribeRequest is the JSON a browser produces from
// PushManager.subscribe().toJSON().
type SubscribeRequest struct {
	Endpoint string           `json:"endpoint" validate:"required,url"`
	Keys     SubscriptionKeys `json:"keys" validate:"required"`
}

// NotificationPayload is the JSON document sent to the push transport for
// every subscription. The notification block drives the OS-level display;
// the top-level data block is duplicated because the service worker reads
// event.data.json() directly from the push event.
type NotificationPayload struct {
	Notification NotificationDisplay `json:"notification"`
	Data         NotificationData    `json:"data"`
}

type NotificationDisplay struct {
	Title string           `json:"title"`
	Body  string           `json:"body"`
	Icon  string           `json:"icon"`
	Data  NotificationData `json:"data"`
}

type NotificationData struct {
	URL     string `json:"url"`
	OrderId string `json:"orderId"`
	Type    string `json:"type,omitempty"`
}
