// Package notify delivers out-of-band messages, currently over SMTP.
package notify

import "context"

// Notifier delivers a message to a destination address. Implementations
// wrap delivery failures with common.ErrorDelivery so callers can treat
// "nothing was sent" as a single condition.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
