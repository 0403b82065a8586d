package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

func TestFormatMessage(t *testing.T) {
	msg := formatMessage("robot@example.org", "a@b.com", "Your Code", "Code: 123456")

	assert.Contains(t, msg, "From: robot@example.org\r\n")
	assert.Contains(t, msg, "To: a@b.com\r\n")
	assert.Contains(t, msg, "Subject: Your Code\r\n")
	assert.Contains(t, msg, "\r\n\r\nCode: 123456")
}

func TestSMTPNotifier_SendWrapsDeliveryError(t *testing.T) {
	// Nothing listens on this address, so the dial fails immediately.
	n := NewSMTPNotifier("127.0.0.1", 1, "robot@example.org", "pw")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := n.Send(ctx, "a@b.com", "subject", "body")
	assert.ErrorIs(t, err, common.ErrorDelivery)
}
