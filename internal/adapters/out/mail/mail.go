// Package mail renders and delivers order acknowledgment letters.
package mail

import (
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// RenderLetter produces the acknowledgment letter text for a priced order.
// It satisfies ports.LetterRenderer.
func RenderLetter(orderWithShipping order.PricedOrderWithShipping) ports.Letter {
	pricedOrder := orderWithShipping.PricedOrder()
	shippingInfo := orderWithShipping.ShippingInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s %s,\n\n",
		pricedOrder.CustomerInfo().Name().FirstName(),
		pricedOrder.CustomerInfo().Name().LastName())
	fmt.Fprintf(&b, "Thank you for your order %s.\n\n", pricedOrder.OrderID())

	for _, line := range pricedOrder.Lines() {
		switch l := line.(type) {
		case order.PricedProductLine:
			fmt.Fprintf(&b, "  %s x %s = %s\n", l.ProductCode(), l.Quantity().Decimal(), l.LinePrice())
		case order.CommentLine:
			fmt.Fprintf(&b, "  %s\n", l.Text())
		}
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", pricedOrder.AmountToBill())
	fmt.Fprintf(&b, "Shipping: %s (%s)\n", shippingInfo.Cost(), shippingInfo.Method())

	return ports.Letter(b.String())
}

// LogSender delivers acknowledgment letters to the application log. It
// stands in for the mail gateway in local and test environments and always
// reports the letter as sent.
type LogSender struct {
	logger *log.Logger
}

// NewLogSender creates a sender writing to the given logger.
func NewLogSender(logger *log.Logger) LogSender {
	return LogSender{logger: logger}
}

// Send logs the letter and reports it delivered.
func (s LogSender) Send(acknowledgment ports.OrderAcknowledgment) ports.SendResult {
	s.logger.Infof("acknowledgment for %s:\n%s", acknowledgment.EmailAddress, acknowledgment.Letter)
	return ports.Sent
}
