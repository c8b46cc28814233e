// Package http exposes the place-order workflow over HTTP. Requests and
// responses travel as DTOs; nothing typed crosses the boundary.
package http

import (
	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/result"
)

// OrderFormDTO is the raw order submission as it arrives on the wire.
// Every field is an untrusted string; validation happens inside the
// workflow, never here.
type OrderFormDTO struct {
	OrderID         string             `json:"orderId"`
	CustomerInfo    CustomerInfoDTO    `json:"customerInfo"`
	ShippingAddress AddressDTO         `json:"shippingAddress"`
	BillingAddress  AddressDTO         `json:"billingAddress"`
	Lines           []OrderFormLineDTO `json:"lines"`
	PromotionCode   string             `json:"promotionCode"`
}

// CustomerInfoDTO carries the raw customer fields.
type CustomerInfoDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	VipStatus    string `json:"vipStatus"`
}

// AddressDTO carries one raw postal address.
type AddressDTO struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	AddressLine4 string `json:"addressLine4"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// OrderFormLineDTO carries one raw order line.
type OrderFormLineDTO struct {
	OrderLineID string          `json:"orderLineId"`
	ProductCode string          `json:"productCode"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ErrorDTO is the error payload returned for failed requests.
type ErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ShipmentLineDTO is one line of a shippable-order event.
type ShipmentLineDTO struct {
	ProductCode string `json:"productCode"`
	Quantity    string `json:"quantity"`
}

// ShippableOrderPlacedDTO is the wire form of order.ShippableOrderPlaced.
type ShippableOrderPlacedDTO struct {
	Kind          string            `json:"kind"`
	OrderID       string            `json:"orderId"`
	ShipmentLines []ShipmentLineDTO `json:"shipmentLines"`
	PdfName       string            `json:"pdfName"`
}

// BillableOrderPlacedDTO is the wire form of order.BillableOrderPlaced.
type BillableOrderPlacedDTO struct {
	Kind           string     `json:"kind"`
	OrderID        string     `json:"orderId"`
	BillingAddress AddressDTO `json:"billingAddress"`
	AmountToBill   string     `json:"amountToBill"`
}

// AcknowledgmentSentDTO is the wire form of order.AcknowledgmentSent.
type AcknowledgmentSentDTO struct {
	Kind         string `json:"kind"`
	OrderID      string `json:"orderId"`
	EmailAddress string `json:"emailAddress"`
}

func toUnvalidatedOrder(dto OrderFormDTO) order.UnvalidatedOrder {
	lines := make([]order.UnvalidatedOrderLine, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, order.UnvalidatedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		})
	}

	return order.UnvalidatedOrder{
		OrderID: dto.OrderID,
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    dto.CustomerInfo.FirstName,
			LastName:     dto.CustomerInfo.LastName,
			EmailAddress: dto.CustomerInfo.EmailAddress,
			VipStatus:    dto.CustomerInfo.VipStatus,
		},
		ShippingAddress: toUnvalidatedAddress(dto.ShippingAddress),
		BillingAddress:  toUnvalidatedAddress(dto.BillingAddress),
		Lines:           lines,
		PromotionCode:   dto.PromotionCode,
	}
}

func toUnvalidatedAddress(dto AddressDTO) order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: dto.AddressLine1,
		AddressLine2: dto.AddressLine2,
		AddressLine3: dto.AddressLine3,
		AddressLine4: dto.AddressLine4,
		City:         dto.City,
		ZipCode:      dto.ZipCode,
		State:        dto.State,
		Country:      dto.Country,
	}
}

func fromAddress(address order.Address) AddressDTO {
	return AddressDTO{
		AddressLine1: address.AddressLine1().String(),
		AddressLine2: optionalLine(address.AddressLine2()),
		AddressLine3: optionalLine(address.AddressLine3()),
		AddressLine4: optionalLine(address.AddressLine4()),
		City:         address.City().String(),
		ZipCode:      address.ZipCode().String(),
		State:        address.State().String(),
		Country:      address.Country().String(),
	}
}

func optionalLine(line result.Option[kernel.String50]) string {
	if value, ok := line.Get(); ok {
		return value.String()
	}
	return ""
}

// toEventDTOs serializes the event list in emission order, each event
// tagged with its kind.
func toEventDTOs(events []order.PlaceOrderEvent) []any {
	dtos := make([]any, 0, len(events))
	for _, event := range events {
		switch e := event.(type) {
		case order.ShippableOrderPlaced:
			lines := make([]ShipmentLineDTO, 0, len(e.ShipmentLines))
			for _, line := range e.ShipmentLines {
				lines = append(lines, ShipmentLineDTO{
					ProductCode: line.ProductCode.String(),
					Quantity:    line.Quantity.Decimal().String(),
				})
			}
			dtos = append(dtos, ShippableOrderPlacedDTO{
				Kind:          "ShippableOrderPlaced",
				OrderID:       e.OrderID.String(),
				ShipmentLines: lines,
				PdfName:       e.Pdf.Name,
			})
		case order.BillableOrderPlaced:
			dtos = append(dtos, BillableOrderPlacedDTO{
				Kind:           "BillableOrderPlaced",
				OrderID:        e.OrderID.String(),
				BillingAddress: fromAddress(e.BillingAddress),
				AmountToBill:   e.AmountToBill.String(),
			})
		case order.AcknowledgmentSent:
			dtos = append(dtos, AcknowledgmentSentDTO{
				Kind:         "AcknowledgmentSent",
				OrderID:      e.OrderID.String(),
				EmailAddress: e.EmailAddress.String(),
			})
		}
	}
	return dtos
}
