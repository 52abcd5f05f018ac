package service

import (
	"strings"
)

// Payment outcome as classified from the gateway's redirect URL. The hosted
// page signals the result only through where it navigates, so the callback
// matches substrings the same way the payment webview did.
const (
	PaymentOutcomeSuccess = "success"
	PaymentOutcomeCancel  = "cancel"
	PaymentOutcomePending = "pending"
)

// FlutterwavePaymentService hands out the hosted-payment link and classifies
// redirect URLs coming back from it.
type FlutterwavePaymentService struct {
	paymentLink string
}

func NewFlutterwavePaymentService(paymentLink string) *FlutterwavePaymentService {
	return &FlutterwavePaymentService{
		paymentLink: paymentLink,
	}
}

// PaymentLink returns the hosted page the client should open for a card
// payment.
func (s *FlutterwavePaymentService) PaymentLink() string {
	return s.paymentLink
}

// ClassifyRedirect maps a redirect URL to a payment outcome.
func (s *FlutterwavePaymentService) ClassifyRedirect(url string) string {
	switch {
	case strings.Contains(url, "thank-you"), strings.Contains(url, "success"):
		return PaymentOutcomeSuccess
	case strings.Contains(url, "cancel"):
		return PaymentOutcomeCancel
	default:
		return PaymentOutcomePending
	}
}
