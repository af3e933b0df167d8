package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The lifecycle-service uses it to capture the placement fee when an
// employer pays an approved quote, and persists the provider response
// payload for traceability. In deployments where the host system simulates
// payment completion the gateway runs in mock mode.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
