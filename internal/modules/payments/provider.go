package payments

import "context"

type InitializeTransactionRequest struct {
	Email       string
	AmountMinor int // smallest currency unit, e.g. kobo
	Reference   string
	CallbackURL string
}

type InitializeTransactionResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// Gateway is the payment provider's initialize-transaction surface. The
// asynchronous outcome arrives separately through the webhook endpoint.
type Gateway interface {
	Name() string
	InitializeTransaction(ctx context.Context, req InitializeTransactionRequest) (InitializeTransactionResponse, error)
}
