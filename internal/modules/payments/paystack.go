package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/config"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/shared/apperr"
)

type PaystackClient struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

func NewPaystackClient(cfg config.PaystackConfig) *PaystackClient {
	return &PaystackClient{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		// Explicit timeout so a hung provider cannot hold the initialize
		// request open indefinitely.
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *PaystackClient) Name() string { return "paystack" }

type paystackInitRequest struct {
	Email       string `json:"email"`
	Amount      int    `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type paystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

func (p *PaystackClient) InitializeTransaction(ctx context.Context, req InitializeTransactionRequest) (InitializeTransactionResponse, error) {
	body, err := json.Marshal(paystackInitRequest{
		Email:       req.Email,
		Amount:      req.AmountMinor,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
	})
	if err != nil {
		return InitializeTransactionResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return InitializeTransactionResponse{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(httpReq)
	if err != nil {
		return InitializeTransactionResponse{}, apperr.BadGatewayErr("Payment provider is unreachable.", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return InitializeTransactionResponse{}, apperr.BadGatewayErr("Payment provider response could not be read.", err)
	}

	var out paystackInitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return InitializeTransactionResponse{}, apperr.BadGatewayErr("Payment provider returned an invalid response.",
			fmt.Errorf("paystack: decode initialize response (status %d): %w", res.StatusCode, err))
	}

	if res.StatusCode >= 400 || !out.Status {
		msg := out.Message
		if msg == "" {
			msg = "Payment provider rejected the transaction."
		}
		return InitializeTransactionResponse{}, apperr.BadGatewayErr(msg,
			fmt.Errorf("paystack: initialize failed (status %d): %s", res.StatusCode, string(raw)))
	}

	return InitializeTransactionResponse{
		AuthorizationURL: out.Data.AuthorizationURL,
		AccessCode:       out.Data.AccessCode,
		Reference:        out.Data.Reference,
	}, nil
}
