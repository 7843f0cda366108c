package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
)

// Client talks to the account-provisioning collaborator. The endpoint
// is idempotent by email: posting an existing email links to the
// existing account and returns is_new=false.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration, retryCount int) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(200 * time.Millisecond)

	return &Client{http: httpClient}
}

type createAccountRequest struct {
	Email   string                `json:"email"`
	Profile domain.AccountProfile `json:"profile"`
}

func (c *Client) CreateAccount(ctx context.Context, email string, profile domain.AccountProfile) (*domain.ProvisionedAccount, error) {
	var account domain.ProvisionedAccount

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createAccountRequest{Email: email, Profile: profile}).
		SetResult(&account).
		Post("/api/v1/accounts")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("provisioning service returned %s: %s", resp.Status(), resp.String())
	}
	if account.AccountID == "" {
		return nil, fmt.Errorf("provisioning service returned empty account id")
	}

	return &account, nil
}
