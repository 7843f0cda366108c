package domain

import "context"

// AccountProfile is the customer data handed to the provisioning
// collaborator when an order is approved.
type AccountProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type ProvisionedAccount struct {
	AccountID string `json:"account_id"`
	IsNew     bool   `json:"is_new"`
}

// AccountProvisioner creates (or finds) a customer account, idempotent
// by email.
type AccountProvisioner interface {
	CreateAccount(ctx context.Context, email string, profile AccountProfile) (*ProvisionedAccount, error)
}

// Notifier delivers side-channel notifications. Fire-and-forget:
// implementations log failures and never propagate them.
type Notifier interface {
	SendCredentials(recipient string, variables map[string]string)
}

type Message struct {
	Key   []byte
	Value []byte
}

type Publisher interface {
	Publish(topic string, msgs ...Message) error
}
