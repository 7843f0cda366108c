package orderdto

import "fmt"

type SubmitOrderOutput struct {
	OrderID     string
	OrderNumber string
}

type ApprovalOutput struct {
	CustomerID   string
	Slug         string
	IsNewAccount bool
}

// FormatOrderNumber renders the human-facing sequential order number.
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("TPO-%06d", n)
}
