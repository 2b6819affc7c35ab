package usecase

import "errors"

var (
	ErrInvalidBudgetID             = errors.New("invalid budget_id")
	ErrInvalidBudgetInput          = errors.New("invalid budget input")
	ErrBudgetNotFound              = errors.New("budget not found")
	ErrFinalValueRequired          = errors.New("budget final value is not set")
	ErrFinalValueFrozen            = errors.New("budget final value is frozen after acceptance")
	ErrInvalidFinalValue           = errors.New("invalid final value")
	ErrInvalidClientInput          = errors.New("invalid client input")
	ErrInvalidDocument             = errors.New("invalid document")
	ErrClientNotFound              = errors.New("client not found")
	ErrClientAlreadyExists         = errors.New("a client with this document already exists")
	ErrInvalidProjectID            = errors.New("invalid project_id")
	ErrProjectNotFound             = errors.New("project not found")
	ErrContractNotFound            = errors.New("contract not found")
	ErrContractExists              = errors.New("contract already generated for this budget")
	ErrInvalidPaymentType          = errors.New("invalid payment type")
	ErrInvalidPaymentEvent         = errors.New("invalid payment event")
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrInvalidSchedule             = errors.New("invalid schedule input")
	ErrScheduleNotFound            = errors.New("schedule not found")
	ErrNotificationNotFound        = errors.New("notification not found")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayFailed        = errors.New("payment gateway request failed")
)

// errLostRace marks a transaction that lost a compare-and-swap to a concurrent
// writer. It never leaves the package.
var errLostRace = errors.New("lost a race with a concurrent writer")
