package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgInvalidInput   = "invalid input"

	// Mining errors
	ErrMsgNoPickaxe   = "no pickaxe equipped"
	ErrMsgOnCooldown  = "action on cooldown"
	ErrMsgInvalidTier = "equipment tier out of range"

	// Economy errors
	ErrMsgInvalidResource       = "invalid resource"
	ErrMsgInvalidAmount         = "invalid amount"
	ErrMsgInvalidDirection      = "invalid exchange direction"
	ErrMsgInsufficientResource  = "insufficient resource"
	ErrMsgNothingToSell         = "nothing to sell"
	ErrMsgNotEnoughSoftCurrency = "not enough mcoin"
	ErrMsgNotEnoughHardCurrency = "not enough stars"
	ErrMsgMaxLevel              = "equipment already at max level"
	ErrMsgInvalidPaymentMethod  = "invalid payment method"

	// Case errors
	ErrMsgInvalidCase            = "invalid case"
	ErrMsgCollectibleUnavailable = "collectible pool exhausted"

	// Ladder errors
	ErrMsgBadStake         = "stake not allowed"
	ErrMsgSessionActive    = "ladder session already active"
	ErrMsgNoSession        = "no active ladder session"
	ErrMsgBadColumn        = "column out of range"
	ErrMsgNothingToCashout = "no cleared levels to cash out"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Machine-readable error codes returned to API clients
const (
	CodeNoPickaxe        = "no_pickaxe"
	CodeCooldown         = "cooldown"
	CodeNothingToSell    = "nothing_to_sell"
	CodeNotEnoughMcoin   = "not_enough_mcoin"
	CodeNotEnoughStars   = "not_enough_stars"
	CodeMaxLevel         = "max_level"
	CodeNFTUnavailable   = "nft_unavailable"
	CodeBadStake         = "bad_stake"
	CodeSessionActive    = "session_active"
	CodeNoSession        = "no_session"
	CodeBadColumn        = "bad_column"
	CodeNothingToCashout = "nothing_to_cashout"
	CodeInvalidResource  = "invalid_resource"
	CodeInvalidAmount    = "invalid_amount"
	CodeInvalidDirection = "invalid_direction"
	CodeInvalidMethod    = "invalid_method"
	CodeInvalidCase      = "invalid_case"
	CodeInvalidInput     = "invalid_input"
	CodeNoUser           = "no_user"
	CodeInternal         = "internal"

	// CodeInsufficientPrefix is combined with a resource name, e.g. insufficient_coal
	CodeInsufficientPrefix = "insufficient_"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)

	ErrNoPickaxe   = errors.New(ErrMsgNoPickaxe)
	ErrOnCooldown  = errors.New(ErrMsgOnCooldown)
	ErrInvalidTier = errors.New(ErrMsgInvalidTier)

	ErrInvalidResource       = errors.New(ErrMsgInvalidResource)
	ErrInvalidAmount         = errors.New(ErrMsgInvalidAmount)
	ErrInvalidDirection      = errors.New(ErrMsgInvalidDirection)
	ErrInsufficientResource  = errors.New(ErrMsgInsufficientResource)
	ErrNothingToSell         = errors.New(ErrMsgNothingToSell)
	ErrNotEnoughSoftCurrency = errors.New(ErrMsgNotEnoughSoftCurrency)
	ErrNotEnoughHardCurrency = errors.New(ErrMsgNotEnoughHardCurrency)
	ErrMaxLevel              = errors.New(ErrMsgMaxLevel)
	ErrInvalidPaymentMethod  = errors.New(ErrMsgInvalidPaymentMethod)

	ErrInvalidCase            = errors.New(ErrMsgInvalidCase)
	ErrCollectibleUnavailable = errors.New(ErrMsgCollectibleUnavailable)

	ErrBadStake         = errors.New(ErrMsgBadStake)
	ErrSessionActive    = errors.New(ErrMsgSessionActive)
	ErrNoSession        = errors.New(ErrMsgNoSession)
	ErrBadColumn        = errors.New(ErrMsgBadColumn)
	ErrNothingToCashout = errors.New(ErrMsgNothingToCashout)

	// ErrTxClosed is returned by Rollback after Commit already ended the transaction
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

// InsufficientResourceError reports which resource the player ran short of.
type InsufficientResourceError struct {
	Resource  Resource
	Have      int64
	Requested int64
}

func (e InsufficientResourceError) Error() string {
	return fmt.Sprintf("%s: %s (have %d, requested %d)", ErrMsgInsufficientResource, e.Resource, e.Have, e.Requested)
}

// Is allows errors.Is(err, ErrInsufficientResource)
func (e InsufficientResourceError) Is(target error) bool {
	return target == ErrInsufficientResource
}

// Code returns insufficient_<resource>
func (e InsufficientResourceError) Code() string {
	return CodeInsufficientPrefix + string(e.Resource)
}

// Coder is implemented by errors that carry their own client-facing code.
type Coder interface {
	Code() string
}

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrPlayerNotFound, CodeNoUser},
	{ErrInvalidInput, CodeInvalidInput},
	{ErrNoPickaxe, CodeNoPickaxe},
	{ErrOnCooldown, CodeCooldown},
	{ErrInvalidResource, CodeInvalidResource},
	{ErrInvalidAmount, CodeInvalidAmount},
	{ErrInvalidDirection, CodeInvalidDirection},
	{ErrNothingToSell, CodeNothingToSell},
	{ErrNotEnoughSoftCurrency, CodeNotEnoughMcoin},
	{ErrNotEnoughHardCurrency, CodeNotEnoughStars},
	{ErrMaxLevel, CodeMaxLevel},
	{ErrInvalidPaymentMethod, CodeInvalidMethod},
	{ErrInvalidCase, CodeInvalidCase},
	{ErrCollectibleUnavailable, CodeNFTUnavailable},
	{ErrBadStake, CodeBadStake},
	{ErrSessionActive, CodeSessionActive},
	{ErrNoSession, CodeNoSession},
	{ErrBadColumn, CodeBadColumn},
	{ErrNothingToCashout, CodeNothingToCashout},
}

// ErrorCode maps an error to the machine-readable code sent to clients.
// Anything unrecognised is reported as internal.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var coder Coder
	if errors.As(err, &coder) {
		return coder.Code()
	}

	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}
