package shared

import (
	"fmt"
	"strings"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError signals a referenced entity is absent

type NotFoundError struct {
	*DomainError
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s not found: %s", kind, id)},
		Kind:        kind,
		ID:          id,
	}
}

// Ledger precondition errors

type InsufficientFundsError struct {
	*DomainError
	RequiredUSD  float64
	AvailableUSD float64
}

func NewInsufficientFundsError(required, available float64) *InsufficientFundsError {
	return &InsufficientFundsError{
		DomainError:  &DomainError{Message: fmt.Sprintf("insufficient funds: need %.2f, have %.2f", required, available)},
		RequiredUSD:  required,
		AvailableUSD: available,
	}
}

type InsufficientPointsError struct {
	*DomainError
	Required  float64
	Available float64
}

func NewInsufficientPointsError(required, available float64) *InsufficientPointsError {
	return &InsufficientPointsError{
		DomainError: &DomainError{Message: fmt.Sprintf("insufficient research points: need %.2f, have %.2f", required, available)},
		Required:    required,
		Available:   available,
	}
}

type InsufficientFuelError struct {
	*DomainError
	RequiredKg  float64
	AvailableKg float64
}

func NewInsufficientFuelError(requiredKg, availableKg float64) *InsufficientFuelError {
	return &InsufficientFuelError{
		DomainError: &DomainError{Message: fmt.Sprintf("insufficient fuel: need %.1f kg, have %.1f kg", requiredKg, availableKg)},
		RequiredKg:  requiredKg,
		AvailableKg: availableKg,
	}
}

// InsufficientIspError is raised when delta-v is requested from a ship
// with no usable thruster.
type InsufficientIspError struct {
	*DomainError
}

func NewInsufficientIspError() *InsufficientIspError {
	return &InsufficientIspError{DomainError: &DomainError{Message: "ship has no thruster with positive isp"}}
}

// ItemShortage reports the gap for one requested item id. Quantities are
// unit counts for part stacks and kilograms for resource stacks.
type ItemShortage struct {
	ItemID    string
	Required  float64
	Available float64
}

type InsufficientInventoryError struct {
	*DomainError
	Shortages []ItemShortage
}

func NewInsufficientInventoryError(shortages []ItemShortage) *InsufficientInventoryError {
	parts := make([]string, len(shortages))
	for i, s := range shortages {
		parts[i] = fmt.Sprintf("%s need %g have %g", s.ItemID, s.Required, s.Available)
	}
	return &InsufficientInventoryError{
		DomainError: &DomainError{Message: "insufficient inventory: " + strings.Join(parts, "; ")},
		Shortages:   shortages,
	}
}

// State-machine guard errors

type NotDockedError struct {
	*DomainError
	ShipID string
}

func NewNotDockedError(shipID string) *NotDockedError {
	return &NotDockedError{
		DomainError: &DomainError{Message: fmt.Sprintf("ship %s is not docked", shipID)},
		ShipID:      shipID,
	}
}

type NoRouteError struct {
	*DomainError
	FromID string
	ToID   string
}

func NewNoRouteError(fromID, toID string) *NoRouteError {
	return &NoRouteError{
		DomainError: &DomainError{Message: fmt.Sprintf("no route from %s to %s", fromID, toID)},
		FromID:      fromID,
		ToID:        toID,
	}
}

type NotBoostableError struct {
	*DomainError
	ItemID string
}

func NewNotBoostableError(itemID string) *NotBoostableError {
	return &NotBoostableError{
		DomainError: &DomainError{Message: fmt.Sprintf("item %s is not boostable for this organization", itemID)},
		ItemID:      itemID,
	}
}

type AlreadyUnlockedError struct {
	*DomainError
	TechID string
}

func NewAlreadyUnlockedError(techID string) *AlreadyUnlockedError {
	return &AlreadyUnlockedError{
		DomainError: &DomainError{Message: fmt.Sprintf("technology %s is already unlocked", techID)},
		TechID:      techID,
	}
}

type PrereqMissingError struct {
	*DomainError
	TechID  string
	Missing []string
}

func NewPrereqMissingError(techID string, missing []string) *PrereqMissingError {
	return &PrereqMissingError{
		DomainError: &DomainError{Message: fmt.Sprintf("technology %s requires: %s", techID, strings.Join(missing, ", "))},
		TechID:      techID,
		Missing:     missing,
	}
}

type AlreadyProspectedError struct {
	*DomainError
	SiteLocationID string
}

func NewAlreadyProspectedError(siteLocationID string) *AlreadyProspectedError {
	return &AlreadyProspectedError{
		DomainError:    &DomainError{Message: fmt.Sprintf("site %s is already prospected", siteLocationID)},
		SiteLocationID: siteLocationID,
	}
}

// InventoryRaceError signals a stack dropped below the debited amount between
// precondition check and debit; the caller retries the whole transaction.
type InventoryRaceError struct {
	*DomainError
	StackKey string
}

func NewInventoryRaceError(stackKey string) *InventoryRaceError {
	return &InventoryRaceError{
		DomainError: &DomainError{Message: fmt.Sprintf("inventory stack %s changed mid-transaction", stackKey)},
		StackKey:    stackKey,
	}
}

// InternalError wraps store and config failures surfaced with a diagnostic.
type InternalError struct {
	*DomainError
	Cause error
}

func NewInternalError(message string, cause error) *InternalError {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &InternalError{
		DomainError: &DomainError{Message: message},
		Cause:       cause,
	}
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
