package game

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrBusinessRule = errors.New("business rule violated")
)

// ValidationError rejects malformed or dangling references before any
// mutation. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// BusinessRuleError rejects a well-formed request the rules do not allow.
// It matches ErrBusinessRule under errors.Is.
type BusinessRuleError struct {
	Code    string
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

func (e *BusinessRuleError) Is(target error) bool {
	return target == ErrBusinessRule
}

var (
	ErrNoActiveGame      = &ValidationError{Code: "no_active_game", Message: "no active game"}
	ErrUnknownDaemon     = &ValidationError{Code: "unknown_daemon", Message: "unknown daemon"}
	ErrUnknownPlanet     = &ValidationError{Code: "unknown_planet", Message: "unknown planet"}
	ErrUnknownRoom       = &ValidationError{Code: "unknown_room", Message: "unknown room"}
	ErrUnknownEquipment  = &ValidationError{Code: "unknown_equipment", Message: "unknown equipment"}
	ErrUnknownCandidate  = &ValidationError{Code: "unknown_candidate", Message: "daemon is not in the recruitment pool"}
	ErrUnknownItemType   = &ValidationError{Code: "unknown_item_type", Message: "unknown item type"}
	ErrEmptyTeam         = &ValidationError{Code: "empty_team", Message: "mission team is empty"}
	ErrDuplicateMember   = &ValidationError{Code: "duplicate_team_member", Message: "daemon selected twice"}
	ErrNoMissionSelected = &ValidationError{Code: "no_mission_selected", Message: "no mission team selected"}

	ErrInsufficientCredits = &BusinessRuleError{Code: "insufficient_credits", Message: "not enough credits"}
	ErrDaemonInactive      = &BusinessRuleError{Code: "daemon_inactive", Message: "daemon is retired"}
	ErrDaemonTooWeak       = &BusinessRuleError{Code: "daemon_too_weak", Message: "daemon health too low to deploy"}
	ErrEquipmentIntact     = &BusinessRuleError{Code: "equipment_intact", Message: "equipment is already at full durability"}
	ErrNotAssigned         = &BusinessRuleError{Code: "equipment_not_assigned", Message: "equipment is not assigned"}
)

// Code extracts the stable reason code from a validation or rule error.
func Code(err error) string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Code
	}
	var b *BusinessRuleError
	if errors.As(err, &b) {
		return b.Code
	}
	return ""
}
