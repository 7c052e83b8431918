package ecochain

// ActionStatus is the verification state of an eco action.
type ActionStatus string

const (
	ActionPending  ActionStatus = "pending"
	ActionVerified ActionStatus = "verified"
	ActionRejected ActionStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s ActionStatus) IsTerminal() bool {
	return s == ActionVerified || s == ActionRejected
}

// CanTransitionTo reports whether s may move to next.
func (s ActionStatus) CanTransitionTo(next ActionStatus) bool {
	return s == ActionPending && next.IsTerminal()
}

// ProposalStatus is the lifecycle state of a governance proposal.
// Transitions out of active are driven by an external tally process.
type ProposalStatus string

const (
	ProposalActive   ProposalStatus = "active"
	ProposalPassed   ProposalStatus = "passed"
	ProposalRejected ProposalStatus = "rejected"
	ProposalExecuted ProposalStatus = "executed"
)

// CanTransitionTo reports whether s may move to next.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	switch s {
	case ProposalActive:
		return next == ProposalPassed || next == ProposalRejected
	case ProposalPassed:
		return next == ProposalExecuted
	default:
		return false
	}
}

// TxStatus is the confirmation state of a platform transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed.
func (s TxStatus) IsTerminal() bool {
	return s == TxConfirmed || s == TxFailed
}

// CanTransitionTo reports whether s may move to next.
func (s TxStatus) CanTransitionTo(next TxStatus) bool {
	return s == TxPending && next.IsTerminal()
}

// StakingStatus is the state of a staking position.
type StakingStatus string

const (
	StakingActive    StakingStatus = "active"
	StakingCompleted StakingStatus = "completed"
	StakingWithdrawn StakingStatus = "withdrawn"
)

// IsTerminal reports whether no further transition is allowed.
func (s StakingStatus) IsTerminal() bool {
	return s == StakingCompleted || s == StakingWithdrawn
}

// CanTransitionTo reports whether s may move to next.
func (s StakingStatus) CanTransitionTo(next StakingStatus) bool {
	return s == StakingActive && next.IsTerminal()
}

// ActionType classifies an eco action.
type ActionType string

const (
	ActionEnergy    ActionType = "energy"
	ActionWater     ActionType = "water"
	ActionRecycling ActionType = "recycling"
	ActionTransport ActionType = "transport"
	ActionPlanting  ActionType = "planting"
)

// TxType classifies a platform transaction.
type TxType string

const (
	TxTransfer       TxType = "transfer"
	TxStake          TxType = "stake"
	TxUnstake        TxType = "unstake"
	TxReward         TxType = "reward"
	TxGovernance     TxType = "governance"
	TxUtilityPayment TxType = "utility_payment"
)

// Tier is a coarse user progression label.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierExpert       Tier = "expert"
)
