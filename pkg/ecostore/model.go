package ecostore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/ecochain/ecochain-api/pkg/ecochain"
)

// UserDao maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel     `bun:"table:users,alias:u"`
	ID                uuid.UUID       `bun:"id,pk,type:uuid"`
	WalletAddress     string          `bun:"wallet_address,notnull,type:varchar(128)"`
	Email             *string         `bun:"email,type:varchar(255)"`
	Username          *string         `bun:"username,type:varchar(64)"`
	EcoTokenBalance   decimal.Decimal `bun:"eco_token_balance,notnull,type:numeric(38,18)"`
	StakedTokens      decimal.Decimal `bun:"staked_tokens,notnull,type:numeric(38,18)"`
	StakingRewards    decimal.Decimal `bun:"staking_rewards,notnull,type:numeric(38,18)"`
	TotalEcoActions   int64           `bun:"total_eco_actions,notnull"`
	TotalCarbonOffset decimal.Decimal `bun:"total_carbon_offset,notnull,type:numeric(38,18)"`
	EcoScore          float64         `bun:"eco_score,notnull"`
	JoinedAt          time.Time       `bun:"joined_at,notnull"`
	LastActive        time.Time       `bun:"last_active,notnull"`
	Tier              string          `bun:"tier,notnull,type:varchar(16)"`
	Achievements      []string        `bun:"achievements,array"`
}

func toUserDao(u *ecochain.User) *UserDao {
	dao := &UserDao{
		ID:                u.ID,
		WalletAddress:     u.WalletAddress,
		EcoTokenBalance:   u.EcoTokenBalance,
		StakedTokens:      u.StakedTokens,
		StakingRewards:    u.StakingRewards,
		TotalEcoActions:   u.TotalEcoActions,
		TotalCarbonOffset: u.TotalCarbonOffset,
		EcoScore:          u.EcoScore,
		JoinedAt:          u.JoinedAt,
		LastActive:        u.LastActive,
		Tier:              string(u.Tier),
		Achievements:      u.Achievements,
	}
	if u.Email != "" {
		dao.Email = &u.Email
	}
	if u.Username != "" {
		dao.Username = &u.Username
	}
	if dao.LastActive.IsZero() {
		dao.LastActive = dao.JoinedAt
	}
	if dao.Achievements == nil {
		dao.Achievements = []string{}
	}
	return dao
}

func toUser(dao *UserDao) *ecochain.User {
	u := &ecochain.User{
		ID:                dao.ID,
		WalletAddress:     dao.WalletAddress,
		EcoTokenBalance:   dao.EcoTokenBalance,
		StakedTokens:      dao.StakedTokens,
		StakingRewards:    dao.StakingRewards,
		TotalEcoActions:   dao.TotalEcoActions,
		TotalCarbonOffset: dao.TotalCarbonOffset,
		EcoScore:          dao.EcoScore,
		JoinedAt:          dao.JoinedAt,
		LastActive:        dao.LastActive,
		Tier:              ecochain.Tier(dao.Tier),
		Achievements:      dao.Achievements,
	}
	if dao.Email != nil {
		u.Email = *dao.Email
	}
	if dao.Username != nil {
		u.Username = *dao.Username
	}
	if u.Achievements == nil {
		u.Achievements = []string{}
	}
	return u
}

// EcoActionDao maps directly to the 'eco_actions' table in PostgreSQL.
type EcoActionDao struct {
	bun.BaseModel      `bun:"table:eco_actions,alias:ea"`
	ID                 uuid.UUID            `bun:"id,pk,type:uuid"`
	UserID             uuid.UUID            `bun:"user_id,notnull,type:uuid"`
	WalletAddress      string               `bun:"wallet_address,notnull,type:varchar(128)"`
	ActionType         string               `bun:"action_type,notnull,type:varchar(16)"`
	Description        string               `bun:"description,notnull,type:text"`
	EcoReward          decimal.Decimal      `bun:"eco_reward,notnull,type:numeric(38,18)"`
	CarbonOffset       decimal.Decimal      `bun:"carbon_offset,notnull,type:numeric(38,18)"`
	VerificationMethod string               `bun:"verification_method,notnull,type:varchar(128)"`
	Status             string               `bun:"status,notnull,type:varchar(16)"`
	AIAnalysis         *ecochain.AIAnalysis `bun:"ai_analysis,type:jsonb"`
	Timestamp          time.Time            `bun:"timestamp,notnull"`
	VerifiedAt         *time.Time           `bun:"verified_at"`
	TransactionHash    *string              `bun:"transaction_hash,type:varchar(128)"`
}

func toEcoActionDao(a *ecochain.EcoAction) *EcoActionDao {
	dao := &EcoActionDao{
		ID:                 a.ID,
		UserID:             a.UserID,
		WalletAddress:      a.WalletAddress,
		ActionType:         string(a.ActionType),
		Description:        a.Description,
		EcoReward:          a.EcoReward,
		CarbonOffset:       a.CarbonOffset,
		VerificationMethod: a.VerificationMethod,
		Status:             string(a.Status),
		AIAnalysis:         a.AIAnalysis,
		Timestamp:          a.Timestamp,
		VerifiedAt:         a.VerifiedAt,
	}
	if a.TransactionHash != "" {
		dao.TransactionHash = &a.TransactionHash
	}
	return dao
}

func toEcoAction(dao *EcoActionDao) *ecochain.EcoAction {
	a := &ecochain.EcoAction{
		ID:                 dao.ID,
		UserID:             dao.UserID,
		WalletAddress:      dao.WalletAddress,
		ActionType:         ecochain.ActionType(dao.ActionType),
		Description:        dao.Description,
		EcoReward:          dao.EcoReward,
		CarbonOffset:       dao.CarbonOffset,
		VerificationMethod: dao.VerificationMethod,
		Status:             ecochain.ActionStatus(dao.Status),
		AIAnalysis:         dao.AIAnalysis,
		Timestamp:          dao.Timestamp,
		VerifiedAt:         dao.VerifiedAt,
	}
	if dao.TransactionHash != nil {
		a.TransactionHash = *dao.TransactionHash
	}
	return a
}

// ProposalDao maps directly to the 'governance_proposals' table in PostgreSQL.
// Votes are kept as an append-only JSONB array.
type ProposalDao struct {
	bun.BaseModel   `bun:"table:governance_proposals,alias:gp"`
	ID              uuid.UUID       `bun:"id,pk,type:uuid"`
	Title           string          `bun:"title,notnull,type:varchar(255)"`
	Description     string          `bun:"description,notnull,type:text"`
	Proposer        string          `bun:"proposer,notnull,type:varchar(128)"`
	ProposerAddress string          `bun:"proposer_address,notnull,type:varchar(128)"`
	Status          string          `bun:"status,notnull,type:varchar(16)"`
	VotesFor        decimal.Decimal `bun:"votes_for,notnull,type:numeric(38,18)"`
	VotesAgainst    decimal.Decimal `bun:"votes_against,notnull,type:numeric(38,18)"`
	Quorum          decimal.Decimal `bun:"quorum,notnull,type:numeric(38,18)"`
	StartDate       time.Time       `bun:"start_date,notnull"`
	EndDate         time.Time       `bun:"end_date,notnull"`
	CreatedAt       time.Time       `bun:"created_at,notnull"`
	Votes           []ecochain.Vote `bun:"votes,notnull,type:jsonb"`
}

func toProposalDao(p *ecochain.GovernanceProposal) *ProposalDao {
	dao := &ProposalDao{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Proposer:        p.Proposer,
		ProposerAddress: p.ProposerAddress,
		Status:          string(p.Status),
		VotesFor:        p.VotesFor,
		VotesAgainst:    p.VotesAgainst,
		Quorum:          p.Quorum,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		CreatedAt:       p.CreatedAt,
		Votes:           p.Votes,
	}
	if dao.Votes == nil {
		dao.Votes = []ecochain.Vote{}
	}
	return dao
}

func toProposal(dao *ProposalDao) *ecochain.GovernanceProposal {
	p := &ecochain.GovernanceProposal{
		ID:              dao.ID,
		Title:           dao.Title,
		Description:     dao.Description,
		Proposer:        dao.Proposer,
		ProposerAddress: dao.ProposerAddress,
		Status:          ecochain.ProposalStatus(dao.Status),
		VotesFor:        dao.VotesFor,
		VotesAgainst:    dao.VotesAgainst,
		Quorum:          dao.Quorum,
		StartDate:       dao.StartDate,
		EndDate:         dao.EndDate,
		CreatedAt:       dao.CreatedAt,
		Votes:           dao.Votes,
	}
	if p.Votes == nil {
		p.Votes = []ecochain.Vote{}
	}
	return p
}

// TransactionDao maps directly to the 'transactions' table in PostgreSQL.
type TransactionDao struct {
	bun.BaseModel   `bun:"table:transactions,alias:tx"`
	ID              uuid.UUID       `bun:"id,pk,type:uuid"`
	TransactionHash string          `bun:"transaction_hash,notnull,type:varchar(128)"`
	FromAddress     string          `bun:"from_address,notnull,type:varchar(128)"`
	ToAddress       string          `bun:"to_address,notnull,type:varchar(128)"`
	Amount          decimal.Decimal `bun:"amount,notnull,type:numeric(38,18)"`
	Type            string          `bun:"type,notnull,type:varchar(32)"`
	Status          string          `bun:"status,notnull,type:varchar(16)"`
	BlockNumber     *int64          `bun:"block_number"`
	GasUsed         *int64          `bun:"gas_used"`
	Timestamp       time.Time       `bun:"timestamp,notnull"`
	Metadata        map[string]any  `bun:"metadata,type:jsonb"`
}

func toTransactionDao(t *ecochain.Transaction) *TransactionDao {
	return &TransactionDao{
		ID:              t.ID,
		TransactionHash: t.TransactionHash,
		FromAddress:     t.FromAddress,
		ToAddress:       t.ToAddress,
		Amount:          t.Amount,
		Type:            string(t.Type),
		Status:          string(t.Status),
		BlockNumber:     t.BlockNumber,
		GasUsed:         t.GasUsed,
		Timestamp:       t.Timestamp,
		Metadata:        t.Metadata,
	}
}

func toTransaction(dao *TransactionDao) *ecochain.Transaction {
	return &ecochain.Transaction{
		ID:              dao.ID,
		TransactionHash: dao.TransactionHash,
		FromAddress:     dao.FromAddress,
		ToAddress:       dao.ToAddress,
		Amount:          dao.Amount,
		Type:            ecochain.TxType(dao.Type),
		Status:          ecochain.TxStatus(dao.Status),
		BlockNumber:     dao.BlockNumber,
		GasUsed:         dao.GasUsed,
		Timestamp:       dao.Timestamp,
		Metadata:        dao.Metadata,
	}
}

// StakingRecordDao maps directly to the 'staking_records' table in PostgreSQL.
type StakingRecordDao struct {
	bun.BaseModel   `bun:"table:staking_records,alias:sr"`
	ID              uuid.UUID       `bun:"id,pk,type:uuid"`
	UserAddress     string          `bun:"user_address,notnull,type:varchar(128)"`
	Amount          decimal.Decimal `bun:"amount,notnull,type:numeric(38,18)"`
	StakingPeriod   int             `bun:"staking_period,notnull"`
	StartDate       time.Time       `bun:"start_date,notnull"`
	EndDate         time.Time       `bun:"end_date,notnull"`
	Status          string          `bun:"status,notnull,type:varchar(16)"`
	RewardsEarned   decimal.Decimal `bun:"rewards_earned,notnull,type:numeric(38,18)"`
	TransactionHash string          `bun:"transaction_hash,notnull,type:varchar(128)"`
}

func toStakingRecordDao(s *ecochain.StakingRecord) *StakingRecordDao {
	return &StakingRecordDao{
		ID:              s.ID,
		UserAddress:     s.UserAddress,
		Amount:          s.Amount,
		StakingPeriod:   s.StakingPeriod,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		Status:          string(s.Status),
		RewardsEarned:   s.RewardsEarned,
		TransactionHash: s.TransactionHash,
	}
}

func toStakingRecord(dao *StakingRecordDao) *ecochain.StakingRecord {
	return &ecochain.StakingRecord{
		ID:              dao.ID,
		UserAddress:     dao.UserAddress,
		Amount:          dao.Amount,
		StakingPeriod:   dao.StakingPeriod,
		StartDate:       dao.StartDate,
		EndDate:         dao.EndDate,
		Status:          ecochain.StakingStatus(dao.Status),
		RewardsEarned:   dao.RewardsEarned,
		TransactionHash: dao.TransactionHash,
	}
}

// PlatformStatsDao maps directly to the 'platform_stats' table in PostgreSQL.
type PlatformStatsDao struct {
	bun.BaseModel           `bun:"table:platform_stats,alias:ps"`
	ID                      uuid.UUID       `bun:"id,pk,type:uuid"`
	Date                    time.Time       `bun:"date,notnull,type:date"`
	TotalUsers              int64           `bun:"total_users,notnull"`
	ActiveUsers             int64           `bun:"active_users,notnull"`
	TotalEcoActions         int64           `bun:"total_eco_actions,notnull"`
	TotalCarbonOffset       decimal.Decimal `bun:"total_carbon_offset,notnull,type:numeric(38,18)"`
	EcoTokensDistributed    decimal.Decimal `bun:"eco_tokens_distributed,notnull,type:numeric(38,18)"`
	TotalStaked             decimal.Decimal `bun:"total_staked,notnull,type:numeric(38,18)"`
	GovernanceParticipation float64         `bun:"governance_participation,notnull"`
	UtilityPaymentsVolume   decimal.Decimal `bun:"utility_payments_volume,notnull,type:numeric(38,18)"`
}

func toPlatformStatsDao(s *ecochain.PlatformStats) *PlatformStatsDao {
	return &PlatformStatsDao{
		ID:                      s.ID,
		Date:                    ecochain.SnapshotDate(s.Date),
		TotalUsers:              s.TotalUsers,
		ActiveUsers:             s.ActiveUsers,
		TotalEcoActions:         s.TotalEcoActions,
		TotalCarbonOffset:       s.TotalCarbonOffset,
		EcoTokensDistributed:    s.EcoTokensDistributed,
		TotalStaked:             s.TotalStaked,
		GovernanceParticipation: s.GovernanceParticipation,
		UtilityPaymentsVolume:   s.UtilityPaymentsVolume,
	}
}

func toPlatformStats(dao *PlatformStatsDao) *ecochain.PlatformStats {
	return &ecochain.PlatformStats{
		ID:                      dao.ID,
		Date:                    ecochain.SnapshotDate(dao.Date),
		TotalUsers:              dao.TotalUsers,
		ActiveUsers:             dao.ActiveUsers,
		TotalEcoActions:         dao.TotalEcoActions,
		TotalCarbonOffset:       dao.TotalCarbonOffset,
		EcoTokensDistributed:    dao.EcoTokensDistributed,
		TotalStaked:             dao.TotalStaked,
		GovernanceParticipation: dao.GovernanceParticipation,
		UtilityPaymentsVolume:   dao.UtilityPaymentsVolume,
	}
}

// Models lists every table model in creation order.
func Models() []any {
	return []any{
		(*UserDao)(nil),
		(*EcoActionDao)(nil),
		(*ProposalDao)(nil),
		(*TransactionDao)(nil),
		(*StakingRecordDao)(nil),
		(*PlatformStatsDao)(nil),
	}
}
