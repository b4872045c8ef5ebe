package economy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/economy"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

var settleEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

func newOrg(t *testing.T) *economy.Organization {
	t.Helper()
	org, err := economy.NewOrganization("org-1", "Frontier Resources", settleEpoch)
	require.NoError(t, err)
	return org
}

func TestSettle_OneMonthOneTeam(t *testing.T) {
	// Arrange
	org := newOrg(t)
	oneMonth := settleEpoch.Add(time.Duration(economy.MonthSeconds) * time.Second)

	// Act
	org.Settle(oneMonth, 1)

	// Assert - income minus one team's upkeep, points for 30/7 weeks
	assert.InDelta(t, 8.5e8, org.BalanceUSD, 1e-3)
	assert.InDelta(t, 30.0/7.0*economy.PointsPerTeamWeek, org.ResearchPoints, 1e-9)
	assert.Equal(t, oneMonth, org.LastSettledAt)
}

func TestSettle_IsIdempotentAtSameInstant(t *testing.T) {
	// Arrange
	org := newOrg(t)
	oneMonth := settleEpoch.Add(time.Duration(economy.MonthSeconds) * time.Second)
	org.Settle(oneMonth, 1)
	balance, points := org.BalanceUSD, org.ResearchPoints

	// Act - settling again with no elapsed time
	org.Settle(oneMonth, 1)

	// Assert
	assert.Equal(t, balance, org.BalanceUSD)
	assert.Equal(t, points, org.ResearchPoints)
}

func TestSettle_IgnoresBackwardTime(t *testing.T) {
	org := newOrg(t)
	org.Settle(settleEpoch.Add(-time.Hour), 3)

	assert.Equal(t, 0.0, org.BalanceUSD)
	assert.Equal(t, settleEpoch, org.LastSettledAt)
}

func TestSettle_SplitSettlementMatchesSingle(t *testing.T) {
	// Arrange - identical orgs, one settled twice, one once
	split := newOrg(t)
	whole := newOrg(t)
	mid := settleEpoch.Add(10 * 86400 * time.Second)
	end := settleEpoch.Add(30 * 86400 * time.Second)

	// Act
	split.Settle(mid, 2)
	split.Settle(end, 2)
	whole.Settle(end, 2)

	// Assert - settlement is additive over intervals
	assert.InDelta(t, whole.BalanceUSD, split.BalanceUSD, 1e-6)
	assert.InDelta(t, whole.ResearchPoints, split.ResearchPoints, 1e-9)
}

func TestDebitBalance_GuardsOverdraft(t *testing.T) {
	org := newOrg(t)
	org.BalanceUSD = 100

	require.NoError(t, org.DebitBalance(60))
	assert.Equal(t, 40.0, org.BalanceUSD)

	err := org.DebitBalance(60)
	var fundsErr *shared.InsufficientFundsError
	assert.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, 40.0, org.BalanceUSD)
}

func TestDebitPoints_GuardsOverdraw(t *testing.T) {
	org := newOrg(t)
	org.ResearchPoints = 10

	require.NoError(t, org.DebitPoints(10))

	err := org.DebitPoints(0.1)
	var pointsErr *shared.InsufficientPointsError
	assert.ErrorAs(t, err, &pointsErr)
}

func TestCalculateBoostCost(t *testing.T) {
	assert.Equal(t, 1e8, economy.CalculateBoostCost(0))
	assert.Equal(t, 1e8+5e3*2200, economy.CalculateBoostCost(2200))
}
