// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"math/big"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/logdb"
)

// Amounts are rendered as decimal token strings.

type accountView struct {
	Address         string `json:"address"`
	TokenBalance    string `json:"tokenBalance"`
	Allowance       string `json:"allowance"`
	StakedBalance   string `json:"stakedBalance"`
	PendingRewards  string `json:"pendingRewards"`
	Claimed         string `json:"claimed"`
	Referrer        string `json:"referrer,omitempty"`
	ReferralCount   uint64 `json:"referralCount"`
	ReferralRewards string `json:"referralRewards"`
}

func newAccountView(p *pool, addr edinar.Address) *accountView {
	v := &accountView{
		Address:         addr.String(),
		TokenBalance:    edinar.FormatUnits(p.token.BalanceOf(addr)),
		Allowance:       edinar.FormatUnits(p.token.Allowance(addr, p.cfg.Staking.Pool)),
		StakedBalance:   edinar.FormatUnits(p.ledger.StakedBalance(addr)),
		PendingRewards:  edinar.FormatUnits(p.ledger.PendingRewards(addr)),
		Claimed:         edinar.FormatUnits(new(big.Int)),
		ReferralCount:   p.ledger.ReferralCount(addr),
		ReferralRewards: edinar.FormatUnits(p.ledger.ReferralRewards(addr)),
	}
	if rec, ok := p.ledger.Staker(addr); ok {
		v.Claimed = edinar.FormatUnits(rec.Claimed)
		if !rec.Referrer.IsZero() {
			v.Referrer = rec.Referrer.String()
		}
	}
	return v
}

type platformView struct {
	TotalValueLocked  string `json:"totalValueLocked"`
	StakingAPY        uint64 `json:"stakingAPY"` // basis points
	StakingAPYPercent string `json:"stakingAPYPercent"`
	RewardRate        string `json:"rewardRate"` // per second per token, scaled by 1e18
	ActiveStakers     uint64 `json:"activeStakers"`
	RewardsReserve    string `json:"rewardsReserve"`
	TotalUnclaimed    string `json:"totalUnclaimed"`
	ReserveShortfall  string `json:"reserveShortfall"`
	ReferralBonus     string `json:"referralBonus"`
}

func newPlatformView(p *pool) *platformView {
	l := p.ledger
	return &platformView{
		TotalValueLocked:  edinar.FormatUnits(l.TotalValueLocked()),
		StakingAPY:        l.StakingAPY(),
		StakingAPYPercent: edinar.FormatBasisPoints(l.StakingAPY()),
		RewardRate:        l.RewardRate().String(),
		ActiveStakers:     l.ActiveStakers(),
		RewardsReserve:    edinar.FormatUnits(l.Reserve()),
		TotalUnclaimed:    edinar.FormatUnits(l.TotalUnclaimed()),
		ReserveShortfall:  edinar.FormatUnits(l.ReserveShortfall()),
		ReferralBonus:     edinar.FormatBasisPoints(l.ReferralBonus()),
	}
}

type tokenInfoView struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    int    `json:"decimals"`
	TotalSupply string `json:"totalSupply"`
	Pool        string `json:"pool"`
	PoolBalance string `json:"poolBalance"`
}

type claimView struct {
	Address string `json:"address"`
	Paid    string `json:"paid"`
}

type referralsView struct {
	Address         string   `json:"address"`
	ReferralCount   uint64   `json:"referralCount"`
	ReferralRewards string   `json:"referralRewards"`
	Referees        []string `json:"referees"`
}

type activityView struct {
	Seq          uint64 `json:"seq"`
	Kind         string `json:"kind"`
	Account      string `json:"account"`
	Counterparty string `json:"counterparty,omitempty"`
	Amount       string `json:"amount"`
	Time         uint64 `json:"time"`
}

func newActivityView(a *logdb.Activity) *activityView {
	v := &activityView{
		Seq:     a.Seq,
		Kind:    string(a.Kind),
		Account: a.Account.String(),
		Amount:  edinar.FormatUnits(a.Amount),
		Time:    a.Time,
	}
	if !a.Counterparty.IsZero() {
		v.Counterparty = a.Counterparty.String()
	}
	return v
}
