// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"math"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/edinar/staking/edinar"
	"github.com/edinar/staking/logdb"
	"github.com/edinar/staking/staking"
)

func mintAction(ctx *cli.Context) error {
	to, amount, err := parseAddressAndAmount(ctx)
	if err != nil {
		return err
	}
	return withPool(ctx, true, func(p *pool) (any, error) {
		if err := p.token.Mint(to, amount); err != nil {
			return nil, err
		}
		return newAccountView(p, to), nil
	})
}

func approveAction(ctx *cli.Context) error {
	owner, amount, err := parseAddressAndAmount(ctx)
	if err != nil {
		return err
	}
	return withPool(ctx, true, func(p *pool) (any, error) {
		if err := p.token.Approve(owner, p.cfg.Staking.Pool, amount); err != nil {
			return nil, err
		}
		return newAccountView(p, owner), nil
	})
}

func fundAction(ctx *cli.Context) error {
	from, amount, err := parseAddressAndAmount(ctx)
	if err != nil {
		return err
	}
	return withPool(ctx, true, func(p *pool) (any, error) {
		if err := p.ledger.FundRewards(from, amount); err != nil {
			return nil, err
		}
		return newPlatformView(p), nil
	})
}

func stakeAction(ctx *cli.Context) error {
	staker, amount, err := parseAddressAndAmount(ctx)
	if err != nil {
		return err
	}
	var referrer edinar.Address
	if s := ctx.String(referrerFlag.Name); s != "" {
		addr, err := edinar.ParseAddress(s)
		if err != nil {
			return errors.Wrapf(err, "invalid referrer %q", s)
		}
		referrer = *addr
	}
	return withPool(ctx, true, func(p *pool) (any, error) {
		if err := p.ledger.Stake(staker, amount, referrer); err != nil {
			return nil, err
		}
		return newAccountView(p, staker), nil
	})
}

func unstakeAction(ctx *cli.Context) error {
	staker, amount, err := parseAddressAndAmount(ctx)
	if err != nil {
		return err
	}
	return withPool(ctx, true, func(p *pool) (any, error) {
		if err := p.ledger.Unstake(staker, amount); err != nil {
			return nil, err
		}
		return newAccountView(p, staker), nil
	})
}

func claimAction(ctx *cli.Context) error {
	staker, err := parseAddressArg(ctx, 0)
	if err != nil {
		return err
	}
	return withPool(ctx, true, func(p *pool) (any, error) {
		paid, err := p.ledger.ClaimRewards(staker)
		if err != nil {
			if errors.Is(err, staking.ErrInsufficientReserve) {
				return nil, errors.Wrapf(err, "pool needs %v more in reserve",
					edinar.FormatUnits(p.ledger.ReserveShortfall()))
			}
			return nil, err
		}
		return &claimView{
			Address: staker.String(),
			Paid:    edinar.FormatUnits(paid),
		}, nil
	})
}

func balanceAction(ctx *cli.Context) error {
	addr, err := parseAddressArg(ctx, 0)
	if err != nil {
		return err
	}
	return withPool(ctx, false, func(p *pool) (any, error) {
		return newAccountView(p, addr), nil
	})
}

func statsAction(ctx *cli.Context) error {
	return withPool(ctx, false, func(p *pool) (any, error) {
		return newPlatformView(p), nil
	})
}

func tokenInfoAction(ctx *cli.Context) error {
	return withPool(ctx, false, func(p *pool) (any, error) {
		return &tokenInfoView{
			Name:        edinar.TokenName,
			Symbol:      edinar.TokenSymbol,
			Decimals:    edinar.Decimals,
			TotalSupply: edinar.FormatUnits(p.token.TotalSupply()),
			Pool:        p.cfg.Staking.Pool.String(),
			PoolBalance: edinar.FormatUnits(p.token.BalanceOf(p.cfg.Staking.Pool)),
		}, nil
	})
}

func referralsAction(ctx *cli.Context) error {
	addr, err := parseAddressArg(ctx, 0)
	if err != nil {
		return err
	}
	return withPool(ctx, false, func(p *pool) (any, error) {
		registered, err := p.logDB.Filter(context.Background(), &logdb.Filter{
			Account: &addr,
			Kinds:   []staking.EventKind{staking.EventReferralRegistered},
		})
		if err != nil {
			return nil, err
		}
		view := &referralsView{
			Address:         addr.String(),
			ReferralCount:   p.ledger.ReferralCount(addr),
			ReferralRewards: edinar.FormatUnits(p.ledger.ReferralRewards(addr)),
			Referees:        []string{},
		}
		for _, a := range registered {
			// the referrer is the account of a registration
			if a.Account == addr {
				view.Referees = append(view.Referees, a.Counterparty.String())
			}
		}
		return view, nil
	})
}

func historyAction(ctx *cli.Context) error {
	filter := &logdb.Filter{
		Order: logdb.ASC,
		Options: &logdb.Options{
			Offset: ctx.Uint64(offsetFlag.Name),
			Limit:  ctx.Uint64(limitFlag.Name),
		},
	}
	if ctx.NArg() > 0 {
		addr, err := parseAddressArg(ctx, 0)
		if err != nil {
			return err
		}
		filter.Account = &addr
	}
	for _, kind := range ctx.StringSlice(kindFlag.Name) {
		filter.Kinds = append(filter.Kinds, staking.EventKind(kind))
	}
	if ctx.IsSet(fromFlag.Name) || ctx.IsSet(toFlag.Name) {
		filter.Range = &logdb.Range{From: ctx.Uint64(fromFlag.Name), To: math.MaxInt64}
		if ctx.IsSet(toFlag.Name) {
			filter.Range.To = ctx.Uint64(toFlag.Name)
		}
	}
	if ctx.Bool(descFlag.Name) {
		filter.Order = logdb.DESC
	}

	return withPool(ctx, false, func(p *pool) (any, error) {
		activities, err := p.logDB.Filter(context.Background(), filter)
		if err != nil {
			return nil, err
		}
		views := make([]*activityView, 0, len(activities))
		for _, a := range activities {
			views = append(views, newActivityView(a))
		}
		return views, nil
	})
}
