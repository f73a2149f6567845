// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"sort"

	"github.com/bitmark-inc/assetledger/fault"
)

// Holdings - quantity held per asset identifier
//
// an absent identifier and one present with zero are equivalent;
// zero entries are pruned by Remove
type Holdings map[string]uint64

// Get - quantity held for an identifier
func (h Holdings) Get(id string) uint64 {
	return h[id]
}

// total the requested quantities per identifier
func aggregate(list []Asset) (map[string]uint64, error) {
	totals := make(map[string]uint64, len(list))
	for _, a := range list {
		t := totals[a.Id]
		if t+a.Amount < t {
			return nil, fault.ErrValueOverflow
		}
		totals[a.Id] = t + a.Amount
	}
	return totals, nil
}

// HasAssets - true if at least the listed quantity of every listed asset is held
//
// an empty list is always satisfied
func (h Holdings) HasAssets(list []Asset) bool {
	totals, err := aggregate(list)
	if nil != err {
		return false
	}
	for id, amount := range totals {
		if h[id] < amount {
			return false
		}
	}
	return true
}

// Add - credit all listed quantities
//
// fails without modification if any quantity would overflow
func (h Holdings) Add(list []Asset) error {
	totals, err := aggregate(list)
	if nil != err {
		return err
	}
	for id, amount := range totals {
		if h[id]+amount < h[id] {
			return fault.ErrValueOverflow
		}
	}
	for id, amount := range totals {
		if 0 == amount {
			continue
		}
		h[id] += amount
	}
	return nil
}

// Remove - debit all listed quantities
//
// fails without modification if any quantity is insufficient
func (h Holdings) Remove(list []Asset) error {
	if !h.HasAssets(list) {
		return fault.ErrInsufficientAssets
	}
	totals, _ := aggregate(list)
	for id, amount := range totals {
		if 0 == amount {
			continue
		}
		n := h[id] - amount
		if 0 == n {
			delete(h, id)
		} else {
			h[id] = n
		}
	}
	return nil
}

// Clone - an independent copy
func (h Holdings) Clone() Holdings {
	c := make(Holdings, len(h))
	for id, amount := range h {
		c[id] = amount
	}
	return c
}

// List - the non-zero holdings sorted by identifier
func (h Holdings) List() []Asset {
	list := make([]Asset, 0, len(h))
	for id, amount := range h {
		if 0 == amount {
			continue
		}
		list = append(list, Asset{Id: id, Amount: amount})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Id < list[j].Id
	})
	return list
}
