// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compart

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// Region is the anatomical region tag of a section.
type Region int32

//go:generate stringer -type=Region -linecomment

var KiT_Region = kit.Enums.AddEnum(RegionsN, kit.NotBitFlag, nil)

func (ev Region) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Region) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	Soma Region = iota // soma
	Axon               // axon
	Dend               // dend
	Apic               // apic

	RegionsN
)

// ParseRegion returns the region with the given name.
func ParseRegion(s string) (Region, error) {
	var r Region
	if err := kit.SetEnumIfaceFromString(&r, s); err != nil || r >= RegionsN {
		return -1, fmt.Errorf("compart: unknown region %q", s)
	}
	return r, nil
}
