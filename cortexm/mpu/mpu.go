// Package mpu describes the ARMv7-M Memory Protection Unit of the Cortex-M7.
//
// The register definitions in registers_gen.go are generated from
// defs/mpu.svd. This file adds region programming on top of them.
package mpu

//go:generate go run omibyte.io/coresight/cmd/regmap generate --output ../.. MPU

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrRegionSize    = errors.New("region size cannot be encoded")
	ErrRegionAddress = errors.New("region base address is not aligned to its size")
	ErrRegion        = errors.New("region number out of range")
)

// Bytes returns the size of a region of size s.
func (s RegionSize) Bytes() uint32 {
	return 1 << (s + 1)
}

// RegionSizeFor returns the encoding of a region of n bytes. n must be a power
// of two between 16 bytes and 64KB.
func RegionSizeFor(n uint32) (RegionSize, error) {
	if n == 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: %d is not a power of two", ErrRegionSize, n)
	}
	s := RegionSize(bits.TrailingZeros32(n) - 1)
	if s < RegionSize16Bytes || s > RegionSize64KB {
		return 0, fmt.Errorf("%w: %d", ErrRegionSize, n)
	}
	return s, nil
}

// RegionConfig describes the programming of one MPU region.
type RegionConfig struct {
	Number     uint8
	Address    uint32
	Size       RegionSize
	Permission Permission
	// Subregions has a bit set for every disabled eighth of the region.
	Subregions   uint8
	TEX          uint8
	Cacheable    bool
	Bufferable   bool
	Shareable    bool
	ExecuteNever bool
}

// Attributes returns the RASR value of the region, enabled.
func (c RegionConfig) Attributes() RASR {
	var rasr RASR
	rasr.SetENABLE(true)
	rasr.SetSIZE(c.Size)
	rasr.SetSRD(c.Subregions)
	rasr.SetB(c.Bufferable)
	rasr.SetC(c.Cacheable)
	rasr.SetS(c.Shareable)
	rasr.SetTEX(c.TEX)
	rasr.SetAP(c.Permission)
	rasr.SetXN(c.ExecuteNever)
	return rasr
}

// Configure programs a region through RNR, RBAR and RASR. The MPU should be
// disabled while its regions change.
func (r *Registers) Configure(c RegionConfig) error {
	typ, err := r.TYPE.Load()
	if err != nil {
		return err
	}
	if c.Number >= uint8(typ.GetDREGION()) {
		return fmt.Errorf("%w: %d of %d", ErrRegion, c.Number, typ.GetDREGION())
	}
	if c.Size < RegionSize16Bytes || c.Size > RegionSize64KB {
		return fmt.Errorf("%w: SIZE %d", ErrRegionSize, c.Size)
	}
	// RBAR holds the address from bit 5 up, below 32 bytes alignment is
	// not enough
	if c.Address&(c.Size.Bytes()-1) != 0 || c.Address&^RBAR_ADDR_Msk != 0 {
		return fmt.Errorf("%w: %#08x, %d bytes", ErrRegionAddress, c.Address, c.Size.Bytes())
	}

	var rnr RNR
	rnr.SetREGION(Region(c.Number))
	if err = r.RNR.Store(rnr); err != nil {
		return err
	}

	var rbar RBAR
	rbar.SetADDR(c.Address >> RBAR_ADDR_Pos)
	if err = r.RBAR.Store(rbar); err != nil {
		return err
	}
	return r.RASR.Store(c.Attributes())
}

// Clear disables a region.
func (r *Registers) Clear(region uint8) error {
	var rnr RNR
	rnr.SetREGION(Region(region))
	if err := r.RNR.Store(rnr); err != nil {
		return err
	}
	return r.RASR.Store(0)
}

// Enable turns the MPU on. With privilegedDefault set, privileged accesses
// that match no region use the default memory map.
func (r *Registers) Enable(privilegedDefault bool) error {
	var ctrl CTRL
	ctrl.SetENABLE(true)
	ctrl.SetPRIVDEFENA(privilegedDefault)
	return r.CTRL.Store(ctrl)
}

// Disable turns the MPU off.
func (r *Registers) Disable() error {
	return r.CTRL.Store(0)
}
