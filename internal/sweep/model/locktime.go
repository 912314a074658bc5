package model

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// ErrLockTimeDisabled is returned when a sequence value has relative lock-time disabled.
var ErrLockTimeDisabled = errors.New("relative lock-time is disabled")

// LockTimeUnit is the denomination of a relative lock-time.
type LockTimeUnit uint8

const (
	LockTimeUnitBlocks LockTimeUnit = iota
	LockTimeUnitIntervals
	LockTimeUnitDisabled
)

// LockTime is a BIP-68 relative lock-time, counted either in blocks or in
// 512 second intervals.
type LockTime struct {
	unit  LockTimeUnit
	value uint16
}

// LockTimeFromHeight returns a lock-time of n blocks.
func LockTimeFromHeight(n uint16) LockTime {
	return LockTime{unit: LockTimeUnitBlocks, value: n}
}

// LockTimeFrom512SecondIntervals returns a lock-time of n*512 seconds.
func LockTimeFrom512SecondIntervals(n uint16) LockTime {
	return LockTime{unit: LockTimeUnitIntervals, value: n}
}

// LockTimeDisabled returns the lock-time of an input whose sequence has the
// BIP-68 disable flag set. It is never satisfied in blocks.
func LockTimeDisabled() LockTime {
	return LockTime{unit: LockTimeUnitDisabled}
}

// LockTimeFromSequence decodes the relative lock-time carried in an input sequence.
func LockTimeFromSequence(sequence uint32) (LockTime, error) {
	if sequence&wire.SequenceLockTimeDisabled != 0 {
		return LockTime{}, fmt.Errorf("sequence %#x: %w", sequence, ErrLockTimeDisabled)
	}
	value := uint16(sequence & wire.SequenceLockTimeMask)
	if sequence&wire.SequenceLockTimeIsSeconds != 0 {
		return LockTimeFrom512SecondIntervals(value), nil
	}
	return LockTimeFromHeight(value), nil
}

// Sequence encodes the lock-time as an input sequence value.
func (l LockTime) Sequence() uint32 {
	if l.unit == LockTimeUnitDisabled {
		return wire.SequenceLockTimeDisabled
	}
	sequence := uint32(l.value)
	if l.unit == LockTimeUnitIntervals {
		sequence |= wire.SequenceLockTimeIsSeconds
	}
	return sequence
}

// Unit reports how the lock-time is denominated.
func (l LockTime) Unit() LockTimeUnit {
	return l.unit
}

// Blocks returns the lock-time in blocks. ok is false for time based and disabled
// lock-times.
func (l LockTime) Blocks() (blocks uint16, ok bool) {
	if l.unit != LockTimeUnitBlocks {
		return 0, false
	}
	return l.value, true
}

func (l LockTime) String() string {
	switch l.unit {
	case LockTimeUnitIntervals:
		return fmt.Sprintf("%d×512s", l.value)
	case LockTimeUnitDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("%d blocks", l.value)
	}
}
