package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRoundTrip(t *testing.T) {
	for _, b := range []byte{0x00, 0xff, 0x24, 0b10100101, 0b01011010} {
		s := StatusFromByte(b)
		assert.Equal(t, b, s.ToByte(), "round trip of 0x%02x", b)
	}
}

func TestStatusFlagPositions(t *testing.T) {
	assert.True(t, StatusFromByte(0x01).Carry)
	assert.True(t, StatusFromByte(0x02).Zero)
	assert.True(t, StatusFromByte(0x04).InterruptDisable)
	assert.True(t, StatusFromByte(0x08).Decimal)
	assert.True(t, StatusFromByte(0x10).Break)
	assert.True(t, StatusFromByte(0x20).Unused)
	assert.True(t, StatusFromByte(0x40).Overflow)
	assert.True(t, StatusFromByte(0x80).Negative)
}

func TestSetZN(t *testing.T) {
	c := &Cpu{}

	c.setZN(0x00)
	assert.True(t, c.P.Zero)
	assert.False(t, c.P.Negative)

	c.setZN(0x80)
	assert.False(t, c.P.Zero)
	assert.True(t, c.P.Negative)

	c.setZN(0x42)
	assert.False(t, c.P.Zero)
	assert.False(t, c.P.Negative)
}
