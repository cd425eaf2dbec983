package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToInt(t *testing.T) {
	assert.Equal(t, 42, StringToInt("42"))
	assert.Equal(t, -3, StringToInt("-3"))
	assert.Equal(t, 0, StringToInt(""))
	assert.Equal(t, 0, StringToInt("nope"))
}

func TestStringToUint(t *testing.T) {
	if got := StringToUint("5"); assert.NotNil(t, got) {
		assert.Equal(t, uint(5), *got)
	}
	assert.Nil(t, StringToUint(""))
	assert.Nil(t, StringToUint("0"))
	assert.Nil(t, StringToUint("-2"))
	assert.Nil(t, StringToUint("abc"))
}

func TestUintToString(t *testing.T) {
	assert.Equal(t, "0", UintToString(0))
	assert.Equal(t, "123", UintToString(123))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.3, Round1(4.25))
	assert.Equal(t, 4.2, Round1(4.24))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, 5.0, Round1(4.96))
}
