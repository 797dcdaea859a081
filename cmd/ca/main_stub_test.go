//go:build !ebiten

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubHintNamesHeadlessCommands(t *testing.T) {
	hint := stubHint()
	assert.Contains(t, hint, "-tags ebiten")
	for _, dir := range headless {
		assert.Contains(t, hint, dir)
		_, err := os.Stat("../../" + dir[2:])
		assert.NoError(t, err, "%s should exist", dir)
	}
}
