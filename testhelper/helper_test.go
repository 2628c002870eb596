package testhelper

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTrimIndent(t *testing.T) {
	src := TrimIndent(t, `
		<template>
			<div></div>
		</template>`)
	assert.Equal(t, "<template>\n\t<div></div>\n</template>", src)

	assert.Equal(t, "<a></a>", TrimIndent(t, "<a></a>"))
}

func TestNumbered(t *testing.T) {
	assert.Equal(t, "\n  1| <a>\n  2| →<b></b>\n", Numbered("<a>\n\t<b></b>"))
}
