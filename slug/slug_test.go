package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trend-studio/slug"
)

func TestGenerate(t *testing.T) {
	cases := map[string]string{
		"iPhone 17: First Look!":    "iphone-17-first-look",
		"  Hello,   World  ":        "hello-world",
		"already-a-slug":            "already-a-slug",
		"Ünïcode & Symbols %% here": "ncode-symbols-here",
		"":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Generate(in), "input %q", in)
	}
}
