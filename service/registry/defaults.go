package registry

import (
	"github.com/viant/repline/model/interpreter"
)

// defaultInterpreters returns the built-in interpreter table. Prompt
// patterns are anchored so a prompt only counts at the start of a line.
func defaultInterpreters() map[string]*interpreter.Descriptor {
	return map[string]*interpreter.Descriptor{
		"python": {
			Bin:    "python3",
			Prompt: `^(>>>|\.\.\.) `,
			Env:    "PYTHONIOENCODING=utf-8",
		},
		"javascript": {
			Bin:    "node",
			Prompt: `^(>|\.\.\.+) `,
			Env:    "NODE_DISABLE_COLORS=1",
		},
		"coffee": {
			Bin:    "coffee",
			Prompt: `^coffee> `,
			Env:    "NODE_DISABLE_COLORS=1",
			Deps:   []string{"node"},
		},
		"ruby": {
			Bin:    "irb",
			Prompt: `^irb[^>]*> `,
		},
		"haskell": {
			Bin:    "ghci",
			Prompt: `^(Prelude|ghci)[^>]*> `,
		},
		"lua": {
			Bin:    "lua",
			Prompt: `^> `,
		},
		"r": {
			Bin:    "R --no-save",
			Prompt: `^> `,
			Preprocess: &interpreter.HookRef{
				Name: "stripPattern",
				With: map[string]interface{}{"pattern": `^(R version|Copyright|Platform|Type) `},
			},
		},
		"julia": {
			Bin:    "julia",
			Prompt: `^julia> `,
		},
		"ocaml": {
			Bin:    "ocaml",
			Prompt: `^# `,
		},
		"php": {
			Bin:    "php -a",
			Prompt: `^php > `,
		},
		"elixir": {
			Bin:    "iex",
			Prompt: `^iex\(\d+\)> `,
			Deps:   []string{"elixir"},
		},
	}
}

// defaultAliases maps common compound or alternate filetypes onto the
// canonical registry keys.
func defaultAliases() map[string]string {
	return map[string]string{
		"javascript.jsx": "javascript",
		"python.django":  "python",
		"rmd":            "r",
	}
}
