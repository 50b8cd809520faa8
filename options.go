package scripta

import "github.com/tsawler/scripta/inline"

type renderOptions struct {
	autolinks  bool
	linkTarget string
	linkRel    string
}

func defaultOptions() *renderOptions {
	return &renderOptions{
		autolinks:  true,
		linkTarget: "_blank",
		linkRel:    "noopener noreferrer",
	}
}

func (o *renderOptions) clone() *renderOptions {
	clone := *o
	return &clone
}

func (o *renderOptions) inline() inline.Options {
	return inline.Options{
		DisableAutolinks: !o.autolinks,
		LinkTarget:       o.linkTarget,
		LinkRel:          o.linkRel,
	}
}
