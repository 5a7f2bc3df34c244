package sheetgrid

import (
	"image/color"

	"github.com/olekukonko/ll"
)

// Options holds configuration for a Session.
type Options struct {
	config    Config
	rules     []ruleSpec
	listeners []SelectionListener
	logger    *ll.Logger
	debug     bool
	surface   Surface
}

type ruleSpec struct {
	condition string
	color     color.RGBA
}

func defaultOptions() *Options {
	return &Options{config: DefaultConfig()}
}

// Option configures a Session.
type Option func(*Options)

// WithConfig replaces the default viewport configuration.
func WithConfig(cfg Config) Option {
	return func(o *Options) { o.config = cfg }
}

// WithBackgroundRule adds a conditional background. Rules are tried in the order
// they were added; the first match wins. The condition is compiled by NewSession.
func WithBackgroundRule(condition string, c color.RGBA) Option {
	return func(o *Options) { o.rules = append(o.rules, ruleSpec{condition: condition, color: c}) }
}

// WithSelectionListener adds a listener notified on every selection change.
func WithSelectionListener(listener SelectionListener) Option {
	return func(o *Options) { o.listeners = append(o.listeners, listener) }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *ll.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// WithDebug enables debug logging (default: false).
func WithDebug(debug bool) Option {
	return func(o *Options) { o.debug = debug }
}

// WithSurface mounts a surface at creation time.
func WithSurface(s Surface) Option {
	return func(o *Options) { o.surface = s }
}
