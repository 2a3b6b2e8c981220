package matroska

// options collects the functional options accepted by Decode.
type options struct {
	maxDepth        int
	strictDuplicate bool
}

// Option configures a single Decode call.
type Option func(*options)

func defaultOptions() options {
	return options{
		maxDepth:        64,
		strictDuplicate: true,
	}
}

// WithMaxDepth bounds the recursion depth Decode will follow into
// self-recursive masters such as ChapterAtom. Decode fails rather than
// recursing past n levels.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithStrictDuplicates controls whether a duplicate singleton child
// aborts the decode (the default) or is tolerated by keeping the
// first occurrence and discarding the rest. Real-world muxers
// occasionally emit duplicates; this is never enabled by default.
func WithStrictDuplicates(strict bool) Option {
	return func(o *options) { o.strictDuplicate = strict }
}
