package symrs

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	depthopt int
	noaltopt struct{}
)

// parsectx holds general data for parsing.
type parsectx struct {
	// maxdepth is the maximum nesting depth, or 0 for no limit.
	maxdepth int
	// noalt disables × and ÷ as operators.
	noalt bool
}

// MaxDepth limits how deeply expressions may nest. Each parenthesized group
// and exponent counts as a level. A limit of 0 means no limit, which is the
// default. Exceeding the limit is a *DepthError.
func MaxDepth(n int) ParseOption {
	if n < 0 {
		panic("symrs: negative max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// DisableAltOperators tells the parser not to accept × and ÷ as spellings of
// * and /.
func DisableAltOperators() ParseOption {
	return noaltopt{}
}

func (noaltopt) parseOption(p parsectx) parsectx {
	p.noalt = true
	return p
}
