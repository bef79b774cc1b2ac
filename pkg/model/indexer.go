package model

// Indexer gives a unique index to a proposition (a pair of values of distinct attributes) and vice versa
type Indexer interface {
	// Returns the unique index in [0, Propositions) of the proposition stating that both values hold for the same house.
	// Exactly two values of distinct attributes must be given; their order is irrelevant
	Index(values ...Value) (uint64, error)
	// Returns the values of the proposition with the given index, in canonical attribute order
	Attributes(index uint64) (first Value, second Value, err error)
}

func NewIndexer() Indexer {
	blocks := make(map[[2]Attribute]uint64, len(attributePairs))
	for block, pair := range attributePairs {
		blocks[pair] = uint64(block)
	}
	return &indexerImplementation{blocks: blocks}
}

// attributePairs holds the 15 unordered attribute pairs in lexicographic order of the canonical rank. The k-th pair
// owns the block of indices [25k, 25k+25)
var attributePairs = pairsOf(AllAttributes)

// consistencyPairs holds the 10 unordered pairs of categorical attributes
var consistencyPairs = pairsOf(CategoricalAttributes)

func pairsOf(attributes []Attribute) [][2]Attribute {
	pairs := make([][2]Attribute, 0, len(attributes)*(len(attributes)-1)/2)
	for i := range len(attributes) - 1 {
		for j := i + 1; j < len(attributes); j++ {
			pairs = append(pairs, [2]Attribute{attributes[i], attributes[j]})
		}
	}
	return pairs
}

// Literal transforms a proposition index into a 1-based signed DIMACS literal
func Literal(index uint64, negated bool) int64 {
	if negated {
		return -int64(index + 1)
	}
	return int64(index + 1)
}

// Proposition transforms a DIMACS literal back into its proposition index
func Proposition(literal int64) uint64 {
	if literal < 0 {
		literal = -literal
	}
	return uint64(literal - 1)
}
