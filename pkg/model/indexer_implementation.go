package model

import "fmt"

type indexerImplementation struct {
	blocks map[[2]Attribute]uint64
}

func (indexer *indexerImplementation) Index(values ...Value) (uint64, error) {
	if len(values) != 2 {
		return 0, fmt.Errorf("%w: expected exactly two values but got %d", ErrInvalidSelector, len(values))
	}
	first, second := values[0], values[1]

	for _, value := range values {
		if !inDomain(value) {
			return 0, fmt.Errorf("%w: value %v is outside its domain", ErrInvalidSelector, value)
		}
	}
	if first.Attribute() == second.Attribute() {
		return 0, fmt.Errorf("%w: %v and %v belong to the same attribute", ErrInvalidSelector, Operand(first), Operand(second))
	}

	// Sort operands into canonical order so that Index(x, y) == Index(y, x)
	if first.Attribute() > second.Attribute() {
		first, second = second, first
	}

	block := indexer.blocks[[2]Attribute{first.Attribute(), second.Attribute()}]
	return block*Size*Size + first.Index()*Size + second.Index(), nil
}

func (indexer *indexerImplementation) Attributes(index uint64) (first Value, second Value, err error) {
	if index >= Propositions {
		return nil, nil, fmt.Errorf("%w: %d is not in [0, %d)", ErrDecodeRange, index, Propositions)
	}

	block, offset := index/(Size*Size), index%(Size*Size)
	pair := attributePairs[block]

	return newValue(pair[0], offset/Size), newValue(pair[1], offset%Size), nil
}
