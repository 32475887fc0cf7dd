package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_lcs_similarity/internal/pool"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// OptimizedNormalizer implements the same normalization contract as
// DefaultNormalizer with a precomputed ASCII decision table and buffer
// pooling to reduce allocations on hot paths.
type OptimizedNormalizer struct {
	// Decision per ASCII byte:
	// 0 = keep as is
	// 1 = replace with a single space
	// 2 = convert to lowercase
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewOptimizedNormalizer creates a new optimized normalizer.
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		bytePool: pool.NewBufferPool(8192),
	}

	for i := 0; i < 128; i++ {
		b := byte(i)
		switch {
		case b >= 'a' && b <= 'z', b >= '0' && b <= '9':
			n.asciiTable[i] = 0
		case b >= 'A' && b <= 'Z':
			n.asciiTable[i] = 2
		default:
			// Punctuation, whitespace and control bytes all map to a space.
			n.asciiTable[i] = 1
		}
	}

	return n
}

// Normalize reduces text to the comparison alphabet, collapsing space runs
// and trimming the ends in a single pass.
func (n *OptimizedNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0]

	lastWasSpace := true // drops leading spaces
	for _, r := range text {
		if r < 128 {
			switch n.asciiTable[r] {
			case 0:
				*buffer = append(*buffer, byte(r))
				lastWasSpace = false
			case 1:
				if !lastWasSpace {
					*buffer = append(*buffer, ' ')
					lastWasSpace = true
				}
			case 2:
				*buffer = append(*buffer, byte(r)+('a'-'A'))
				lastWasSpace = false
			}
			continue
		}

		// Case-fold before the domain check: a few non-ASCII runes lower
		// into the comparison alphabet (U+212A KELVIN SIGN -> 'k',
		// U+0130 LATIN CAPITAL I WITH DOT -> 'i').
		lr := unicode.ToLower(r)
		switch {
		case lr >= 0x4e00 && lr <= 0x9fff:
			*buffer = append(*buffer, string(lr)...)
			lastWasSpace = false
		case lr < 128 && n.asciiTable[lr] == 0:
			*buffer = append(*buffer, byte(lr))
			lastWasSpace = false
		default:
			if !lastWasSpace {
				*buffer = append(*buffer, ' ')
				lastWasSpace = true
			}
		}
	}

	// Trim the single trailing space a final space run leaves behind.
	if l := len(*buffer); l > 0 && (*buffer)[l-1] == ' ' {
		*buffer = (*buffer)[:l-1]
	}

	return string(*buffer)
}

// NormalizerFactory creates the appropriate normalizer based on performance requirements.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects the normalizer implementation.
type NormalizerType int

const (
	// DefaultNormalizerType is the straightforward rune-at-a-time normalizer.
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType uses buffer pooling and an ASCII decision table.
	OptimizedNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
