package te

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/teflow/model"
)

// Variant selects one of the three formulations.
type Variant int

const (
	// MaxThroughput maximizes the total admitted flow.
	MaxThroughput Variant = iota

	// MinMLUWeighted minimizes MLU − total_flow / total_demand with demand as
	// an upper bound per pair.
	MinMLUWeighted

	// MinMLUConstrained minimizes MLU subject to every demand being met.
	MinMLUConstrained
)

// Variants lists every formulation in build order.
var Variants = []Variant{MaxThroughput, MinMLUWeighted, MinMLUConstrained}

// String returns the canonical variant name.
func (v Variant) String() string {
	switch v {
	case MaxThroughput:
		return "max-throughput"
	case MinMLUWeighted:
		return "min-mlu"
	case MinMLUConstrained:
		return "min-mlu-constrained"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant accepts the canonical names and the short forms
// "mt", "mlu" and "mlu-constrained".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max-throughput", "mt", "throughput":
		return MaxThroughput, nil
	case "min-mlu", "mlu", "mlu-weighted":
		return MinMLUWeighted, nil
	case "min-mlu-constrained", "mlu-constrained":
		return MinMLUConstrained, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

func (v Variant) valid() bool { return v >= MaxThroughput && v <= MinMLUConstrained }

// usesMLU reports whether the variant declares the MLU variable and the
// utilization rows.
func (v Variant) usesMLU() bool { return v == MinMLUWeighted || v == MinMLUConstrained }

// demandSense is ≥ for the constrained variant and ≤ otherwise.
func (v Variant) demandSense() model.Sense {
	if v == MinMLUConstrained {
		return model.GreaterEqual
	}

	return model.LessEqual
}
