package te

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/ksp"
)

// Variable and constraint names. One function per family; every variant
// uses the same functions so labels never drift between formulations.

// Fixed names of the scalar variables and the flow-definition row.
const (
	MLUName       = "mlu"
	TotalFlowName = "total_flow"
	FlowRowName   = "def_total_flow"
)

// EdgeVarName names the aggregate variable of a canonical link.
func EdgeVarName(k core.LinkKey) string { return fmt.Sprintf("load_%d_%d", k.Tail, k.Head) }

// PathVarName names the flow variable of the rank-th path of (src, dst).
func PathVarName(src, dst, rank int) string { return fmt.Sprintf("flow_%d_%d_%d", src, dst, rank) }

// CapacityRowName names the row load ≤ capacity.
func CapacityRowName(k core.LinkKey) string { return fmt.Sprintf("cap_%d_%d", k.Tail, k.Head) }

// UtilizationRowName names the row load/capacity − mlu ≤ 0.
func UtilizationRowName(k core.LinkKey) string { return fmt.Sprintf("util_%d_%d", k.Tail, k.Head) }

// LoadRowName names the row load − Σ crediting flows = 0.
func LoadRowName(k core.LinkKey) string { return fmt.Sprintf("load_def_%d_%d", k.Tail, k.Head) }

// DemandRowName names the per-pair demand row.
func DemandRowName(p ksp.Pair) string { return fmt.Sprintf("demand_%d_%d", p.Src, p.Dst) }
