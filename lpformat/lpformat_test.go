package lpformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teflow/lpformat"
	"github.com/katalvlaran/teflow/model"
)

func TestWrite_SmallModel(t *testing.T) {
	m := model.New("toy")
	x, _ := m.AddVar("x", 0, model.Inf)
	y, _ := m.AddVar("y", 1, 4)
	z, _ := m.AddVar("z", 2, model.Inf)
	w, _ := m.AddVar("w", 3, 3)

	row := model.Expr{}
	row.AddTerm(x, -1).AddTerm(y, 2.5)
	_, err := m.AddConstr(row, model.LessEqual, 4, "first row")
	require.NoError(t, err)
	_, err = m.AddConstr(model.Sum(y, z, w), model.GreaterEqual, 1, "cover")
	require.NoError(t, err)
	_, err = m.AddConstr(model.Sum(x), model.Equal, 0, "pin")
	require.NoError(t, err)

	obj := model.Sum(x, y)
	obj.AddConst(-3)
	require.NoError(t, m.SetObjective(obj, model.Maximize))

	var buf bytes.Buffer
	require.NoError(t, lpformat.Write(&buf, m))
	require.Equal(t, strings.Join([]string{
		`\ Problem: toy`,
		`Maximize`,
		` obj: x + y - 3`,
		`Subject To`,
		` first_row: - x + 2.5 y <= 4`,
		` cover: y + z + w >= 1`,
		` pin: x = 0`,
		`Bounds`,
		` 1 <= y <= 4`,
		` z >= 2`,
		` w = 3`,
		`End`,
		``,
	}, "\n"), buf.String())
}

func TestWrite_WrapsLongRows(t *testing.T) {
	m := model.New("wide")
	vars := make([]model.Var, 20)
	for i := range vars {
		vars[i], _ = m.AddVar("v"+strings.Repeat("x", i+1), 0, model.Inf)
	}
	_, err := m.AddConstr(model.Sum(vars...), model.LessEqual, 1, "wide")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, lpformat.Write(&buf, m))
	require.Contains(t, buf.String(), " obj: + 0\n")
	require.Equal(t, 2, strings.Count(buf.String(), "\n  "))
	require.NotContains(t, buf.String(), "Bounds")
}

func TestWrite_Nil(t *testing.T) {
	require.ErrorIs(t, lpformat.Write(&bytes.Buffer{}, nil), lpformat.ErrNilModel)
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "load_0_1", lpformat.Sanitize("load_0_1"))
	require.Equal(t, "a_b", lpformat.Sanitize("a b"))
	require.Equal(t, "_1x", lpformat.Sanitize("1x"))
	require.Equal(t, "_e1", lpformat.Sanitize("e1"))
	require.Equal(t, "_", lpformat.Sanitize(""))
	require.Equal(t, "x_y", lpformat.Sanitize("x→y"))
	require.Len(t, lpformat.Sanitize(strings.Repeat("a", 300)), 255)
}
