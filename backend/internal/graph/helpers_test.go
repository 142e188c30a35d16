package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_String(t *testing.T) {
	row := Row{"name": "Phở bò", "nil": nil, "num": int64(3)}

	assert.Equal(t, "Phở bò", row.String("name"))
	assert.Equal(t, "", row.String("nil"))
	assert.Equal(t, "", row.String("num"))
	assert.Equal(t, "", row.String("missing"))
}

func TestRow_Int64(t *testing.T) {
	row := Row{
		"i64":   int64(42),
		"int":   7,
		"i32":   int32(9),
		"float": 2.6,
		"str":   "12",
		"nil":   nil,
	}

	assert.Equal(t, int64(42), row.Int64("i64"))
	assert.Equal(t, int64(7), row.Int64("int"))
	assert.Equal(t, int64(9), row.Int64("i32"))
	assert.Equal(t, int64(3), row.Int64("float"))
	assert.Equal(t, int64(0), row.Int64("str"))
	assert.Equal(t, int64(0), row.Int64("nil"))
	assert.Equal(t, 42, row.Int("i64"))
}

func TestRow_Float64(t *testing.T) {
	row := Row{"f": 0.75, "i": int64(2), "nil": nil}

	assert.Equal(t, 0.75, row.Float64("f"))
	assert.Equal(t, 2.0, row.Float64("i"))
	assert.Equal(t, 0.0, row.Float64("nil"))
}

func TestRow_Strings(t *testing.T) {
	row := Row{
		"mixed": []interface{}{"Miền Bắc", nil, "", "  ", "Miền Nam", 5},
		"typed": []string{"hành", ""},
		"nil":   nil,
	}

	assert.Equal(t, []string{"Miền Bắc", "Miền Nam"}, row.Strings("mixed"))
	assert.Equal(t, []string{"hành"}, row.Strings("typed"))
	assert.Empty(t, row.Strings("nil"))
	assert.NotNil(t, row.Strings("missing"))
}

func TestRow_Text(t *testing.T) {
	row := Row{
		"text":  "bánh phở, thịt bò",
		"list":  []interface{}{"bánh phở", nil, "thịt bò"},
		"typed": []string{"bún", "sả"},
		"nil":   nil,
	}

	assert.Equal(t, "bánh phở, thịt bò", row.Text("text"))
	assert.Equal(t, "bánh phở, thịt bò", row.Text("list"))
	assert.Equal(t, "bún, sả", row.Text("typed"))
	assert.Equal(t, "", row.Text("nil"))
	assert.Equal(t, "", row.Text("missing"))
}

func TestRow_Has(t *testing.T) {
	row := Row{"a": 1, "b": nil}

	assert.True(t, row.Has("a"))
	assert.False(t, row.Has("b"))
	assert.False(t, row.Has("c"))
}
