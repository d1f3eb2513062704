package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_JSONKeepsLiteral(t *testing.T) {
	for _, literal := range []string{`100`, `"100"`, `12.5`, `"$20 / person"`} {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(literal), &p))

		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Equal(t, literal, string(out))
	}
}

func TestPrice_NullAndMissing(t *testing.T) {
	var body struct {
		Price Price `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &body))
	assert.Equal(t, Price(""), body.Price)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":null}`, string(out))
}

func TestPrice_Native(t *testing.T) {
	assert.Equal(t, 100.0, NumberPrice(100).Native())
	assert.Equal(t, "100", StringPrice("100").Native())
	assert.Nil(t, Price("").Native())

	assert.Equal(t, NumberPrice(100), PriceOf(100.0))
	assert.Equal(t, NumberPrice(100), PriceOf(int32(100)))
	assert.Equal(t, StringPrice("100"), PriceOf("100"))
	assert.Equal(t, Price(""), PriceOf(nil))
}

func TestPrice_TextIsString(t *testing.T) {
	var p Price
	require.NoError(t, p.UnmarshalText([]byte("100")))
	assert.Equal(t, StringPrice("100"), p)
}

func TestPrice_SQL(t *testing.T) {
	value, err := StringPrice("100").Value()
	require.NoError(t, err)
	assert.Equal(t, `"100"`, value)

	var p Price
	require.NoError(t, p.Scan([]byte(`150`)))
	assert.Equal(t, NumberPrice(150), p)
	assert.Error(t, p.Scan(42))
}
