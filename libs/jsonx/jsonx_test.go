package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

type testResult struct {
	Value      *uint256.Int   `json:"value,units"`
	Log        *uint256.Int   `json:"log_value,sunits"`
	Terms      []*uint256.Int `json:"terms,units"`
	Iterations uint64         `json:"iterations"`
	Offset     int64          `json:"offset"`
	Plain      *uint256.Int   `json:"plain"`
	Note       string         `json:"note,omitempty"`
}

func TestMarshal(t *testing.T) {
	r := &testResult{
		Value:      uint256.NewInt(1_500_000_000_000_000_000),
		Log:        new(uint256.Int).Neg(uint256.NewInt(693_147_180_559_945_309)),
		Terms:      []*uint256.Int{uint256.NewInt(1), uint256.NewInt(2_000_000_000_000_000_000)},
		Iterations: 5,
		Offset:     -9223372036854775807,
		Plain:      uint256.NewInt(42),
	}

	bz, err := Marshal(r)
	require.NoError(t, err)

	var actual map[string]interface{}
	require.NoError(t, json.Unmarshal(bz, &actual))

	require.Equal(t, "1.500000000000000000", actual["value"])
	require.Equal(t, "-0.693147180559945309", actual["logValue"])
	require.Equal(t, []interface{}{"0.000000000000000001", "2.000000000000000000"}, actual["terms"])
	require.Equal(t, "5", actual["iterations"])
	require.Equal(t, "-9223372036854775807", actual["offset"])
	// without the units option uint256 keeps its own encoding
	require.Equal(t, "42", actual["plain"])
	_, exists := actual["note"]
	require.False(t, exists)
}

func TestMarshalIndent(t *testing.T) {
	type testStruct struct {
		StringField string `json:"string_field"`
		IntField    int64  `json:"int_field"`
	}

	result, err := MarshalIndent(testStruct{StringField: "hello", IntField: 123456789}, "", "  ")
	require.NoError(t, err)
	require.Equal(t, `{
  "stringField": "hello",
  "intField": "123456789"
}`, string(result))
}

func TestUnmarshal(t *testing.T) {
	jsonData := []byte(`{
		"value": "1.5",
		"log_value": -0.25,
		"terms": ["0.8", 0.2],
		"iterations": 7,
		"offset": "-3"
	}`)

	var r testResult
	require.NoError(t, Unmarshal(jsonData, &r))
	require.Equal(t, uint256.NewInt(1_500_000_000_000_000_000), r.Value)
	require.Equal(t, new(uint256.Int).Neg(uint256.NewInt(250_000_000_000_000_000)), r.Log)
	require.Equal(t, []*uint256.Int{uint256.NewInt(800_000_000_000_000_000), uint256.NewInt(200_000_000_000_000_000)}, r.Terms)
	require.Equal(t, uint64(7), r.Iterations)
	require.Equal(t, int64(-3), r.Offset)
	require.Nil(t, r.Plain)
}

func TestUnmarshal_Invalid(t *testing.T) {
	var r testResult
	require.Error(t, Unmarshal([]byte(`{"value": "-1"}`), &r))
	require.Error(t, Unmarshal([]byte(`{"value": "abc"}`), &r))
	require.Error(t, Unmarshal([]byte(`{"terms": ["1", "x"]}`), &r))
	require.Error(t, Unmarshal([]byte(`{"iterations": "many"}`), &r))
}

func TestRoundTrip(t *testing.T) {
	src := &testResult{
		Value: uint256.NewInt(123),
		Log:   new(uint256.Int).Neg(uint256.NewInt(7)),
		Terms: []*uint256.Int{uint256.NewInt(9)},
	}
	bz, err := Marshal(src)
	require.NoError(t, err)

	var dst testResult
	require.NoError(t, Unmarshal(bz, &dst))
	require.Equal(t, src.Value, dst.Value)
	require.Equal(t, src.Log, dst.Log)
	require.Equal(t, src.Terms, dst.Terms)
}
