package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

func TestNdArrayZerosShapeAndGet(t *testing.T) {
	mod := stdlib.Ndarray()
	arr := callBuiltin(t, mod, "zeros", &object.Int{Value: 2}, &object.Int{Value: 3})

	shapeMethod, ok := stdlib.DomainMethod(arr, "shape")
	require.True(t, ok)
	shapeVal, err := shapeMethod.Fn(nil, nil)
	require.NoError(t, err)
	shapeArr := shapeVal.(*object.Array)
	require.Equal(t, 2, shapeArr.Len())
	first, _ := shapeArr.Get(0)
	second, _ := shapeArr.Get(1)
	assert.Equal(t, int64(2), first.(*object.Int).Value)
	assert.Equal(t, int64(3), second.(*object.Int).Value)

	getMethod, ok := stdlib.DomainMethod(arr, "get")
	require.True(t, ok)
	v, err := getMethod.Fn([]object.Value{&object.Int{Value: 0}, &object.Int{Value: 0}}, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(0), v.(*object.Float).Value)
}

func TestNdArraySetThenGetRoundTrips(t *testing.T) {
	mod := stdlib.Ndarray()
	arr := callBuiltin(t, mod, "zeros", &object.Int{Value: 2}, &object.Int{Value: 2})

	setMethod, _ := stdlib.DomainMethod(arr, "set")
	_, err := setMethod.Fn([]object.Value{
		&object.Int{Value: 1}, &object.Int{Value: 0}, &object.Float{Value: 7.5},
	}, nil)
	require.NoError(t, err)

	getMethod, _ := stdlib.DomainMethod(arr, "get")
	v, err := getMethod.Fn([]object.Value{&object.Int{Value: 1}, &object.Int{Value: 0}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v.(*object.Float).Value)
}

func TestNdArraySumAddsAllElements(t *testing.T) {
	mod := stdlib.Ndarray()
	arr := callBuiltin(t, mod, "zeros", &object.Int{Value: 3})

	setMethod, _ := stdlib.DomainMethod(arr, "set")
	for i := int64(0); i < 3; i++ {
		_, err := setMethod.Fn([]object.Value{&object.Int{Value: i}, &object.Float{Value: float64(i + 1)}}, nil)
		require.NoError(t, err)
	}

	sumMethod, _ := stdlib.DomainMethod(arr, "sum")
	v, err := sumMethod.Fn(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v.(*object.Float).Value)
}
