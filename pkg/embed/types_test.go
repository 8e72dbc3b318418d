package embed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/pkg/embed"
)

func TestTypeDeclarationFieldsMethodsAndStatics(t *testing.T) {
	res := run(t, `
type Point
  pub x: Int = 0
  pub y: Int = 0

  fun dist()
    self.x + self.y
  end

  static fun origin()
    Point.new()
  end
end

let p = Point.new(x: 3, y: 4)
let origin = Point.origin()
[p.dist(), origin.x, origin.y]
`)
	require.Nil(t, res.Exception)
	arr := res.Value.(*object.Array)
	first, _ := arr.Get(0)
	second, _ := arr.Get(1)
	third, _ := arr.Get(2)
	assert.Equal(t, int64(7), first.(*object.Int).Value)
	assert.Equal(t, int64(0), second.(*object.Int).Value)
	assert.Equal(t, int64(0), third.(*object.Int).Value)
}

func TestTraitImplDispatchesThroughMethod(t *testing.T) {
	res := run(t, `
trait Greeter
  fun greet()
end

type Dog
  impl Greeter
    fun greet()
      "woof"
    end
  end
end

Dog.new().greet()
`)
	require.Nil(t, res.Exception)
	assert.Equal(t, "woof", res.Value.(*object.Str).Value)
}

func TestArrayEachMapFilterOverCallback(t *testing.T) {
	res := run(t, `
let nums = [1, 2, 3, 4, 5]
let doubled = nums.map(fun (x) x * 2 end)
let evens = nums.filter(fun (x) x % 2 == 0 end)
let total = 0
nums.each(fun (x) total = total + x end)
[doubled, evens, total]
`)
	require.Nil(t, res.Exception)
	arr := res.Value.(*object.Array)
	doubled, _ := arr.Get(0)
	evens, _ := arr.Get(1)
	total, _ := arr.Get(2)

	doubledArr := doubled.(*object.Array)
	require.Equal(t, 5, doubledArr.Len())
	last, _ := doubledArr.Get(4)
	assert.Equal(t, int64(10), last.(*object.Int).Value)

	evensArr := evens.(*object.Array)
	assert.Equal(t, 2, evensArr.Len())

	assert.Equal(t, int64(15), total.(*object.Int).Value)
}

func TestDictEachVisitsAllEntries(t *testing.T) {
	res := run(t, `
let d = {a: 1, b: 2, c: 3}
let total = 0
d.each(fun (k, v) total = total + v end)
total
`)
	require.Nil(t, res.Exception)
	assert.Equal(t, int64(6), res.Value.(*object.Int).Value)
}

func TestForLoopWithStepAndBreak(t *testing.T) {
	res := run(t, `
let seen = []
for i in 0 to 10 step 2
  if i == 6
    break
  end
  seen.push(i)
end
seen
`)
	require.Nil(t, res.Exception)
	arr := res.Value.(*object.Array)
	assert.Equal(t, 3, arr.Len())
	last, _ := arr.Get(2)
	assert.Equal(t, int64(4), last.(*object.Int).Value)
}

func TestArithmeticOperatorPrecedence(t *testing.T) {
	res := run(t, "2 + 3 * 4 - 1")
	require.Nil(t, res.Exception)
	assert.Equal(t, int64(13), res.Value.(*object.Int).Value)
}
