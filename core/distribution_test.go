package core

import (
	"testing"

	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestDistribute(t *testing.T) {
	outcomes := []schema.Outcome{{Score: 3}, {Score: 2}, {Score: 2}, {Score: 1}, {Score: 0}, {Score: 7}}
	d := Distribute(outcomes)
	assert.Equal(t, schema.Distribution{Score0: 2, Score1: 1, Score2: 2, Score3: 1, Total: 6}, d)
}

func TestDistributeEmpty(t *testing.T) {
	assert.Equal(t, schema.Distribution{}, Distribute(nil))
}

func TestSumDistributions(t *testing.T) {
	a := schema.Distribution{Score0: 1, Score1: 2, Score2: 0, Score3: 1, Total: 4}
	b := schema.Distribution{Score0: 0, Score1: 1, Score2: 3, Score3: 2, Total: 6}
	assert.Equal(t, schema.Distribution{Score0: 1, Score1: 3, Score2: 3, Score3: 3, Total: 10}, SumDistributions(a, b))
	assert.Equal(t, schema.Distribution{}, SumDistributions())
}
