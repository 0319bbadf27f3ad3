package core

import "github.com/huangsam/schoolscore/schema"

// Distribute counts outcomes at each score level. Scores outside 1..3 are
// counted as 0.
func Distribute(outcomes []schema.Outcome) schema.Distribution {
	scores := make([]int, len(outcomes))
	for i, o := range outcomes {
		scores[i] = o.Score
	}
	return DistributeScores(scores)
}

// DistributeScores counts raw outcome scores at each level.
func DistributeScores(scores []int) schema.Distribution {
	var d schema.Distribution
	for _, s := range scores {
		switch s {
		case 3:
			d.Score3++
		case 2:
			d.Score2++
		case 1:
			d.Score1++
		default:
			d.Score0++
		}
	}
	d.Total = len(scores)
	return d
}

// SumDistributions adds distributions element-wise.
func SumDistributions(ds ...schema.Distribution) schema.Distribution {
	var sum schema.Distribution
	for _, d := range ds {
		sum.Score0 += d.Score0
		sum.Score1 += d.Score1
		sum.Score2 += d.Score2
		sum.Score3 += d.Score3
		sum.Total += d.Total
	}
	return sum
}
