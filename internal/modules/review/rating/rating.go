package rating

import "math"

func Valid(r int) bool {
	return r >= 1 && r <= 5
}

// Mean is the arithmetic mean of ratings rounded to two decimals. An empty
// slice yields 0.
func Mean(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*100) / 100
}
