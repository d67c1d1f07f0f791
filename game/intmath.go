package game

// Percentage constants
const (
	// FullPercent is the falloff value at the impact point
	FullPercent = 100
)

// Lerp interpolates between a and b by mul/div using integer arithmetic.
// The product is formed in 64 bits and divided once, so the result
// truncates toward zero exactly like the rest of the simulation's integer
// math. div must be non-zero.
func Lerp(a, b, mul, div int) int {
	return a + int(int64(b-a)*int64(mul)/int64(div))
}

// ApplyPercentageModifiers scales number by each percentage in order.
// Every step truncates toward zero, so the order of modifiers matters:
// ApplyPercentageModifiers(10, []int{50, 50}) == 2.
func ApplyPercentageModifiers(number int, percentages []int) int {
	total := int64(number)
	for _, p := range percentages {
		total = total * int64(p) / FullPercent
	}
	return int(total)
}
