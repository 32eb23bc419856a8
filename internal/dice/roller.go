package dice

// RollDice rolls count dice with sides faces each.
//
// Precondition: sides >= 1 when count > 0; count <= MaxDiceLimit; src must be non-nil.
// Postcondition: len(result) == max(count, 0) and every value is in [1, sides].
func RollDice(count, sides int, src Source) []int {
	if count <= 0 {
		return []int{}
	}
	rolled := make([]int, count)
	for i := range rolled {
		rolled[i] = src.Intn(sides) + 1
	}
	return rolled
}

// Roll rolls every group of req using src.
//
// Precondition: req must come from Parse; src must be non-nil.
// Postcondition: result.Groups mirrors req.Groups in order and
// len(result.Groups[i].Values) == req.Groups[i].Count.
func Roll(req Request, src Source) Outcome {
	out := Outcome{
		Groups:   make([]GroupOutcome, 0, len(req.Groups)),
		Constant: req.Constant,
	}
	for _, g := range req.Groups {
		out.Groups = append(out.Groups, GroupOutcome{
			Sides:  g.Sides,
			Values: RollDice(g.Count, g.Sides, src),
		})
	}
	return out
}
