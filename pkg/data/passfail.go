package data

// PassThresholdDefault is the minimum passing score used when the
// caller does not override the threshold.
const PassThresholdDefault = 40

// Partition splits a roster's students into passed and failed lists,
// both in roster order.
type Partition struct {
	Threshold int      `json:"threshold"`
	Passed    []string `json:"passed"`
	Failed    []string `json:"failed"`
}

// PartitionPassFail classifies every student: passed iff score >= threshold.
// Every student lands in exactly one list.
func PartitionPassFail(r *Roster, threshold int) *Partition {
	p := &Partition{
		Threshold: threshold,
		Passed:    []string{},
		Failed:    []string{},
	}
	if r == nil {
		return p
	}

	for _, e := range r.entries {
		if e.Score >= threshold {
			p.Passed = append(p.Passed, e.Name)
		} else {
			p.Failed = append(p.Failed, e.Name)
		}
	}
	return p
}
