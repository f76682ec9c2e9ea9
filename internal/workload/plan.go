package workload

// Plan describes how the record range splits across agents.
type Plan struct {
	NumPartitions int64
	insertCount   int64
}

// PlanFor computes the number of partitions needed to cover recordCount
// records at insertCount records per agent, rounding up.
func PlanFor(recordCount, insertCount int64) Plan {
	return Plan{
		NumPartitions: (recordCount + insertCount - 1) / insertCount,
		insertCount:   insertCount,
	}
}

// Partition is a contiguous slice of the record range assigned to one agent.
// Every partition carries the full per-agent insert count; the last one may
// extend past the end of the record range.
type Partition struct {
	Index       int64
	InsertStart int64
	InsertCount int64
}

// Partition returns the i-th slice of the plan.
func (p Plan) Partition(i int64) Partition {
	return Partition{
		Index:       i,
		InsertStart: i * p.insertCount,
		InsertCount: p.insertCount,
	}
}
