package workload

// OpKind names one container operation a workload can apply.
type OpKind string

const (
	OpPush    OpKind = "push"
	OpPop     OpKind = "pop"
	OpClear   OpKind = "clear"
	OpReset   OpKind = "reset"
	OpReserve OpKind = "reserve"
)

// Step is one scripted instruction: apply Op Count times (Count
// defaults to 1). Capacity is only meaningful for reserve.
type Step struct {
	Op       OpKind
	Count    int
	Capacity int
}

// Workload is a named operation script replayed against a fresh array.
type Workload struct {
	Name     string
	Seed     int64
	Capacity int // initial capacity; 0 means the container default
	Steps    []Step
}

// Sample records the container shape after one applied operation.
type Sample struct {
	Op    OpKind
	Len   int
	Cap   int
	Grows int
}

// Result holds the recorded series and summary metrics of one replay.
type Result struct {
	Samples []Sample
	Metrics map[string]float64
	Applied int
}
