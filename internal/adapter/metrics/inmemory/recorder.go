package inmemory

import "sync"

type Snapshot struct {
	OperationTotal    uint64            `json:"operation_total"`
	OperationSuccess  uint64            `json:"operation_success"`
	OperationRejected uint64            `json:"operation_rejected"`
	SystemErrors      uint64            `json:"system_errors"`
	ByOperation       map[string]uint64 `json:"by_operation"`
	ByRejectCode      map[string]uint64 `json:"by_reject_code"`
}

type Recorder struct {
	mu         sync.Mutex
	success    uint64
	rejected   uint64
	systemErrs uint64
	byOp       map[string]uint64
	byCode     map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOp:   map[string]uint64{},
		byCode: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byOp[op]++
}

func (r *Recorder) RecordRejected(op, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	if code == "" {
		code = "unknown"
	}
	r.byCode[code]++
}

// RecordSystemError counts persistence failures. The operation itself was
// already counted as a success.
func (r *Recorder) RecordSystemError(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.systemErrs++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		OperationSuccess:  r.success,
		OperationRejected: r.rejected,
		SystemErrors:      r.systemErrs,
		OperationTotal:    r.success + r.rejected,
		ByOperation:       make(map[string]uint64, len(r.byOp)),
		ByRejectCode:      make(map[string]uint64, len(r.byCode)),
	}
	for k, v := range r.byOp {
		out.ByOperation[k] = v
	}
	for k, v := range r.byCode {
		out.ByRejectCode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
