package ports

type OperationMetrics interface {
	RecordSuccess(op string)
	RecordRejected(op, code string)
	RecordSystemError(op string)
}
