package logfields

const (
	// Identifiers

	Name      = "name"
	Operation = "operation"

	ProcessID = "pid"
	ThreadID  = "tid"
	Window    = "hwnd"

	// clipboard

	Format   = "format"
	Sequence = "sequence"
	Attempt  = "attempt"
	RetryIn  = "retry-in"

	// memory and IO

	Address = "address"
	Bytes   = "bytes"
	Size    = "size"
	Path    = "path"
	Access  = "access"

	// Common Misc

	Config    = "config"
	ErrorCode = "error-code"
	Privilege = "privilege"
)
