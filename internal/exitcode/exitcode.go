package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	WorkspaceError  = 3
	ExportError     = 4
	TransformError  = 5
	PartialSuccess  = 6
)
