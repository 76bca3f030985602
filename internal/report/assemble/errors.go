package assemble

import "errors"

// Sentinel kinds for assembly errors.
var (
	ErrWriteOutput = errors.New("write report output failed")
	ErrRenderPage  = errors.New("render report page failed")
)
