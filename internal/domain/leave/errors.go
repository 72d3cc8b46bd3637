package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
)
