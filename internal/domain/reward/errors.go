package reward

import "errors"

var (
	ErrRewardNotFound       = errors.New("reward not found")
	ErrRewardAlreadyGranted = errors.New("a reward already exists for this employee and date")
	ErrRewardAlreadyRevoked = errors.New("reward has already been revoked")
)
