package chain

const (
	// genesisPreviousHash is the sentinel previous hash of the genesis
	// block. It is never validated against anything.
	genesisPreviousHash = "0"

	// bootstrapDifficulty applies while the chain is too short for
	// retargeting.
	bootstrapDifficulty = 1

	// retargetWindow is the number of committed blocks needed before the
	// two-interval retarget kicks in.
	retargetWindow = 3
)
