package tracer

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame rows into contiguous blocks, one per tracer.
	//
	// This function returns the block height assignment for each tracer.
	// The assigned heights always add up to frameH.
	Schedule(numTracers, frameH int) []int
}

// The even scheduler assigns the same number of rows to every tracer. The
// last tracer also receives the rows left over by the integer division.
type evenScheduler struct{}

// Create a new even scheduler instance
func NewEvenScheduler() BlockScheduler {
	return evenScheduler{}
}

func (evenScheduler) Schedule(numTracers, frameH int) []int {
	if numTracers < 1 {
		return nil
	}

	blockAssignment := make([]int, numTracers)
	rowsPerTracer := frameH / numTracers
	for idx := range blockAssignment {
		blockAssignment[idx] = rowsPerTracer
	}

	// Append the missing rows to the last tracer
	blockAssignment[numTracers-1] += frameH - rowsPerTracer*numTracers

	return blockAssignment
}

// Convert a block height assignment into contiguous block requests that
// start at row 0.
func BlockRequests(blockAssignment []int) []BlockRequest {
	reqs := make([]BlockRequest, len(blockAssignment))
	blockY := 0
	for idx, blockH := range blockAssignment {
		reqs[idx] = BlockRequest{BlockY: blockY, BlockH: blockH}
		blockY += blockH
	}
	return reqs
}
