package constants

// RunStatus is the canonical status for rows in extraction_run.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusExtracted RunStatus = "EXTRACTED" // heuristic fields only
	RunStatusEnhanced  RunStatus = "ENHANCED"  // LLM merge applied
	RunStatusFailed    RunStatus = "FAILED"    // terminal failure
)
