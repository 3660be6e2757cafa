package chain

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Row is one rendered line of the chain: a committed block, or the
// candidate currently being searched.
type Row struct {
	Position uint64 `json:"position"`
	Nonce    uint64 `json:"nonce"`
	Hash     string `json:"hash"`
}

// Snapshot is the read-only view handed to presentation code. Rows are
// value copies; mutating a snapshot never touches the chain.
type Snapshot struct {
	Rows       []Row `json:"rows"`
	Difficulty int   `json:"difficulty"`
}

// ProgressReporter receives a snapshot for every mining attempt. Reports
// are advisory; they never affect the search outcome.
type ProgressReporter interface {
	Report(s Snapshot)
}

// ReporterFunc adapts a plain function to ProgressReporter.
type ReporterFunc func(Snapshot)

// Report calls f(s).
func (f ReporterFunc) Report(s Snapshot) { f(s) }
