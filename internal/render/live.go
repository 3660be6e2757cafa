// Package render draws the chain as a live terminal table, repainted on
// every frame.
package render

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"

	"github.com/goodnatureofminers/powsim7000/internal/chain"
)

// clearScreen homes the cursor and wipes the terminal before a repaint.
const clearScreen = "\x1b[H\x1b[2J"

// LiveTable renders snapshots as a full-screen table: one row per block,
// the in-flight candidate last, the required difficulty as the caption.
type LiveTable struct {
	mu  sync.Mutex
	out io.Writer
}

// NewLiveTable draws to out, typically a terminal.
func NewLiveTable(out io.Writer) *LiveTable {
	return &LiveTable{out: out}
}

// Render draws one frame.
func (l *LiveTable) Render(s chain.Snapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := io.WriteString(l.out, clearScreen); err != nil {
		return err
	}

	table := tablewriter.NewWriter(l.out)
	table.SetHeader([]string{"Block", "Nonce", "Hash"})
	table.SetCaption(true, fmt.Sprintf("Difficulty: %d", s.Difficulty))
	for _, row := range s.Rows {
		table.Append([]string{
			strconv.FormatUint(row.Position, 10),
			strconv.FormatUint(row.Nonce, 10),
			row.Hash,
		})
	}
	table.Render()

	return nil
}
