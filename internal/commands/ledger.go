package commands

import (
	"fmt"
	"time"

	"github.com/nairaledger/nairaledger/internal/calculation"
	"github.com/nairaledger/nairaledger/internal/config"
	"github.com/nairaledger/nairaledger/internal/domain"
	"github.com/nairaledger/nairaledger/internal/report"
	"github.com/nairaledger/nairaledger/internal/store"
)

// Ledger files are single-business documents; records are seeded under a
// fixed identity.
const ledgerUser = "local"

const dateLayout = "2006-01-02"

// ledgerFlags are the options shared by the dashboard and report commands.
type ledgerFlags struct {
	ledgerPath string
	from       string
	to         string
	category   string
	tag        string
}

// buildReporter loads the ledger file, seeds a memory store and wires the
// report builder around a fresh tax engine.
func (f *ledgerFlags) buildReporter() (*report.Builder, error) {
	ledger, err := config.NewInputParser().LoadFromFile(f.ledgerPath)
	if err != nil {
		return nil, err
	}
	memStore := store.NewMemoryStore()
	ledger.Seed(memStore, ledgerUser)
	return report.NewBuilder(memStore, memStore, calculation.NewEngine()), nil
}

// parseRange resolves the requested window, defaulting to the trailing 30
// days ending today.
func (f *ledgerFlags) parseRange() (report.Range, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -29)
	end := now
	if f.from != "" {
		parsed, err := time.Parse(dateLayout, f.from)
		if err != nil {
			return report.Range{}, fmt.Errorf("invalid --from date %q: %w", f.from, err)
		}
		start = parsed
	}
	if f.to != "" {
		parsed, err := time.Parse(dateLayout, f.to)
		if err != nil {
			return report.Range{}, fmt.Errorf("invalid --to date %q: %w", f.to, err)
		}
		end = parsed
	}
	return report.NewRange(start, end)
}

func (f *ledgerFlags) expenseFilter() store.ExpenseFilter {
	return store.ExpenseFilter{
		Category: domain.ExpenseCategory(f.category),
		Tag:      domain.ExpenseTag(f.tag),
	}
}
