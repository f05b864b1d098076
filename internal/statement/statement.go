// Package statement assembles statutory statements: it walks a format
// template in document order, attaches computed or aggregated amounts to each
// line, assigns note numbers, and collects the annexures behind them. Each
// call is a pure reduction over its inputs; re-running with the same inputs
// produces the same numbers.
package statement

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/aggregate"
	"github.com/auditprep-dev/auditprep/internal/check"
	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/format"
	"github.com/auditprep-dev/auditprep/internal/model"
	"github.com/auditprep-dev/auditprep/internal/notes"
)

// Kind selects which statement to assemble.
type Kind string

const (
	KindBalanceSheet  Kind = "balance-sheet"
	KindProfitAndLoss Kind = "profit-and-loss"
)

// Default note-number seeds. Notes 1 and 2 are conventionally the corporate
// information and accounting-policy notes, so the Balance Sheet starts at 3;
// the P&L continues after the Balance Sheet notes.
const (
	DefaultBalanceSheetSeed  = 3
	DefaultProfitAndLossSeed = 19
)

// Params are the inputs to one assembly pass.
type Params struct {
	Kind   Kind
	Entity model.EntityType
	// Rows is the current-period classified trial balance.
	Rows []model.LedgerRow
	// PreviousRows is the optional prior-period trial balance.
	PreviousRows []model.LedgerRow
	// Stock feeds the material and inventory notes on the P&L.
	Stock []model.StockItem
	// StartingNoteNumber seeds the note counter; zero selects the default
	// for the statement kind.
	StartingNoteNumber int
	// NoteValues are explicit per-area overrides. An explicit value always
	// wins over computed notes and the H2 fallback.
	NoteValues map[classify.Area]decimal.Decimal
	// NoteLedgers are explicit per-area annexure overrides.
	NoteLedgers map[classify.Area][]model.NoteLedgerItem
}

// Line is one renderable statement row.
type Line struct {
	Item           format.LineItem
	CurrentAmount  decimal.Decimal
	PreviousAmount decimal.Decimal
	// NoteNumber is empty for unnumbered lines.
	NoteNumber string
}

// HasNote reports whether the line carries a note number.
func (l Line) HasNote() bool { return l.NoteNumber != "" }

// Diagnostics reports recoverable input problems found during assembly.
type Diagnostics struct {
	UnclassifiedCount int
	UnclassifiedNames []string
}

// Result is the assembled statement.
type Result struct {
	Kind        Kind
	Title       string
	FormatLabel string
	Lines       []Line
	// NoteLedgers maps each numbered note's area to its contributing
	// ledgers, for drill-down.
	NoteLedgers map[classify.Area][]model.NoteLedgerItem
	// NoteNumbers maps areas to their assigned note numbers.
	NoteNumbers map[classify.Area]string
	// NextNoteNumber continues the sequence into a following statement.
	NextNoteNumber    int
	HasPreviousPeriod bool
	// Balance is populated for Balance Sheet results.
	Balance     check.BalanceReport
	Diagnostics Diagnostics
}

// Total returns the current and previous amounts of the first line computed
// with the given formula.
func (r Result) Total(f format.Formula) (current, previous decimal.Decimal, ok bool) {
	for _, l := range r.Lines {
		if l.Item.Formula == f {
			return l.CurrentAmount, l.PreviousAmount, true
		}
	}
	return decimal.Zero, decimal.Zero, false
}

// amounts pairs a current- and prior-period value.
type amounts struct {
	current  decimal.Decimal
	previous decimal.Decimal
}

func (a amounts) add(b amounts) amounts {
	return amounts{current: a.current.Add(b.current), previous: a.previous.Add(b.previous)}
}

func (a amounts) sub(b amounts) amounts {
	return amounts{current: a.current.Sub(b.current), previous: a.previous.Sub(b.previous)}
}

var zeroAmounts = amounts{current: decimal.Zero, previous: decimal.Zero}

// Generate assembles one statement. It fails only when the entity type has no
// format template; every data-level problem is reported through Diagnostics
// and the consistency fields instead.
func Generate(p Params) (Result, error) {
	template, err := templateFor(p.Kind, p.Entity)
	if err != nil {
		return Result{}, err
	}
	label, err := format.Label(p.Entity)
	if err != nil {
		return Result{}, err
	}

	classified, unclassified := aggregate.SplitClassified(p.Rows)
	prevClassified, prevUnclassified := aggregate.SplitClassified(p.PreviousRows)

	section := model.SectionBalanceSheet
	var derived, prevDerived notes.Set
	switch p.Kind {
	case KindProfitAndLoss:
		section = model.SectionProfitAndLoss
		derived = notes.ComputeProfitLoss(classified, p.Stock)
		prevDerived = notes.ComputeProfitLoss(prevClassified, nil)
	default:
		derived = notes.ComputeBalanceSheet(classified)
		prevDerived = notes.ComputeBalanceSheet(prevClassified)
	}

	res := Result{
		Kind:              p.Kind,
		Title:             titleFor(p.Kind),
		FormatLabel:       label,
		NoteLedgers:       make(map[classify.Area][]model.NoteLedgerItem),
		NoteNumbers:       make(map[classify.Area]string),
		HasPreviousPeriod: len(p.PreviousRows) > 0,
		Diagnostics: Diagnostics{
			UnclassifiedCount: len(unclassified) + len(prevUnclassified),
			UnclassifiedNames: unclassifiedNames(unclassified, prevUnclassified),
		},
	}

	counter := p.StartingNoteNumber
	if counter <= 0 {
		counter = defaultSeed(p.Kind)
	}

	segment := zeroAmounts
	registers := make(map[format.Formula]amounts)

	for _, item := range template {
		line := Line{Item: item, CurrentAmount: decimal.Zero, PreviousAmount: decimal.Zero}

		switch {
		case item.Area != "":
			value := amounts{
				current:  resolveAmount(item.Area, p.NoteValues, derived, classified, section, p.Kind),
				previous: resolveAmount(item.Area, nil, prevDerived, prevClassified, section, p.Kind),
			}
			line.CurrentAmount = value.current
			line.PreviousAmount = value.previous
			segment = segment.add(value)

			if !value.current.IsZero() || !value.previous.IsZero() {
				line.NoteNumber = strconv.Itoa(counter)
				counter++
				res.NoteNumbers[item.Area] = line.NoteNumber
				if annexure := annexureFor(item.Area, p.NoteLedgers, derived); len(annexure) > 0 {
					res.NoteLedgers[item.Area] = annexure
				}
			}

		case item.Formula != format.FormulaNone:
			value := evalFormula(item.Formula, segment, registers)
			registers[item.Formula] = value
			segment = zeroAmounts
			line.CurrentAmount = value.current
			line.PreviousAmount = value.previous
		}

		res.Lines = append(res.Lines, line)
	}

	res.NextNoteNumber = counter
	if p.Kind == KindBalanceSheet {
		res.Balance = check.BalanceSheetBalance(classified)
	}
	return res, nil
}

// resolveAmount applies the value precedence for an area line: explicit note
// value, then computed note value, then the H2 fallback aggregation.
func resolveAmount(
	area classify.Area,
	explicit map[classify.Area]decimal.Decimal,
	derived notes.Set,
	rows []model.LedgerRow,
	section model.Section,
	kind Kind,
) decimal.Decimal {
	if v, ok := explicit[area]; ok {
		return v
	}
	if v, ok := derived.Value(area); ok {
		return v
	}

	var h2 string
	if kind == KindProfitAndLoss {
		h2 = classify.ProfitLossFallbackH2(area)
	} else {
		h2 = classify.BalanceSheetFallbackH2(area)
	}
	if h2 == "" {
		return decimal.Zero
	}
	return aggregate.Sum(rows, section, h2, "")
}

// evalFormula computes a structural total from the running segment sum and
// previously computed totals, never from raw ledger rows.
func evalFormula(f format.Formula, segment amounts, registers map[format.Formula]amounts) amounts {
	switch f {
	case format.FormulaProfitBeforeTax:
		return registers[format.FormulaTotalIncome].sub(registers[format.FormulaTotalExpenses])
	case format.FormulaProfitAfterTax:
		return registers[format.FormulaProfitBeforeTax].sub(segment)
	default:
		// Total Income, Total Expenses, Total Assets, and Total Equity and
		// Liabilities each close out the segment above them.
		return segment
	}
}

// annexureFor picks the annexure list for a numbered area: an explicit list
// wins, otherwise the computed one.
func annexureFor(
	area classify.Area,
	explicit map[classify.Area][]model.NoteLedgerItem,
	derived notes.Set,
) []model.NoteLedgerItem {
	if items, ok := explicit[area]; ok {
		return items
	}
	return derived.Annexures[area]
}

func templateFor(kind Kind, entity model.EntityType) ([]format.LineItem, error) {
	if kind == KindProfitAndLoss {
		return format.ProfitAndLoss(entity)
	}
	return format.BalanceSheet(entity)
}

func titleFor(kind Kind) string {
	if kind == KindProfitAndLoss {
		return "Statement of Profit and Loss"
	}
	return "Balance Sheet"
}

func defaultSeed(kind Kind) int {
	if kind == KindProfitAndLoss {
		return DefaultProfitAndLossSeed
	}
	return DefaultBalanceSheetSeed
}

func unclassifiedNames(groups ...[]model.LedgerRow) []string {
	var names []string
	for _, rows := range groups {
		for _, r := range rows {
			names = append(names, r.Name)
		}
	}
	return names
}
