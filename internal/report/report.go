// Package report assembles multi-line city reports step by step.
package report

import (
	"fmt"
	"strings"

	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/sample"
)

// Document is an ordered sequence of report lines.
type Document struct {
	Lines []string
}

// Show joins the lines with newlines.
func (d *Document) Show() string {
	return strings.Join(d.Lines, "\n")
}

func (d *Document) add(line string) {
	d.Lines = append(d.Lines, line)
}

// Consumption bounds in kWh.
const (
	MinConsumption = 1000
	MaxConsumption = 5000
)

// ReportDates are the dates an energy report may carry.
var ReportDates = []string{"2025-12-01", "2025-12-02"}

// Usage is one line of the consumption breakdown.
type Usage struct {
	Name    string
	Percent int
	KWh     int
}

// usageShares splits total consumption; the shares sum to 100.
var usageShares = []struct {
	name    string
	percent int
}{
	{"Lighting", 30},
	{"Transport", 40},
	{"Security", 10},
	{"Other", 20},
}

// Breakdown splits total into its fixed shares, each truncated toward zero.
// The parts may sum to less than total.
func Breakdown(total int) []Usage {
	out := make([]Usage, 0, len(usageShares))
	for _, s := range usageShares {
		out = append(out, Usage{Name: s.name, Percent: s.percent, KWh: total * s.percent / 100})
	}
	return out
}

// EnergyAssembler builds energy consumption reports in four steps:
// Reset, Header, Body, Footer. Result hands over the document and resets, so
// each build starts clean.
type EnergyAssembler struct {
	src sample.Source
	doc *Document
}

// NewEnergyAssembler returns an assembler holding an empty document.
func NewEnergyAssembler(src sample.Source) *EnergyAssembler {
	a := &EnergyAssembler{src: src}
	a.Reset()
	return a
}

// Reset discards any partially built document.
func (a *EnergyAssembler) Reset() {
	a.doc = &Document{}
}

// Header adds the report title and date.
func (a *EnergyAssembler) Header() {
	a.doc.add(messages.ReportHeader)
	a.doc.add(fmt.Sprintf(messages.ReportDateFmt, sample.Pick(a.src, ReportDates)))
}

// Body samples a total consumption and adds it with its breakdown.
func (a *EnergyAssembler) Body() {
	total := sample.Between(a.src, MinConsumption, MaxConsumption)
	a.doc.add(fmt.Sprintf(messages.ReportTotalFmt, total))
	for _, u := range Breakdown(total) {
		a.doc.add(fmt.Sprintf(messages.ReportUsageFmt, u.Name, u.KWh))
	}
}

// Footer closes the report.
func (a *EnergyAssembler) Footer() {
	a.doc.add(messages.ReportFooter)
}

// Pending returns the number of lines built since the last Reset.
func (a *EnergyAssembler) Pending() int {
	return len(a.doc.Lines)
}

// Result returns the built document and resets the assembler.
func (a *EnergyAssembler) Result() *Document {
	doc := a.doc
	a.Reset()
	return doc
}

// Build runs the full sequence and returns the finished document.
func (a *EnergyAssembler) Build() *Document {
	a.Reset()
	a.Header()
	a.Body()
	a.Footer()
	return a.Result()
}
